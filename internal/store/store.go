// ABOUTME: Store interface and data types for newsdesk article persistence
// ABOUTME: Defines Article, Filter and the Store interface for document queries

package store

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidArgument is returned when a caller-supplied filter value is
// outside its allowed range or set. It is never retried.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnavailable is returned when the underlying store cannot be reached
// or a query times out, after the single reconnect attempt has failed.
var ErrUnavailable = errors.New("store unavailable")

// ErrNotConnected is returned when an operation is attempted before
// Connect has succeeded.
var ErrNotConnected = errors.New("store not connected")

// Sort order values accepted by Filter.SortOrder.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Fields articles may be sorted by.
const (
	SortByPublishedAt = "published_at"
	SortByTitle       = "title"
)

// Limit bounds for FetchNews. Requests outside [MinLimit, MaxLimit] are
// rejected with ErrInvalidArgument; DefaultLimit applies when unset.
const (
	MinLimit     = 1
	MaxLimit     = 50
	DefaultLimit = 10
)

// Article is a single news item. Articles are immutable once inserted;
// the gateway only ever reads them. Title, Source, URL, PublishedAt and
// Category are always present on any article the store returns. Tags is
// never nil on returned articles (empty slice instead).
type Article struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description"`
	Content     string    `bson:"content,omitempty" json:"content"`
	Author      string    `bson:"author,omitempty" json:"author"`
	Source      string    `bson:"source" json:"source"`
	URL         string    `bson:"url" json:"url"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url"`
	PublishedAt time.Time `bson:"published_at" json:"published_at"`
	Category    string    `bson:"category" json:"category"`
	Tags        []string  `bson:"tags,omitempty" json:"tags"`
}

// Filter is an ephemeral, request-scoped query built from tool arguments.
// Zero values mean "not set". Multiple set fields compose with logical AND.
type Filter struct {
	// Category matches articles whose category equals this value exactly.
	Category string

	// Tags matches articles whose tag set intersects this set.
	Tags []string

	// SearchQuery is matched against title and content via text search.
	SearchQuery string

	// HoursAgo restricts results to published_at >= now - HoursAgo.
	// Must be positive when set.
	HoursAgo int

	// Limit caps the number of returned articles. 0 means DefaultLimit.
	Limit int

	// SortBy is the sort field (default SortByPublishedAt).
	SortBy string

	// SortOrder is SortAsc or SortDesc (default SortDesc).
	SortOrder string
}

// Store is the read interface over the article collection. An empty result
// is a valid, empty slice, never an error. Order among articles with equal
// sort keys is store-defined and not stable across calls.
type Store interface {
	// FetchNews returns articles matching the filter, at most filter.Limit
	// of them, sorted per the filter's sort spec.
	FetchNews(ctx context.Context, filter Filter) ([]Article, error)

	// ListCategories returns the distinct category values present.
	ListCategories(ctx context.Context) ([]string, error)

	// ListTags returns the distinct tag values present.
	ListTags(ctx context.Context) ([]string, error)

	// Count returns the number of articles matching the filter without
	// transferring documents. Limit and sort are ignored.
	Count(ctx context.Context, filter Filter) (int64, error)
}
