// ABOUTME: Filter validation and MongoDB query document construction
// ABOUTME: Shared by FetchNews and Count so both reject and compose identically

package store

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// validSortFields is the allow-list for Filter.SortBy.
var validSortFields = map[string]bool{
	SortByPublishedAt: true,
	SortByTitle:       true,
}

// Normalize validates the filter and returns a copy with defaults applied.
// It is called before any query is issued; an invalid filter never reaches
// the store.
func (f Filter) Normalize() (Filter, error) {
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit < MinLimit || f.Limit > MaxLimit {
		return Filter{}, fmt.Errorf("%w: limit %d outside [%d, %d]", ErrInvalidArgument, f.Limit, MinLimit, MaxLimit)
	}

	if f.SortBy == "" {
		f.SortBy = SortByPublishedAt
	}
	if !validSortFields[f.SortBy] {
		return Filter{}, fmt.Errorf("%w: sort_by %q", ErrInvalidArgument, f.SortBy)
	}

	if f.SortOrder == "" {
		f.SortOrder = SortDesc
	}
	if f.SortOrder != SortAsc && f.SortOrder != SortDesc {
		return Filter{}, fmt.Errorf("%w: sort_order %q", ErrInvalidArgument, f.SortOrder)
	}

	if f.HoursAgo < 0 {
		return Filter{}, fmt.Errorf("%w: hours_ago %d must be positive", ErrInvalidArgument, f.HoursAgo)
	}

	return f, nil
}

// queryDocument builds the MongoDB filter document. Set fields compose with
// logical AND; an empty filter yields an empty document (match all).
// now is injected so the recency cutoff is testable.
func (f Filter) queryDocument(now time.Time) bson.M {
	query := bson.M{}

	if f.Category != "" {
		query["category"] = f.Category
	}

	if len(f.Tags) > 0 {
		query["tags"] = bson.M{"$in": f.Tags}
	}

	if f.HoursAgo > 0 {
		cutoff := now.UTC().Add(-time.Duration(f.HoursAgo) * time.Hour)
		query["published_at"] = bson.M{"$gte": cutoff}
	}

	if f.SearchQuery != "" {
		// Requires the text index on title+content (see EnsureIndexes).
		query["$text"] = bson.M{"$search": f.SearchQuery}
	}

	return query
}

// sortDocument builds the sort spec for the query.
func (f Filter) sortDocument() bson.D {
	direction := -1
	if f.SortOrder == SortAsc {
		direction = 1
	}
	return bson.D{{Key: f.SortBy, Value: direction}}
}
