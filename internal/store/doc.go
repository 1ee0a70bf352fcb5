// Package store provides read access to the news article collection.
//
// # Architecture
//
// The Store interface exposes the four read operations the tool layer
// needs: FetchNews, ListCategories, ListTags and Count. Two implementations
// exist:
//
//   - MongoStore: the production implementation on the official MongoDB
//     driver. Connected once at startup and shared across calls.
//   - MockStore: an in-memory implementation for tests and --mock serving.
//
// # Filters
//
// Filter is an ephemeral, request-scoped value. Every set field composes
// with logical AND: category equality, tag-set intersection, text search
// over title+content, and a published_at lower bound derived from
// HoursAgo. Filter.Normalize applies defaults and validates bounds before
// any query is issued, so both implementations reject identically.
//
// # Error Handling
//
//   - ErrInvalidArgument: caller-supplied filter value out of range/set
//   - ErrUnavailable: connection or query-timeout failure, surfaced after
//     a single reconnect attempt (the query itself is never retried)
//   - ErrNotConnected: operation before Connect succeeded
//
// All methods accept context.Context; query timeouts surface as
// ErrUnavailable rather than hanging.
package store
