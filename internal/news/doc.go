// Package news implements the news tool pack and its response formatting.
//
// Pack builds the tool set (fetch_news, list_categories, list_tags,
// count_articles) over a store.Store. Each handler validates and clamps
// its argument bag, queries the store, and renders the result as readable
// text with an embedded JSON block for widget rendering. The formatter is
// stateless and safe for concurrent use.
package news
