// ABOUTME: News tool pack: fetch_news, list_categories, list_tags, count_articles
// ABOUTME: Handlers decode argument bags, build store filters and format results

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2389/newsdesk/internal/store"
	"github.com/2389/newsdesk/internal/tools"
)

// fetchNewsSchema describes the fetch_news argument bag. Advisory metadata
// for the client; the handler enforces the bounds itself.
const fetchNewsSchema = `{
  "type": "object",
  "properties": {
    "limit": {
      "type": "integer",
      "description": "Maximum number of articles to fetch (default: 10, max: 50)",
      "default": 10,
      "minimum": 1,
      "maximum": 50
    },
    "category": {
      "type": "string",
      "description": "Filter by news category (e.g., 'technology', 'business', 'sports')"
    },
    "tags": {
      "type": "array",
      "items": {"type": "string"},
      "description": "Filter by tags; articles matching any of the given tags are returned"
    },
    "search_query": {
      "type": "string",
      "description": "Search in title and content"
    },
    "hours_ago": {
      "type": "integer",
      "description": "Fetch articles from the last N hours",
      "minimum": 1
    },
    "sort_by": {
      "type": "string",
      "enum": ["published_at", "title"],
      "description": "Sort articles by field (default: published_at)",
      "default": "published_at"
    },
    "sort_order": {
      "type": "string",
      "enum": ["asc", "desc"],
      "description": "Sort order (default: desc)",
      "default": "desc"
    }
  },
  "required": []
}`

// countArticlesSchema mirrors the fetch_news filters minus limit and sort.
const countArticlesSchema = `{
  "type": "object",
  "properties": {
    "category": {"type": "string", "description": "Filter by news category"},
    "tags": {"type": "array", "items": {"type": "string"}, "description": "Filter by tags"},
    "search_query": {"type": "string", "description": "Search in title and content"},
    "hours_ago": {"type": "integer", "description": "Count articles from the last N hours", "minimum": 1}
  },
  "required": []
}`

const emptySchema = `{"type": "object", "properties": {}, "required": []}`

// Pack returns the news tools backed by the given store, for registration
// at process start.
func Pack(s store.Store) []*tools.Tool {
	h := &handlers{store: s}
	return []*tools.Tool{
		{
			Definition: tools.Definition{
				Name:        "fetch_news",
				Description: "Fetch news articles. You can filter by category, tags, date range, and search keywords.",
				InputSchema: json.RawMessage(fetchNewsSchema),
			},
			Handler: h.FetchNews,
		},
		{
			Definition: tools.Definition{
				Name:        "list_categories",
				Description: "List the news categories articles are filed under.",
				InputSchema: json.RawMessage(emptySchema),
			},
			Handler: h.ListCategories,
		},
		{
			Definition: tools.Definition{
				Name:        "list_tags",
				Description: "List the tags attached to articles.",
				InputSchema: json.RawMessage(emptySchema),
			},
			Handler: h.ListTags,
		},
		{
			Definition: tools.Definition{
				Name:        "count_articles",
				Description: "Count articles matching the given filters without fetching them.",
				InputSchema: json.RawMessage(countArticlesSchema),
			},
			Handler: h.CountArticles,
		},
	}
}

type handlers struct {
	store store.Store
}

type fetchNewsInput struct {
	// Limit is a pointer so an explicit 0 is distinguishable from absent:
	// absent means the default, 0 is out of range.
	Limit       *int     `json:"limit"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	SearchQuery string   `json:"search_query"`
	HoursAgo    int      `json:"hours_ago"`
	SortBy      string   `json:"sort_by"`
	SortOrder   string   `json:"sort_order"`
}

// filter translates the argument bag into a store.Filter. An explicit
// out-of-range limit is rejected here, before any query is issued.
func (in fetchNewsInput) filter() (store.Filter, error) {
	f := store.Filter{
		Category:    in.Category,
		Tags:        in.Tags,
		SearchQuery: in.SearchQuery,
		HoursAgo:    in.HoursAgo,
		SortBy:      in.SortBy,
		SortOrder:   in.SortOrder,
	}
	if in.Limit != nil {
		if *in.Limit < store.MinLimit || *in.Limit > store.MaxLimit {
			return store.Filter{}, fmt.Errorf("%w: limit %d outside [%d, %d]",
				store.ErrInvalidArgument, *in.Limit, store.MinLimit, store.MaxLimit)
		}
		f.Limit = *in.Limit
	}
	return f, nil
}

func (h *handlers) FetchNews(ctx context.Context, args json.RawMessage) (tools.Result, error) {
	var in fetchNewsInput
	if err := json.Unmarshal(args, &in); err != nil {
		return tools.Result{}, fmt.Errorf("%w: %v", store.ErrInvalidArgument, err)
	}

	filter, err := in.filter()
	if err != nil {
		return tools.Result{}, err
	}

	articles, err := h.store.FetchNews(ctx, filter)
	if err != nil {
		return tools.Result{}, fmt.Errorf("fetching news: %w", err)
	}

	return FormatArticles(articles), nil
}

func (h *handlers) ListCategories(ctx context.Context, _ json.RawMessage) (tools.Result, error) {
	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		return tools.Result{}, fmt.Errorf("listing categories: %w", err)
	}
	return formatValueList("category", "categories", categories), nil
}

func (h *handlers) ListTags(ctx context.Context, _ json.RawMessage) (tools.Result, error) {
	tags, err := h.store.ListTags(ctx)
	if err != nil {
		return tools.Result{}, fmt.Errorf("listing tags: %w", err)
	}
	return formatValueList("tag", "tags", tags), nil
}

func (h *handlers) CountArticles(ctx context.Context, args json.RawMessage) (tools.Result, error) {
	var in fetchNewsInput
	if err := json.Unmarshal(args, &in); err != nil {
		return tools.Result{}, fmt.Errorf("%w: %v", store.ErrInvalidArgument, err)
	}

	filter, err := in.filter()
	if err != nil {
		return tools.Result{}, err
	}

	count, err := h.store.Count(ctx, filter)
	if err != nil {
		return tools.Result{}, fmt.Errorf("counting articles: %w", err)
	}

	payload := map[string]any{"type": "article_count", "count": count}
	text := fmt.Sprintf("%d article(s) match the given filters.", count)
	return tools.TextResult(text + "\n\n" + widgetBlock(payload)), nil
}

// formatValueList renders a distinct-value listing with its count and an
// embedded payload keyed by the plural name.
func formatValueList(singular, plural string, values []string) tools.Result {
	if len(values) == 0 {
		return tools.TextResult(fmt.Sprintf("No %s found.", plural))
	}

	text := fmt.Sprintf("Found %d %s: %s", len(values), pluralize(len(values), singular, plural), strings.Join(values, ", "))
	payload := map[string]any{
		"type":  singular + "_list",
		"count": len(values),
		plural:  values,
	}
	return tools.TextResult(text + "\n\n" + widgetBlock(payload))
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
