// ABOUTME: Response formatting for news tool results
// ABOUTME: Renders readable text plus an embedded JSON payload for widget rendering

package news

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/2389/newsdesk/internal/store"
	"github.com/2389/newsdesk/internal/tools"
)

// EmptyResultMessage is the canonical text for a zero-article result.
// Zero results is a valid outcome, not an error.
const EmptyResultMessage = "No articles found."

// descriptionPreviewLen caps the description shown in the readable text.
// The widget payload always carries full field values.
const descriptionPreviewLen = 200

// maxTagsShown caps the tags listed per article in the readable text.
const maxTagsShown = 5

// widgetPayload is the structured payload embedded for widget rendering.
// Article field names mirror store.Article exactly; no renaming or lossy
// projection happens here.
type widgetPayload struct {
	Type     string          `json:"type"`
	Count    int             `json:"count"`
	Articles []store.Article `json:"articles"`
}

// FormatArticles renders a sequence of articles as a single text content
// item: a readable summary followed by a fenced JSON block the client
// widget extracts. Pure function; safe for concurrent use.
func FormatArticles(articles []store.Article) tools.Result {
	if len(articles) == 0 {
		return tools.TextResult(EmptyResultMessage)
	}

	payload := widgetPayload{
		Type:     "news_feed",
		Count:    len(articles),
		Articles: articles,
	}

	text := renderReadable(articles)
	return tools.TextResult(text + "\n\n" + widgetBlock(payload))
}

// renderReadable builds the human-readable summary. The result count is
// always present.
func renderReadable(articles []store.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d news article(s):\n\n", len(articles))

	for i, a := range articles {
		fmt.Fprintf(&b, "**%d. %s**\n", i+1, a.Title)
		fmt.Fprintf(&b, "   Source: %s\n", a.Source)
		if a.Author != "" {
			fmt.Fprintf(&b, "   Author: %s\n", a.Author)
		}
		fmt.Fprintf(&b, "   Published: %s\n", a.PublishedAt.UTC().Format(time.RFC3339))
		fmt.Fprintf(&b, "   Category: %s\n", a.Category)
		if len(a.Tags) > 0 {
			shown := a.Tags
			if len(shown) > maxTagsShown {
				shown = shown[:maxTagsShown]
			}
			fmt.Fprintf(&b, "   Tags: %s\n", strings.Join(shown, ", "))
		}
		if a.Description != "" {
			fmt.Fprintf(&b, "   %s\n", truncate(a.Description, descriptionPreviewLen))
		}
		if a.URL != "" {
			fmt.Fprintf(&b, "   [Read more](%s)\n", a.URL)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// widgetBlock wraps a payload in the marker and fence the client widget
// looks for.
func widgetBlock(payload any) string {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return ""
	}
	return "<!-- Widget Data -->\n```json\n" + string(data) + "\n```"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
