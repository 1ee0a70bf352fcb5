// ABOUTME: Tests for news pack tool handlers
// ABOUTME: Uses the in-memory MockStore and exercises arg decoding and limits

package news

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/2389/newsdesk/internal/store"
	"github.com/2389/newsdesk/internal/tools"
)

// findHandler returns the handler for the named tool in the pack.
func findHandler(pack []*tools.Tool, name string) tools.Handler {
	for _, t := range pack {
		if t.Definition.Name == name {
			return t.Handler
		}
	}
	return nil
}

func seededStore(now time.Time) *store.MockStore {
	m := store.NewMockStore()
	m.Insert(
		store.Article{
			Title:       "AI Reaches New Milestone",
			Description: "Breakthrough in language understanding.",
			Content:     "Researchers announce a breakthrough.",
			Author:      "Dr. Sarah Chen",
			Source:      "AI Research Today",
			URL:         "https://example.com/ai",
			PublishedAt: now.Add(-2 * time.Hour),
			Category:    "technology",
			Tags:        []string{"ai", "research"},
		},
		store.Article{
			Title:       "Quantum Collaboration Announced",
			Source:      "Tech Weekly",
			URL:         "https://example.com/quantum",
			PublishedAt: now.Add(-8 * time.Hour),
			Category:    "technology",
			Tags:        []string{"quantum-computing"},
		},
		store.Article{
			Title:       "Olympics Adds New Sports",
			Source:      "Sports International",
			URL:         "https://example.com/olympics",
			PublishedAt: now.Add(-72 * time.Hour),
			Category:    "sports",
			Tags:        []string{"olympics"},
		},
	)
	return m
}

func TestFetchNewsDefaults(t *testing.T) {
	pack := Pack(seededStore(time.Now()))
	handler := findHandler(pack, "fetch_news")
	if handler == nil {
		t.Fatal("fetch_news handler not found")
	}

	result, err := handler(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatal("unexpected error result")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(result.Content))
	}

	text := result.Content[0].Text
	if !strings.Contains(text, "Found 3 news article(s):") {
		t.Errorf("missing count line in %q", text)
	}
	// Newest first by default.
	if strings.Index(text, "AI Reaches") > strings.Index(text, "Olympics Adds") {
		t.Error("expected newest article first")
	}
	if !strings.Contains(text, "<!-- Widget Data -->") {
		t.Error("missing widget data block")
	}
}

func TestFetchNewsCategoryScenario(t *testing.T) {
	pack := Pack(seededStore(time.Now()))
	handler := findHandler(pack, "fetch_news")

	result, err := handler(context.Background(), json.RawMessage(`{"category":"technology","limit":10}`))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	text := result.Content[0].Text
	if !strings.Contains(text, "Found 2 news article(s):") {
		t.Errorf("expected exactly the 2 technology articles, got %q", text)
	}
	if strings.Contains(text, "Olympics") {
		t.Error("sports article leaked through the category filter")
	}
	if strings.Index(text, "AI Reaches") > strings.Index(text, "Quantum") {
		t.Error("expected newest published_at first")
	}
}

func TestFetchNewsHoursAgoWindow(t *testing.T) {
	pack := Pack(seededStore(time.Now()))
	handler := findHandler(pack, "fetch_news")

	result, err := handler(context.Background(), json.RawMessage(`{"hours_ago":24}`))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(result.Content[0].Text, "Found 2 news article(s):") {
		t.Errorf("expected only articles within 24h, got %q", result.Content[0].Text)
	}
}

func TestFetchNewsLimitBounds(t *testing.T) {
	m := seededStore(time.Now())
	pack := Pack(m)
	handler := findHandler(pack, "fetch_news")

	for _, limit := range []string{"0", "51", "-5"} {
		_, err := handler(context.Background(), json.RawMessage(`{"limit":`+limit+`}`))
		if !errors.Is(err, store.ErrInvalidArgument) {
			t.Errorf("limit %s: expected ErrInvalidArgument, got %v", limit, err)
		}
	}

	// Boundary values succeed.
	for _, limit := range []string{"1", "50"} {
		if _, err := handler(context.Background(), json.RawMessage(`{"limit":`+limit+`}`)); err != nil {
			t.Errorf("limit %s: unexpected error %v", limit, err)
		}
	}
}

func TestFetchNewsInvalidLimitIssuesNoQuery(t *testing.T) {
	m := store.NewMockStore()
	m.SetFailure(errors.New("store must not be queried"))
	handler := findHandler(Pack(m), "fetch_news")

	_, err := handler(context.Background(), json.RawMessage(`{"limit":51}`))
	if !errors.Is(err, store.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument before any query, got %v", err)
	}
}

func TestFetchNewsEmptyStore(t *testing.T) {
	handler := findHandler(Pack(store.NewMockStore()), "fetch_news")

	result, err := handler(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.Content[0].Text != EmptyResultMessage {
		t.Errorf("expected %q, got %q", EmptyResultMessage, result.Content[0].Text)
	}
}

func TestFetchNewsStoreUnavailableSurfaces(t *testing.T) {
	m := store.NewMockStore()
	m.SetFailure(store.ErrUnavailable)
	handler := findHandler(Pack(m), "fetch_news")

	_, err := handler(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetchNewsMalformedArguments(t *testing.T) {
	handler := findHandler(Pack(store.NewMockStore()), "fetch_news")

	_, err := handler(context.Background(), json.RawMessage(`{"limit":"ten"}`))
	if !errors.Is(err, store.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for malformed args, got %v", err)
	}
}

func TestListCategories(t *testing.T) {
	handler := findHandler(Pack(seededStore(time.Now())), "list_categories")

	result, err := handler(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	text := result.Content[0].Text
	if !strings.Contains(text, "Found 2 categories: sports, technology") {
		t.Errorf("unexpected listing: %q", text)
	}
}

func TestListTags(t *testing.T) {
	handler := findHandler(Pack(seededStore(time.Now())), "list_tags")

	result, err := handler(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(result.Content[0].Text, "Found 5 tags:") {
		t.Errorf("unexpected listing: %q", result.Content[0].Text)
	}
}

func TestCountArticlesSharesFilterLogic(t *testing.T) {
	handler := findHandler(Pack(seededStore(time.Now())), "count_articles")

	result, err := handler(context.Background(), json.RawMessage(`{"category":"technology"}`))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(result.Content[0].Text, "2 article(s) match") {
		t.Errorf("unexpected count text: %q", result.Content[0].Text)
	}

	_, err = handler(context.Background(), json.RawMessage(`{"hours_ago":-1}`))
	if !errors.Is(err, store.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestPackToolDefinitions(t *testing.T) {
	pack := Pack(store.NewMockStore())

	want := map[string]bool{
		"fetch_news":      true,
		"list_categories": true,
		"list_tags":       true,
		"count_articles":  true,
	}
	if len(pack) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(pack))
	}
	for _, tool := range pack {
		if !want[tool.Definition.Name] {
			t.Errorf("unexpected tool %q", tool.Definition.Name)
		}
		if tool.Definition.Description == "" {
			t.Errorf("tool %q missing description", tool.Definition.Name)
		}
		var schema map[string]any
		if err := json.Unmarshal(tool.Definition.InputSchema, &schema); err != nil {
			t.Errorf("tool %q schema is not valid JSON: %v", tool.Definition.Name, err)
		}
	}
}
