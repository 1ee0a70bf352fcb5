// ABOUTME: Tests for the in-memory MockStore against the Store contract
// ABOUTME: Exercises every filter predicate, limits, sorting and failure injection

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArticles(now time.Time) []Article {
	return []Article{
		{
			Title:       "AI Reaches New Milestone",
			Content:     "A breakthrough in natural language understanding.",
			Source:      "AI Research Today",
			URL:         "https://example.com/ai-milestone",
			PublishedAt: now,
			Category:    "technology",
			Tags:        []string{"ai", "research"},
		},
		{
			Title:       "Quantum Computing Collaboration",
			Content:     "Major companies join forces on quantum hardware.",
			Source:      "Tech Innovation Weekly",
			URL:         "https://example.com/quantum",
			PublishedAt: now.Add(-1 * time.Hour),
			Category:    "technology",
			Tags:        []string{"quantum-computing", "innovation"},
		},
		{
			Title:       "Olympic Lineup Expands",
			Content:     "New sports added to the upcoming games.",
			Source:      "Sports International",
			URL:         "https://example.com/olympics",
			PublishedAt: now.Add(-48 * time.Hour),
			Category:    "sports",
			Tags:        []string{"olympics"},
		},
	}
}

func TestFetchNewsNoFiltersReturnsNewestFirst(t *testing.T) {
	now := time.Now()
	m := NewMockStore()
	m.Insert(testArticles(now)...)

	articles, err := m.FetchNews(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, articles, 3)

	assert.Equal(t, "AI Reaches New Milestone", articles[0].Title)
	assert.Equal(t, "Quantum Computing Collaboration", articles[1].Title)
	assert.Equal(t, "Olympic Lineup Expands", articles[2].Title)
}

func TestFetchNewsCategoryFilter(t *testing.T) {
	now := time.Now()
	m := NewMockStore()
	m.Insert(testArticles(now)...)

	articles, err := m.FetchNews(context.Background(), Filter{Category: "technology", Limit: 10})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	// Newest published_at first among the matches.
	assert.Equal(t, "AI Reaches New Milestone", articles[0].Title)
	assert.Equal(t, "Quantum Computing Collaboration", articles[1].Title)
	for _, a := range articles {
		assert.Equal(t, "technology", a.Category)
	}
}

func TestFetchNewsTagIntersection(t *testing.T) {
	now := time.Now()
	m := NewMockStore()
	m.Insert(testArticles(now)...)

	articles, err := m.FetchNews(context.Background(), Filter{Tags: []string{"ai", "olympics"}})
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "AI Reaches New Milestone", articles[0].Title)
	assert.Equal(t, "Olympic Lineup Expands", articles[1].Title)
}

func TestFetchNewsRecencyWindow(t *testing.T) {
	now := time.Now()
	m := NewMockStore()
	m.Insert(testArticles(now)...)

	articles, err := m.FetchNews(context.Background(), Filter{HoursAgo: 24})
	require.NoError(t, err)
	require.Len(t, articles, 2, "the 48h-old article falls outside the window")
	for _, a := range articles {
		assert.True(t, a.PublishedAt.After(now.Add(-24*time.Hour)))
	}
}

func TestFetchNewsSearchMatchesTitleAndContent(t *testing.T) {
	now := time.Now()
	m := NewMockStore()
	m.Insert(testArticles(now)...)

	byTitle, err := m.FetchNews(context.Background(), Filter{SearchQuery: "quantum"})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Quantum Computing Collaboration", byTitle[0].Title)

	byContent, err := m.FetchNews(context.Background(), Filter{SearchQuery: "breakthrough"})
	require.NoError(t, err)
	require.Len(t, byContent, 1)
	assert.Equal(t, "AI Reaches New Milestone", byContent[0].Title)
}

func TestFetchNewsFiltersComposeWithAND(t *testing.T) {
	now := time.Now()
	m := NewMockStore()
	m.Insert(testArticles(now)...)

	articles, err := m.FetchNews(context.Background(), Filter{
		Category: "technology",
		Tags:     []string{"ai"},
		HoursAgo: 24,
	})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "AI Reaches New Milestone", articles[0].Title)
}

func TestFetchNewsLimitApplied(t *testing.T) {
	now := time.Now()
	m := NewMockStore()
	m.Insert(testArticles(now)...)

	articles, err := m.FetchNews(context.Background(), Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "AI Reaches New Milestone", articles[0].Title)
}

func TestFetchNewsEmptyStoreIsNotAnError(t *testing.T) {
	m := NewMockStore()

	articles, err := m.FetchNews(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestFetchNewsInvalidLimitIssuesNoQuery(t *testing.T) {
	m := NewMockStore()
	m.SetFailure(errors.New("store must not be reached"))

	_, err := m.FetchNews(context.Background(), Filter{Limit: 51})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = m.FetchNews(context.Background(), Filter{Limit: -1})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFetchNewsIdempotentOnUnchangedStore(t *testing.T) {
	now := time.Now()
	m := NewMockStore()
	m.Insert(testArticles(now)...)

	filter := Filter{Category: "technology"}
	first, err := m.FetchNews(context.Background(), filter)
	require.NoError(t, err)
	second, err := m.FetchNews(context.Background(), filter)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	ids := func(articles []Article) map[string]bool {
		set := make(map[string]bool)
		for _, a := range articles {
			set[a.ID] = true
		}
		return set
	}
	assert.Equal(t, ids(first), ids(second))
}

func TestFetchNewsSortByTitleAscending(t *testing.T) {
	now := time.Now()
	m := NewMockStore()
	m.Insert(testArticles(now)...)

	articles, err := m.FetchNews(context.Background(), Filter{SortBy: SortByTitle, SortOrder: SortAsc})
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "AI Reaches New Milestone", articles[0].Title)
	assert.Equal(t, "Olympic Lineup Expands", articles[1].Title)
	assert.Equal(t, "Quantum Computing Collaboration", articles[2].Title)
}

func TestListCategoriesAndTags(t *testing.T) {
	now := time.Now()
	m := NewMockStore()
	m.Insert(testArticles(now)...)

	categories, err := m.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"sports", "technology"}, categories)

	tags, err := m.ListTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ai", "innovation", "olympics", "quantum-computing", "research"}, tags)
}

func TestCountSharesFilterSemantics(t *testing.T) {
	now := time.Now()
	m := NewMockStore()
	m.Insert(testArticles(now)...)

	count, err := m.Count(context.Background(), Filter{Category: "technology"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = m.Count(context.Background(), Filter{SortOrder: "sideways"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInsertAssignsIDsAndNormalizesTags(t *testing.T) {
	m := NewMockStore()
	m.Insert(Article{Title: "t", Source: "s", URL: "u", PublishedAt: time.Now(), Category: "c"})

	articles, err := m.FetchNews(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.NotEmpty(t, articles[0].ID)
	assert.NotNil(t, articles[0].Tags)
	assert.Empty(t, articles[0].Tags)
}
