// ABOUTME: In-memory Store implementation for testing and --mock serving
// ABOUTME: Applies the same filter semantics as MongoStore without a database

package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockStore is an in-memory Store implementation. Substring matching over
// title+content stands in for the Mongo text index.
type MockStore struct {
	mu       sync.RWMutex
	articles []Article
	nextID   int
	failErr  error
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{nextID: 1}
}

// SetFailure makes every subsequent operation return err. Pass nil to heal.
func (m *MockStore) SetFailure(err error) {
	m.mu.Lock()
	m.failErr = err
	m.mu.Unlock()
}

// Insert adds articles, assigning IDs. Intended for test setup and seeding.
func (m *MockStore) Insert(articles ...Article) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range articles {
		if a.ID == "" {
			a.ID = fmt.Sprintf("mock-%06d", m.nextID)
			m.nextID++
		}
		if a.Tags == nil {
			a.Tags = []string{}
		}
		m.articles = append(m.articles, a)
	}
}

// FetchNews returns articles matching the filter.
func (m *MockStore) FetchNews(ctx context.Context, filter Filter) ([]Article, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return nil, m.failErr
	}

	matched := m.match(filter, time.Now())

	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch filter.SortBy {
		case SortByTitle:
			less = matched[i].Title < matched[j].Title
		default:
			less = matched[i].PublishedAt.Before(matched[j].PublishedAt)
		}
		if filter.SortOrder == SortDesc {
			return !less && !equalSortKey(matched[i], matched[j], filter.SortBy)
		}
		return less
	})

	if len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// ListCategories returns the distinct categories present, sorted.
func (m *MockStore) ListCategories(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return nil, m.failErr
	}

	seen := make(map[string]struct{})
	for _, a := range m.articles {
		seen[a.Category] = struct{}{}
	}
	return sortedKeys(seen), nil
}

// ListTags returns the distinct tags present, sorted.
func (m *MockStore) ListTags(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return nil, m.failErr
	}

	seen := make(map[string]struct{})
	for _, a := range m.articles {
		for _, t := range a.Tags {
			seen[t] = struct{}{}
		}
	}
	return sortedKeys(seen), nil
}

// Count returns the number of matching articles.
func (m *MockStore) Count(ctx context.Context, filter Filter) (int64, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return 0, m.failErr
	}

	return int64(len(m.match(filter, time.Now()))), nil
}

// match returns copies of articles satisfying every set filter predicate.
// Callers must hold at least a read lock.
func (m *MockStore) match(filter Filter, now time.Time) []Article {
	var cutoff time.Time
	if filter.HoursAgo > 0 {
		cutoff = now.UTC().Add(-time.Duration(filter.HoursAgo) * time.Hour)
	}

	var matched []Article
	for _, a := range m.articles {
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if len(filter.Tags) > 0 && !intersects(a.Tags, filter.Tags) {
			continue
		}
		if filter.HoursAgo > 0 && a.PublishedAt.Before(cutoff) {
			continue
		}
		if filter.SearchQuery != "" {
			q := strings.ToLower(filter.SearchQuery)
			if !strings.Contains(strings.ToLower(a.Title), q) &&
				!strings.Contains(strings.ToLower(a.Content), q) {
				continue
			}
		}
		matched = append(matched, a)
	}
	return matched
}

func equalSortKey(a, b Article, sortBy string) bool {
	if sortBy == SortByTitle {
		return a.Title == b.Title
	}
	return a.PublishedAt.Equal(b.PublishedAt)
}

func intersects(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, t := range have {
		set[t] = struct{}{}
	}
	for _, t := range want {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
