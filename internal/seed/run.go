// ABOUTME: Runs the seeding flow against a writable article store
// ABOUTME: Optionally drops existing articles, inserts samples, ensures indexes

package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/2389/newsdesk/internal/store"
)

// Target is the writable surface the seeder needs. *store.MongoStore
// satisfies it.
type Target interface {
	DropArticles(ctx context.Context) error
	InsertArticles(ctx context.Context, articles []store.Article) error
	EnsureIndexes(ctx context.Context) error
}

// Options controls a seeding run.
type Options struct {
	// Drop removes all existing articles before inserting samples.
	Drop bool

	// Now anchors the relative published_at offsets. Zero means time.Now.
	Now time.Time

	Logger *slog.Logger
}

// Run seeds the target with the sample article set and ensures the
// indexes the query paths rely on. It returns the number of articles
// inserted.
func Run(ctx context.Context, target Target, opts Options) (int, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	if opts.Drop {
		if err := target.DropArticles(ctx); err != nil {
			return 0, fmt.Errorf("dropping existing articles: %w", err)
		}
		logger.Info("dropped existing articles")
	}

	articles := SampleArticles(now)
	if err := target.InsertArticles(ctx, articles); err != nil {
		return 0, fmt.Errorf("inserting sample articles: %w", err)
	}
	logger.Info("inserted sample articles", "count", len(articles))

	if err := target.EnsureIndexes(ctx); err != nil {
		return len(articles), fmt.Errorf("ensuring indexes: %w", err)
	}
	logger.Info("indexes ensured")

	return len(articles), nil
}
