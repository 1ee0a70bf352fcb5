// ABOUTME: MongoDB-backed Store implementation for the article collection
// ABOUTME: Owns the client lifecycle with a single reconnect attempt on failure

package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultQueryTimeout bounds a single store query when the config does not
// override it.
const DefaultQueryTimeout = 10 * time.Second

// MongoConfig holds connection settings for MongoStore.
type MongoConfig struct {
	URI          string
	Database     string
	Collection   string
	QueryTimeout time.Duration
	Logger       *slog.Logger
}

// MongoStore implements Store against a MongoDB collection. The client is
// established once via Connect and reused across calls. A failed query
// triggers one reconnect attempt before the failure is surfaced as
// ErrUnavailable; the query itself is not retried.
type MongoStore struct {
	uri          string
	database     string
	collection   string
	queryTimeout time.Duration
	logger       *slog.Logger

	mu     sync.RWMutex
	client *mongo.Client
}

// NewMongoStore creates an unconnected MongoStore. Call Connect before use.
func NewMongoStore(cfg MongoConfig) *MongoStore {
	timeout := cfg.QueryTimeout
	if timeout == 0 {
		timeout = DefaultQueryTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &MongoStore{
		uri:          cfg.URI,
		database:     cfg.Database,
		collection:   cfg.Collection,
		queryTimeout: timeout,
		logger:       logger,
	}
}

// Connect establishes and verifies the connection. Safe to call again after
// a failure; an existing client is disconnected first.
func (s *MongoStore) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("%w: ping: %v", ErrUnavailable, err)
	}

	s.mu.Lock()
	old := s.client
	s.client = client
	s.mu.Unlock()

	if old != nil {
		_ = old.Disconnect(ctx)
	}

	s.logger.Info("connected to MongoDB",
		"database", s.database,
		"collection", s.collection,
	)
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	s.mu.Lock()
	client := s.client
	s.client = nil
	s.mu.Unlock()

	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting: %w", err)
	}
	s.logger.Info("MongoDB connection closed")
	return nil
}

// coll returns the collection handle, or ErrNotConnected.
func (s *MongoStore) coll() (*mongo.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.client == nil {
		return nil, ErrNotConnected
	}
	return s.client.Database(s.database).Collection(s.collection), nil
}

// FetchNews returns articles matching the filter.
func (s *MongoStore) FetchNews(ctx context.Context, filter Filter) ([]Article, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	coll, err := s.coll()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(filter.sortDocument()).
		SetLimit(int64(filter.Limit))

	cursor, err := coll.Find(ctx, filter.queryDocument(time.Now()), opts)
	if err != nil {
		return nil, s.surface(ctx, "find", err)
	}
	defer cursor.Close(ctx)

	articles := make([]Article, 0, filter.Limit)
	for cursor.Next(ctx) {
		var a Article
		if err := cursor.Decode(&a); err != nil {
			return nil, s.surface(ctx, "decode", err)
		}
		if a.Tags == nil {
			a.Tags = []string{}
		}
		articles = append(articles, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, s.surface(ctx, "cursor", err)
	}

	s.logger.Debug("fetched articles", "count", len(articles))
	return articles, nil
}

// ListCategories returns the distinct category values present, sorted.
func (s *MongoStore) ListCategories(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "category")
}

// ListTags returns the distinct tag values present, sorted.
func (s *MongoStore) ListTags(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "tags")
}

func (s *MongoStore) distinct(ctx context.Context, field string) ([]string, error) {
	coll, err := s.coll()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	raw, err := coll.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, s.surface(ctx, "distinct "+field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok {
			values = append(values, str)
		}
	}
	sort.Strings(values)
	return values, nil
}

// Count returns the number of articles matching the filter. Limit and sort
// are ignored; the filter's other fields still validate.
func (s *MongoStore) Count(ctx context.Context, filter Filter) (int64, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return 0, err
	}

	coll, err := s.coll()
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	count, err := coll.CountDocuments(ctx, filter.queryDocument(time.Now()))
	if err != nil {
		return 0, s.surface(ctx, "count", err)
	}
	return count, nil
}

// InsertArticles inserts articles into the collection. Used by the seed
// command and integration tests; the tool surface never writes.
func (s *MongoStore) InsertArticles(ctx context.Context, articles []Article) error {
	if len(articles) == 0 {
		return nil
	}

	coll, err := s.coll()
	if err != nil {
		return err
	}

	docs := make([]any, len(articles))
	for i, a := range articles {
		// Articles carry string ids, so assign one here rather than letting
		// the server pick an ObjectID that would not decode back.
		a.ID = primitive.NewObjectID().Hex()
		docs[i] = a
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return s.surface(ctx, "insert", err)
	}
	return nil
}

// DropArticles removes every article. Used by seed --drop.
func (s *MongoStore) DropArticles(ctx context.Context) error {
	coll, err := s.coll()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return s.surface(ctx, "drop", err)
	}
	return nil
}

// EnsureIndexes creates the text index backing search_query and the
// published_at index backing the default sort.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	coll, err := s.coll()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "content", Value: "text"},
			},
		},
		{
			Keys: bson.D{{Key: "published_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tags", Value: 1}},
		},
	}

	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return s.surface(ctx, "create indexes", err)
	}
	return nil
}

// surface converts a query error into ErrUnavailable and makes the single
// reconnect attempt so the next call finds a healthy client. The failed
// query is idempotent but retrying it is the caller's decision, not ours.
func (s *MongoStore) surface(ctx context.Context, op string, err error) error {
	s.logger.Warn("store query failed", "op", op, "error", err)

	// Reconnect with a fresh context; the query context may already be done.
	reconnectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.queryTimeout)
	defer cancel()
	if rerr := s.Connect(reconnectCtx); rerr != nil {
		s.logger.Warn("reconnect failed", "error", rerr)
	}

	return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
}
