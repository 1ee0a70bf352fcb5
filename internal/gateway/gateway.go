// ABOUTME: Composition root wiring store, tools, MCP transport and HTTP server
// ABOUTME: Owns startup connection, serving and graceful shutdown

package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/2389/newsdesk/internal/assets"
	"github.com/2389/newsdesk/internal/config"
	"github.com/2389/newsdesk/internal/mcp"
	"github.com/2389/newsdesk/internal/news"
	"github.com/2389/newsdesk/internal/store"
	"github.com/2389/newsdesk/internal/tools"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

// Gateway owns the serving components and their lifecycle.
type Gateway struct {
	config     *config.Config
	logger     *slog.Logger
	store      store.Store
	mongoStore *store.MongoStore // nil when serving from a mock store
	httpServer *http.Server
}

// Options tweak gateway construction.
type Options struct {
	// MockStore serves from an in-memory seeded store instead of MongoDB.
	// Useful for local development without a database.
	MockStore store.Store
}

// New builds a Gateway from configuration. The store connection is
// established later, in Run; inability to connect at startup is fatal there.
func New(cfg *config.Config, logger *slog.Logger, opts Options) (*Gateway, error) {
	gw := &Gateway{
		config: cfg,
		logger: logger,
	}

	if opts.MockStore != nil {
		gw.store = opts.MockStore
	} else {
		gw.mongoStore = store.NewMongoStore(store.MongoConfig{
			URI:          cfg.MongoDB.URI,
			Database:     cfg.MongoDB.Database,
			Collection:   cfg.MongoDB.Collection,
			QueryTimeout: cfg.MongoDB.QueryTimeout,
			Logger:       logger.With("component", "store"),
		})
		gw.store = gw.mongoStore
	}

	// The registry is populated once here and read-only afterwards.
	registry := tools.NewRegistry(logger.With("component", "registry"))
	if err := registry.Register(news.Pack(gw.store)...); err != nil {
		return nil, fmt.Errorf("registering news tools: %w", err)
	}
	dispatcher := tools.NewDispatcher(registry, logger.With("component", "dispatcher"))

	mux := http.NewServeMux()

	mcpServer, err := mcp.NewServer(mcp.Config{
		Dispatcher: dispatcher,
		Logger:     logger.With("component", "mcp"),
		Keys:       mcp.NewKeySet(cfg.MCP.AccessKeys),
	})
	if err != nil {
		return nil, fmt.Errorf("creating MCP server: %w", err)
	}
	mcpServer.RegisterRoutes(mux)

	assets.RegisterRoutes(mux)
	mux.HandleFunc("/healthz", gw.handleHealth)

	gw.httpServer = &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return gw, nil
}

// Run connects the store, starts the HTTP server and blocks until the
// context is canceled or the server fails. Returns nil on graceful
// shutdown.
func (g *Gateway) Run(ctx context.Context) error {
	if g.mongoStore != nil {
		if err := g.mongoStore.Connect(ctx); err != nil {
			return fmt.Errorf("connecting to store: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		g.logger.Info("HTTP server listening", "addr", g.httpServer.Addr)
		if err := g.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		g.logger.Info("shutdown signal received")
	case serveErr = <-errCh:
		g.logger.Error("server failed", "error", serveErr)
	}

	if err := g.shutdown(); err != nil && serveErr == nil {
		serveErr = err
	}
	return serveErr
}

// shutdown stops the HTTP server and closes the store connection with a
// fresh timeout context, since the run context is already done.
func (g *Gateway) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var firstErr error
	if err := g.httpServer.Shutdown(ctx); err != nil {
		firstErr = fmt.Errorf("shutting down HTTP server: %w", err)
	}
	if g.mongoStore != nil {
		if err := g.mongoStore.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	g.logger.Info("gateway stopped")
	return firstErr
}

// handleHealth reports process liveness and store reachability.
func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	code := http.StatusOK

	if _, err := g.store.Count(r.Context(), store.Filter{}); err != nil {
		status["status"] = "degraded"
		status["store"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(status)
}
