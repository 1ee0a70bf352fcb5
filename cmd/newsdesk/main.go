// ABOUTME: Entry point for the newsdesk MCP gateway
// ABOUTME: Serves news article tools over MCP backed by MongoDB

package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/2389/newsdesk/internal/config"
	"github.com/2389/newsdesk/internal/gateway"
	"github.com/2389/newsdesk/internal/seed"
	"github.com/2389/newsdesk/internal/store"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
                                 _             _
 _ __    ___ __      __ ___   __| |  ___  ___ | | __
| '_ \  / _ \\ \ /\ / // __| / _' | / _ \/ __|| |/ /
| | | ||  __/ \ V  V / \__ \| (_| ||  __/\__ \|   <
|_| |_| \___|  \_/\_/  |___/ \__,_| \___||___/|_|\_\
`

// getConfigPath returns the path to the newsdesk config file.
// Priority: NEWSDESK_CONFIG env var > XDG_CONFIG_HOME/newsdesk/newsdesk.yaml > ~/.config/newsdesk/newsdesk.yaml
func getConfigPath() string {
	if envPath := os.Getenv("NEWSDESK_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "newsdesk.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "newsdesk", "newsdesk.yaml")
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: newsdesk <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve [--mock]   Start the MCP gateway server")
		fmt.Println("  seed [--drop]    Insert sample articles into MongoDB")
		fmt.Println("  init             Create a new config file interactively")
		fmt.Println("  health           Check gateway health")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "seed":
		err = runSeed(ctx)
	case "init":
		err = runInit()
	case "health":
		err = runHealth(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	mock := hasFlag(os.Args[2:], "--mock")
	configPath := getConfigPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	// Version info
	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	cfg, err := loadConfig(configPath, mock)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Logging)

	// Startup info
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	green.Print("    ▶ ")
	fmt.Printf("Config:  %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:    %s\n", cfg.Server.HTTPAddr)
	green.Print("    ▶ ")
	fmt.Printf("Store:   ")
	if mock {
		yellow.Println("in-memory mock")
	} else {
		fmt.Printf("%s/%s\n", cfg.MongoDB.Database, cfg.MongoDB.Collection)
	}
	if len(cfg.MCP.AccessKeys) > 0 {
		green.Print("    ▶ ")
		fmt.Printf("Access:  %d key(s) configured\n", len(cfg.MCP.AccessKeys))
	}

	fmt.Println()

	logger.Info("starting newsdesk",
		"config", configPath,
		"http_addr", cfg.Server.HTTPAddr,
		"mock", mock,
	)

	var opts gateway.Options
	if mock {
		mockStore := store.NewMockStore()
		mockStore.Insert(seed.SampleArticles(time.Now())...)
		opts.MockStore = mockStore
	}

	gw, err := gateway.New(cfg, logger, opts)
	if err != nil {
		return fmt.Errorf("creating gateway: %w", err)
	}

	return gw.Run(ctx)
}

// loadConfig reads the config file. With the mock store a missing file
// is fine and a built-in default configuration is used instead.
func loadConfig(path string, mock bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if mock && os.IsNotExist(err) {
		return &config.Config{
			Server:  config.ServerConfig{HTTPAddr: config.DefaultHTTPAddr},
			Logging: config.LoggingConfig{Level: "info", Format: "text"},
		}, nil
	}
	return nil, fmt.Errorf("loading config: %w", err)
}

func runSeed(ctx context.Context) error {
	drop := hasFlag(os.Args[2:], "--drop")
	configPath := getConfigPath()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)

	mongoStore := store.NewMongoStore(store.MongoConfig{
		URI:          cfg.MongoDB.URI,
		Database:     cfg.MongoDB.Database,
		Collection:   cfg.MongoDB.Collection,
		QueryTimeout: cfg.MongoDB.QueryTimeout,
		Logger:       logger.With("component", "store"),
	})
	if err := mongoStore.Connect(ctx); err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	defer mongoStore.Close(context.Background())

	n, err := seed.Run(ctx, mongoStore, seed.Options{
		Drop:   drop,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	green.Printf("  ✓ Seeded %d articles into %s/%s\n", n, cfg.MongoDB.Database, cfg.MongoDB.Collection)
	return nil
}

func runHealth(ctx context.Context) error {
	configPath := getConfigPath()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	addr := cfg.Server.HTTPAddr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	url := fmt.Sprintf("http://%s/healthz", addr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}

	fmt.Println("healthy")
	return nil
}

func runInit() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("newsdesk configuration setup")
	fmt.Println("============================")
	fmt.Println()

	defaultConfigPath := getConfigPath()

	outputFile := prompt(reader, "Config file path", defaultConfigPath)

	if _, err := os.Stat(outputFile); err == nil {
		overwrite := prompt(reader, "File exists. Overwrite?", "no")
		if strings.ToLower(overwrite) != "yes" && strings.ToLower(overwrite) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println("\n--- Server Configuration ---")
	httpAddr := prompt(reader, "HTTP address", config.DefaultHTTPAddr)

	fmt.Println("\n--- MongoDB Configuration ---")
	mongoURI := prompt(reader, "MongoDB URI", "mongodb://localhost:27017")
	database := prompt(reader, "Database", config.DefaultDatabase)
	collection := prompt(reader, "Collection", config.DefaultCollection)
	queryTimeout := prompt(reader, "Query timeout", "5s")

	fmt.Println("\n--- MCP Configuration ---")
	accessKey := prompt(reader, "Access key (leave empty for open endpoint)", "")

	fmt.Println("\n--- Logging Configuration ---")
	logLevel := prompt(reader, "Log level (debug/info/warn/error)", "info")
	logFormat := prompt(reader, "Log format (text/json)", "text")

	var cfg strings.Builder
	cfg.WriteString("# newsdesk configuration\n")
	cfg.WriteString("# Generated by newsdesk init\n\n")

	cfg.WriteString("server:\n")
	cfg.WriteString(fmt.Sprintf("  http_addr: \"%s\"\n", httpAddr))
	cfg.WriteString("\n")

	cfg.WriteString("mongodb:\n")
	cfg.WriteString(fmt.Sprintf("  uri: \"%s\"\n", mongoURI))
	cfg.WriteString(fmt.Sprintf("  database: \"%s\"\n", database))
	cfg.WriteString(fmt.Sprintf("  collection: \"%s\"\n", collection))
	cfg.WriteString(fmt.Sprintf("  query_timeout: \"%s\"\n", queryTimeout))
	cfg.WriteString("\n")

	cfg.WriteString("mcp:\n")
	if accessKey != "" {
		cfg.WriteString("  access_keys:\n")
		cfg.WriteString(fmt.Sprintf("    - \"%s\"\n", accessKey))
	} else {
		cfg.WriteString("  access_keys: []\n")
	}
	cfg.WriteString("\n")

	cfg.WriteString("logging:\n")
	cfg.WriteString(fmt.Sprintf("  level: \"%s\"\n", logLevel))
	cfg.WriteString(fmt.Sprintf("  format: \"%s\"\n", logFormat))

	configDir := filepath.Dir(outputFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(outputFile, []byte(cfg.String()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Printf("\nConfig written to %s\n", outputFile)
	fmt.Println("\nNext steps:")
	fmt.Println("  newsdesk seed     # load sample articles")
	fmt.Println("  newsdesk serve    # start the gateway")

	return nil
}

func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

func prompt(reader *bufio.Reader, question, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s [%s]: ", question, defaultVal)
	} else {
		fmt.Printf("%s: ", question)
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		// On EOF or error, return default
		fmt.Println()
		return defaultVal
	}
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultVal
	}
	return input
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = &colorHandler{
			level: level,
		}
	}

	return slog.New(handler)
}

// colorHandler provides colorized log output with thread-safe writes.
type colorHandler struct {
	mu     sync.Mutex
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	buf.WriteString(color.HiBlackString(r.Time.Format("15:04:05") + " "))

	switch r.Level {
	case slog.LevelDebug:
		buf.WriteString(color.MagentaString("DBG "))
	case slog.LevelInfo:
		buf.WriteString(color.CyanString("INF "))
	case slog.LevelWarn:
		buf.WriteString(color.YellowString("WRN "))
	case slog.LevelError:
		buf.WriteString(color.New(color.FgRed, color.Bold).Sprint("ERR "))
	default:
		buf.WriteString("??? ")
	}

	buf.WriteString(r.Message)

	// Handler-level attrs first (from WithAttrs)
	for _, a := range h.attrs {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
	}

	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	fmt.Print(buf.String())
	return nil
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &colorHandler{
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups), len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups = append(newGroups, name)
	return &colorHandler{
		level:  h.level,
		attrs:  h.attrs,
		groups: newGroups,
	}
}
