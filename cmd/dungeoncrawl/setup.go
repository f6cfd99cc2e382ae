package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/samdwyer/dungeoncrawl/internal/config"
	"github.com/samdwyer/dungeoncrawl/internal/redis"
	"github.com/samdwyer/dungeoncrawl/internal/save"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

// flagValues mirrors the config fields a flag can override.
type flagValues struct {
	store      string
	savePath   string
	slot       string
	redisAddr  string
	width      int
	height     int
	difficulty int
	seed       int64
	tui        bool
	logLevel   string
}

var flags flagValues

func addFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.store, "store", config.BackendFile, "save backend: file, sqlite, redis or memory")
	pf.StringVar(&flags.savePath, "save", "var/save.json", "save file (file) or database (sqlite) path")
	pf.StringVar(&flags.slot, "slot", save.DefaultSlot, "save slot for sqlite and redis")
	pf.StringVar(&flags.redisAddr, "redis-addr", "localhost:6379", "redis endpoint")
	pf.IntVar(&flags.width, "width", 5, "dungeon width")
	pf.IntVar(&flags.height, "height", 5, "dungeon height")
	pf.IntVar(&flags.difficulty, "difficulty", 0, "monster difficulty 1-3, 0 asks")
	pf.Int64Var(&flags.seed, "seed", 0, "random seed, 0 for a random game")
	pf.BoolVar(&flags.tui, "tui", false, "use the full-screen console")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
}

// loadConfig reads .env and the environment, then applies explicitly set flags.
func loadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, fs, flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies only the flags the user set, so env values survive.
func applyFlags(cfg *config.Config, fs *pflag.FlagSet, v flagValues) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "store":
			cfg.SaveBackend = v.store
		case "save":
			cfg.SavePath = v.savePath
		case "slot":
			cfg.SaveSlot = v.slot
		case "redis-addr":
			cfg.RedisAddr = v.redisAddr
		case "width":
			cfg.Width = v.width
		case "height":
			cfg.Height = v.height
		case "difficulty":
			cfg.Difficulty = v.difficulty
		case "seed":
			cfg.Seed = v.seed
		case "tui":
			cfg.TUI = v.tui
		case "log-level":
			cfg.LogLevel = v.logLevel
		}
	})
}

// newLogger installs a text handler on stderr at the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	level, err := cfg.Level()
	if err != nil {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// openStore builds the configured save backend.
func openStore(cfg *config.Config) (save.Store, error) {
	switch cfg.SaveBackend {
	case config.BackendFile:
		return save.NewFileStore(cfg.SavePath)
	case config.BackendSQLite:
		return save.OpenSQLite(cfg.SavePath, cfg.SaveSlot)
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		return save.NewRedisStore(client, cfg.SaveSlot)
	case config.BackendMemory:
		return save.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown save backend %q", cfg.SaveBackend)
	}
}

// setupTelemetry starts tracing when enabled and returns its shutdown hook.
func setupTelemetry(ctx context.Context, cfg *config.Config) func() {
	if !cfg.Telemetry {
		return func() {}
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}
}

// setupOTelEnv points the exporter at Honeycomb when an API key is present
// and no collector endpoint was configured.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONCRAWL_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_DUNGEONCRAWL_DATASET")
	if dataset == "" {
		dataset = "dungeoncrawl"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
