package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Headless  bool
	TUI       bool
	MCP       bool
	WorldPath string
	Width     int
	LogLevel  slog.Level
	LogFile   string
}

func parseConfig(args []string, stderr io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("adventure", flag.ContinueOnError)
	fs.SetOutput(stderr)

	logLevel := fs.String("log-level", getEnv("ADVENTURE_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error")
	fs.BoolVar(&cfg.Headless, "headless", false, "Run in headless mode (no raw terminal input)")
	fs.BoolVar(&cfg.TUI, "tui", false, "Run the full-screen terminal UI")
	fs.BoolVar(&cfg.MCP, "mcp", false, "Serve the game as an MCP tool over stdin/stdout")
	fs.StringVar(&cfg.WorldPath, "world", "", "Load the world from this INI file instead of the built-in one")
	fs.IntVar(&cfg.Width, "width", DefaultWidth, "Wrap narration at this many columns")
	fs.StringVar(&cfg.LogFile, "log-file", getEnv("ADVENTURE_LOG_FILE", ""), "Write logs to this file instead of stderr")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: adventure [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.TUI && cfg.MCP {
		return nil, fmt.Errorf("-tui and -mcp cannot be combined")
	}
	if cfg.Width < 20 {
		return nil, fmt.Errorf("-width must be at least 20, got %d", cfg.Width)
	}
	cfg.LogLevel = parseLogLevel(*logLevel)
	return cfg, nil
}

// worldData returns the configured world file, or the built-in world.
func (c *Config) worldData() ([]byte, error) {
	if c.WorldPath == "" {
		return defaultWorld, nil
	}
	data, err := os.ReadFile(c.WorldPath)
	if err != nil {
		return nil, fmt.Errorf("read world: %w", err)
	}
	return data, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
