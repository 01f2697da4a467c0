package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// setupLogger configures the global slog logger. Logs never go to stdout,
// which belongs to the game (or to the MCP protocol). The returned closer
// releases the log file, if one was opened.
func setupLogger(cfg *Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	w := stderr
	closer := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closer = f.Close
	} else if cfg.TUI {
		// stderr shares the screen with the TUI
		w = io.Discard
	}

	var handler slog.Handler
	if strings.HasSuffix(cfg.LogFile, ".json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closer, nil
}
