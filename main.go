package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
)

const banner = ` ____  ____  _     _____ _      _____ _     ____  _____ _
/  _ \/  _ \/ \ |\/  __// \  /|/__ __Y \ /\/  __\/  __// \
| / \|| | \|| | //|  \  | |\ ||  / \ | | |||  \/||  \  | |
| |-||| |_/|| \// |  /_ | | \||  | | | \_/||    /|  /_ \_/
\_/ \|\____/\__/  \____\\_/  \|  \_/ \____/\_/\_\\____\(_)`

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := setupLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("session aborted", "error", err)
		_ = closeLog()
		os.Exit(1)
	}
	_ = closeLog()
}

func run(cfg *Config, logger *slog.Logger) error {
	data, err := cfg.worldData()
	if err != nil {
		return err
	}

	if cfg.MCP {
		server, err := NewMCPServer(data, cfg.Width, logger)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return RunMCPStdio(ctx, server)
	}

	s, err := NewGame(data, os.Stdout, logger)
	if err != nil {
		return err
	}
	s.Width = cfg.Width
	s.IsHeadless = cfg.Headless

	if cfg.TUI {
		return runTUI(s)
	}

	in := newLineReader(s, os.Stdin)
	if err := titleScreen(s, in); err != nil {
		return err
	}
	return s.Run(in)
}

// titleScreen clears the terminal, shows the banner and waits for enter.
func titleScreen(s *GameState, in LineReader) error {
	if !s.IsHeadless {
		outPrint(s, "\x1b[2J\x1b[H")
	}
	outPrintln(s)
	outPrintln(s, titleStyle.Render(banner))
	outPrintln(s)
	outPrintln(s, s.World.Byline)
	outPrintln(s, "Press a key to begin.")
	if _, err := in.ReadLine(""); err != nil {
		return fmt.Errorf("read title screen: %w", err)
	}
	return nil
}
