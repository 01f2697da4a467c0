package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// NewGame builds a session over a fresh copy of the world in data. Output
// goes to out, or stdout when out is nil.
func NewGame(data []byte, out io.Writer, logger *slog.Logger) (*GameState, error) {
	w, err := loadWorld(data)
	if err != nil {
		return nil, err
	}
	var s GameState
	initState(&s, w)
	if out != nil {
		s.Out = out
	}
	if logger != nil {
		s.logger = logger
	}
	s.logger = s.logger.With("session", s.ID.String())
	s.logger.Info("world loaded", "rooms", len(w.Rooms))
	return &s, nil
}

// Start prints the opening room.
func (s *GameState) Start() {
	processCommand(s, Command{Type: CmdLook})
}

// Run plays the session against in until the game stops running. A failed
// read is fatal: the loop stops without further narration and returns it.
func (s *GameState) Run(in LineReader) error {
	s.pause = func() {
		if _, err := in.ReadLine(""); err != nil {
			s.logger.Debug("pause read failed", "error", err)
		}
	}
	defer func() { s.pause = nil }()

	s.Start()
	for s.IsPlaying() {
		outPrintln(s)
		outPrintln(s, s.World.Messages.Line("Prompt"))
		line, err := in.ReadLine("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = errInputClosed
			}
			return fmt.Errorf("read command: %w", err)
		}
		processCommand(s, parseCommand(line))
	}
	return nil
}
