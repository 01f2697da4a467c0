package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestGame returns a session on the built-in world whose narration is
// captured unwrapped in the returned buffer.
func newTestGame(t *testing.T) (*GameState, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s, err := NewGame(defaultWorld, &buf, quietLogger())
	require.NoError(t, err)
	s.Width = 10000
	return s, &buf
}

// play dispatches each line in turn.
func play(s *GameState, lines ...string) {
	for _, line := range lines {
		processCommand(s, parseCommand(line))
	}
}
