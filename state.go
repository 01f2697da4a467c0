package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type GameState struct {
	ID          uuid.UUID
	World       *World
	Flags       *Flags
	CurrentRoom int
	Inventory   []*Item

	Out        io.Writer
	Width      int
	IsHeadless bool

	History      [MaxHistory + 1]string
	HistoryCount int

	logger *slog.Logger
	// pause blocks until the player presses enter. Nil when the
	// front-end cannot block.
	pause func()
}

func initState(s *GameState, w *World) {
	s.ID = uuid.New()
	s.World = w
	s.Flags = NewFlags()
	s.CurrentRoom = RoomCell
	s.Inventory = nil
	s.Width = DefaultWidth
	for i := 0; i <= MaxHistory; i++ {
		s.History[i] = ""
	}
	s.HistoryCount = 0
	s.logger = slog.Default()
	s.pause = nil
}

// IsPlaying reports whether the session is still running. Any reaction may
// clear it, not only the quit command.
func (s *GameState) IsPlaying() bool {
	return s.Flags.IsSet(FlagGameRunning)
}
