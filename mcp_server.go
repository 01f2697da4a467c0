package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type CommandInput struct {
	Command string `json:"command" jsonschema:"Game command to execute"`
	Reset   bool   `json:"reset,omitempty" jsonschema:"Reset the game before executing the command"`
}

type CommandOutput struct {
	Output string      `json:"output" jsonschema:"Raw game output"`
	State  GameSummary `json:"state" jsonschema:"Summary of the current game state"`
}

// MCPServer drives a single game session for an MCP client. Tool calls
// are serialised so the session only ever sees one command at a time.
type MCPServer struct {
	mu     sync.Mutex
	game   *GameState
	world  []byte
	width  int
	logger *slog.Logger
}

func NewMCPServer(world []byte, width int, logger *slog.Logger) (*MCPServer, error) {
	server := &MCPServer{world: world, width: width, logger: logger}
	if _, err := server.reset(); err != nil {
		return nil, err
	}
	return server, nil
}

// reset starts a fresh session and returns its opening narration.
func (s *MCPServer) reset() (string, error) {
	var buf bytes.Buffer
	game, err := NewGame(s.world, &buf, s.logger)
	if err != nil {
		return "", err
	}
	game.Width = s.width
	game.Start()
	game.Out = io.Discard
	s.game = game
	return buf.String(), nil
}

// ExecuteCommand runs one line against the session and returns what it
// printed. A blank line looks around.
func ExecuteCommand(s *GameState, cmd string) (string, GameSummary) {
	var buf bytes.Buffer
	prevOut := s.Out
	s.Out = &buf
	defer func() {
		s.Out = prevOut
	}()

	trimmed := strings.TrimSpace(cmd)
	switch {
	case !s.IsPlaying():
		outPrintln(s, s.World.Messages.Line("GameOver"))
	case trimmed == "":
		processCommand(s, Command{Type: CmdLook})
	default:
		processCommand(s, parseCommand(trimmed))
	}

	return buf.String(), SummarizeState(s)
}

func (s *MCPServer) HandleCommand(_ context.Context, _ *mcp.CallToolRequest, input *CommandInput) (*mcp.CallToolResult, *CommandOutput, error) {
	if input == nil {
		input = &CommandInput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Reset {
		output, err := s.reset()
		if err != nil {
			return nil, nil, fmt.Errorf("reset game: %w", err)
		}
		if strings.TrimSpace(input.Command) != "" {
			more, _ := ExecuteCommand(s.game, input.Command)
			output += more
		}
		return nil, &CommandOutput{
			Output: output,
			State:  SummarizeState(s.game),
		}, nil
	}

	output, summary := ExecuteCommand(s.game, input.Command)
	s.logger.Debug("mcp command", "command", input.Command, "room", summary.RoomID)
	return nil, &CommandOutput{
		Output: output,
		State:  summary,
	}, nil
}

// RunMCPStdio serves the command tool over stdin/stdout until the client
// disconnects or ctx is cancelled.
func RunMCPStdio(ctx context.Context, server *MCPServer) error {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "adventure",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "command",
		Description: "Send a command to the Adventure! game and return output plus state summary.",
	}, server.HandleCommand)

	return mcpServer.Run(ctx, &mcp.StdioTransport{})
}
