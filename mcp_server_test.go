package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *MCPServer {
	t.Helper()
	server, err := NewMCPServer(defaultWorld, 10000, quietLogger())
	require.NoError(t, err)
	return server
}

func TestNewMCPServerRejectsBrokenWorld(t *testing.T) {
	_, err := NewMCPServer([]byte("[Game]\n"), DefaultWidth, quietLogger())
	require.Error(t, err)
}

func TestHandleCommand(t *testing.T) {
	server := newTestServer(t)

	_, out, err := server.HandleCommand(context.Background(), nil, &CommandInput{Command: "grab cat"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Contains(t, out.Output, "purrs")
	assert.Equal(t, []string{"cat"}, out.State.Inventory)
	assert.Equal(t, RoomCell, out.State.RoomID)
	assert.Equal(t, "Cell", out.State.RoomName)
	assert.True(t, out.State.IsPlaying)
	assert.True(t, out.State.Flags[string(FlagPickedUpCat)])
	assert.Len(t, out.State.Flags, 11)
}

func TestHandleCommandBlankLooks(t *testing.T) {
	server := newTestServer(t)

	_, out, err := server.HandleCommand(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Contains(t, out.Output, "waking up")
}

func TestHandleCommandReset(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	_, first, err := server.HandleCommand(ctx, nil, &CommandInput{Command: "grab cat"})
	require.NoError(t, err)

	_, out, err := server.HandleCommand(ctx, nil, &CommandInput{Reset: true, Command: "inventory"})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "fat CAT")
	assert.Contains(t, out.Output, "an empty void...")
	assert.Empty(t, out.State.Inventory)
	assert.NotEqual(t, first.State.SessionID, out.State.SessionID)

	_, out, err = server.HandleCommand(ctx, nil, &CommandInput{Reset: true})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "fat CAT")
	assert.NotContains(t, out.Output, "Invalid command!")
}

func TestHandleCommandAfterGameOver(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	_, out, err := server.HandleCommand(ctx, nil, &CommandInput{Command: "quit"})
	require.NoError(t, err)
	assert.False(t, out.State.IsPlaying)

	_, out, err = server.HandleCommand(ctx, nil, &CommandInput{Command: "look"})
	require.NoError(t, err)
	assert.Equal(t, "The game is over. Reset to play again.\n", out.Output)
}

func TestHandleCommandEnding(t *testing.T) {
	server := newTestServer(t)
	server.game.CurrentRoom = RoomShackInside

	_, out, err := server.HandleCommand(context.Background(), nil, &CommandInput{Command: "grab head"})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "THE END!")
	assert.NotContains(t, out.Output, "Press a key")
	assert.False(t, out.State.IsPlaying)
	assert.Equal(t, "Inside the shack", out.State.RoomName)
}

func TestExecuteCommandRestoresOutput(t *testing.T) {
	s, buf := newTestGame(t)

	output, summary := ExecuteCommand(s, "  look  ")
	assert.Contains(t, output, "waking up")
	assert.Empty(t, buf.String())
	assert.Same(t, buf, s.Out)
	assert.Equal(t, s.ID.String(), summary.SessionID)
}
