package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Command
	}{
		{"go north", "go north", Command{Type: CmdWalk, Direction: North}},
		{"abbreviated", "g s", Command{Type: CmdWalk, Direction: South}},
		{"east", "go east", Command{Type: CmdWalk, Direction: East}},
		{"west short", "go w", Command{Type: CmdWalk, Direction: West}},
		{"extra words ignored", "go north quickly", Command{Type: CmdWalk, Direction: North}},
		{"go alone", "go", invalid},
		{"go nowhere", "go up", invalid},
		{"go double space", "go  north", invalid},
		{"grab", "grab cat", Command{Type: CmdGrab, Item: "cat"}},
		{"grab short", "gr glass door", Command{Type: CmdGrab, Item: "glass door"}},
		{"grab alone", "grab", invalid},
		{"use", "use key on door", Command{Type: CmdUse, Item: "key", Object: "door"}},
		{"use long object", "use key on old wooden door", Command{Type: CmdUse, Item: "key", Object: "old wooden door"}},
		{"use short", "u shovel on glass door", Command{Type: CmdUse, Item: "shovel", Object: "glass door"}},
		{"use multi word item", "use rusty old key on door", Command{Type: CmdUse, Item: "rusty old key", Object: "door"}},
		{"use last on wins", "use x on y on z", Command{Type: CmdUse, Item: "x on y", Object: "z"}},
		{"use item named on", "use on on z", Command{Type: CmdUse, Item: "on", Object: "z"}},
		{"use trailing on", "use key door on", Command{Type: CmdUse, Item: "key door", Object: ""}},
		{"use alone", "use", invalid},
		{"use too short", "use key on", invalid},
		{"use without on", "use key with door", invalid},
		{"inventory", "inventory", Command{Type: CmdInventory}},
		{"inventory short", "i", Command{Type: CmdInventory}},
		{"look", "look", Command{Type: CmdLook}},
		{"look short with words", "l around", Command{Type: CmdLook}},
		{"quit", "quit", Command{Type: CmdQuit}},
		{"q is not quit", "q", invalid},
		{"help", "?", Command{Type: CmdHelp}},
		{"empty", "", invalid},
		{"blank", "   ", invalid},
		{"unknown", "dance", invalid},
		{"case and padding", "  GRAB Cat \n", Command{Type: CmdGrab, Item: "cat"}},
		{"upper direction", "GO NORTH", Command{Type: CmdWalk, Direction: North}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCommand(tt.input))
		})
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "North", North.String())
	assert.Equal(t, "West", West.String())
	assert.Equal(t, "Unknown", Direction(9).String())
}
