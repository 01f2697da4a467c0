package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type CommandType string

const (
	CmdWalk      CommandType = "walk"
	CmdGrab      CommandType = "grab"
	CmdUse       CommandType = "use"
	CmdLook      CommandType = "look"
	CmdInventory CommandType = "inventory"
	CmdQuit      CommandType = "quit"
	CmdHelp      CommandType = "help"
	CmdInvalid   CommandType = "invalid"
)

// Command is one parsed line. Direction is set for walk, Item for grab and
// use, Object for use.
type Command struct {
	Type      CommandType
	Direction Direction
	Item      string
	Object    string
}

var invalid = Command{Type: CmdInvalid}

type commandParser func(tokens []string) Command

type commandEntry struct {
	verb   string
	parser commandParser
}

func fixed(t CommandType) commandParser {
	return func([]string) Command { return Command{Type: t} }
}

var commands = []commandEntry{
	{"go", parseWalk},
	{"g", parseWalk},
	{"grab", parseGrab},
	{"gr", parseGrab},
	{"use", parseUse},
	{"u", parseUse},
	{"inventory", fixed(CmdInventory)},
	{"i", fixed(CmdInventory)},
	{"look", fixed(CmdLook)},
	{"l", fixed(CmdLook)},
	{"quit", fixed(CmdQuit)},
	{"?", fixed(CmdHelp)},
}

var directionWords = map[string]Direction{
	"n": North, "north": North,
	"s": South, "south": South,
	"e": East, "east": East,
	"w": West, "west": West,
}

// tokenize lowercases and trims the line, then splits on single spaces.
// Runs of spaces leave empty tokens behind.
func tokenize(line string) []string {
	lower := cases.Lower(language.Und).String(line)
	return strings.Split(strings.TrimSpace(lower), " ")
}

func parseCommand(line string) Command {
	tokens := tokenize(line)
	for _, entry := range commands {
		if tokens[0] == entry.verb {
			return entry.parser(tokens)
		}
	}
	return invalid
}

func parseWalk(tokens []string) Command {
	if len(tokens) < 2 {
		return invalid
	}
	d, ok := directionWords[tokens[1]]
	if !ok {
		return invalid
	}
	return Command{Type: CmdWalk, Direction: d}
}

func parseGrab(tokens []string) Command {
	if len(tokens) < 2 {
		return invalid
	}
	return Command{Type: CmdGrab, Item: strings.Join(tokens[1:], " ")}
}

// parseUse splits "use ITEM on OBJECT" at the last "on" from the third
// token onwards, so "use x on y on z" uses "x on y" on "z".
func parseUse(tokens []string) Command {
	if len(tokens) < 4 {
		return invalid
	}
	on := 0
	for i := 2; i < len(tokens); i++ {
		if tokens[i] == "on" {
			on = i
		}
	}
	if on < 2 {
		return invalid
	}
	return Command{
		Type:   CmdUse,
		Item:   strings.Join(tokens[1:on], " "),
		Object: strings.Join(tokens[on+1:], " "),
	}
}

func processCommand(s *GameState, cmd Command) {
	s.logger.Debug("dispatch", "command", cmd.Type, "room", s.CurrentRoom)

	switch cmd.Type {
	case CmdWalk:
		s.CurrentRoom = changeRoom(s, cmd.Direction)
	case CmdGrab:
		grabItem(s, cmd.Item)
	case CmdUse:
		useItem(s, cmd.Item, cmd.Object)
	case CmdLook:
		look(s)
	case CmdInventory:
		listInventory(s)
	case CmdHelp:
		showHelp(s)
	case CmdQuit:
		s.Flags.Set(FlagGameRunning, false)
	default:
		outPrintln(s, s.World.Messages.Line("Invalid"))
	}

	if !s.IsPlaying() {
		s.logger.Info("game over", "room", s.CurrentRoom, "command", cmd.Type)
	}
}

// changeRoom returns the room the player ends up in. A closed gate and a
// missing passage read the same to the player.
func changeRoom(s *GameState, d Direction) int {
	w := s.World
	if !w.CanMove(s.CurrentRoom, s.Flags, d) {
		outPrintln(s, w.Messages.Line("DeadEnd"))
		return s.CurrentRoom
	}
	next, ok := w.Exit(s.CurrentRoom, d)
	if !ok {
		outPrintln(s, w.Messages.Line("DeadEnd"))
		return s.CurrentRoom
	}
	wrapWriteLn(s, w.Describe(next, s.Flags))
	return next
}

func look(s *GameState) {
	wrapWriteLn(s, s.World.Describe(s.CurrentRoom, s.Flags))
}

func grabItem(s *GameState, name string) {
	room := s.World.Rooms[s.CurrentRoom]
	i := findItem(room.Items, name)
	if i < 0 {
		outPrintln(s, s.World.Messages.Line("FoundNothing"))
		return
	}
	it := room.Items[i]
	it.behavior.OnGrab(newScene(s, it))
	if !it.IsGrabbable {
		return
	}
	room.Items = append(room.Items[:i], room.Items[i+1:]...)
	s.Inventory = append(s.Inventory, it)
	s.logger.Debug("item taken", "item", it.Name, "room", room.ID)
}

func useItem(s *GameState, name, object string) {
	i := findItem(s.Inventory, name)
	if i < 0 {
		outPrintln(s, s.World.Messages.Line("NotPossessed", name))
		return
	}
	it := s.Inventory[i]
	if !it.IsGrabbable {
		return
	}
	if it.behavior.OnUse(newScene(s, it), object) {
		s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
		s.logger.Debug("item consumed", "item", it.Name)
	}
}

func inventoryNames(s *GameState) []string {
	names := make([]string, 0, len(s.Inventory))
	for _, it := range s.Inventory {
		names = append(names, it.Name)
	}
	return names
}

func listInventory(s *GameState) {
	contents := s.World.Messages.Line("InventoryEmpty")
	if len(s.Inventory) > 0 {
		contents = strings.Join(inventoryNames(s), " ")
	}
	outPrintf(s, "%s %s\n", s.World.Messages.Line("InventoryHeader"), contents)
}

func showHelp(s *GameState) {
	m := s.World.Messages
	outPrintln(s)
	outPrintln(s, m.Line("HelpTitle"))
	outPrintln(s, strings.Repeat("=", len(m.Line("HelpTitle"))))
	outPrintln(s, m.Line("HelpActions"))
	outPrintln(s, m.Line("HelpMovement"))
	outPrintln(s, m.Line("HelpSystem"))
	outPrintln(s)
}
