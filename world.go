package main

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

//go:embed data/world.ini
var defaultWorld []byte

// Text holds the narration keys of one world file section.
type Text map[string]string

// Line returns the narration stored under key, formatted with args when
// any are given. A missing key renders as "[key]" so gaps show up in play.
func (t Text) Line(key string, args ...any) string {
	line, ok := t[key]
	if !ok {
		return "[" + key + "]"
	}
	if len(args) > 0 {
		return fmt.Sprintf(line, args...)
	}
	return line
}

type World struct {
	Title    string
	Byline   string
	Rooms    []*Room
	Messages Text
}

var exitKeys = map[string]Direction{
	"North": North,
	"South": South,
	"East":  East,
	"West":  West,
}

var roomKeys = map[string]bool{"Name": true, "North": true, "South": true, "East": true, "West": true}

var itemKeys = map[string]bool{"Name": true, "Location": true, "IsTakeable": true}

func sectionText(sec *ini.Section, skip map[string]bool) Text {
	t := Text{}
	for _, key := range sec.Keys() {
		if skip[key.Name()] {
			continue
		}
		t[key.Name()] = key.String()
	}
	return t
}

// loadWorld builds a fresh room arena from world file data. Every call
// returns independent rooms and items, so each session owns its own copy.
func loadWorld(data []byte) (*World, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return nil, fmt.Errorf("parse world: %w", err)
	}

	w := &World{
		Title:    cfg.Section("Game").Key("Title").String(),
		Byline:   cfg.Section("Game").Key("Byline").String(),
		Messages: sectionText(cfg.Section("Messages"), nil),
	}

	// First pass: create rooms
	for i := 0; i < MaxRooms; i++ {
		sectionName := fmt.Sprintf("Room%d", i)
		if !cfg.HasSection(sectionName) {
			break
		}
		sec := cfg.Section(sectionName)
		r := &Room{
			ID:     i,
			Name:   sec.Key("Name").String(),
			Exits:  map[Direction]int{},
			Text:   sectionText(sec, roomKeys),
			script: roomScripts[i],
		}
		if r.script == nil {
			r.script = plainRoom{}
		}
		w.Rooms = append(w.Rooms, r)
	}
	if len(w.Rooms) == 0 {
		return nil, fmt.Errorf("world has no rooms")
	}

	// Second pass: link exits
	for _, r := range w.Rooms {
		sec := cfg.Section(fmt.Sprintf("Room%d", r.ID))
		for name, dir := range exitKeys {
			if !sec.HasKey(name) {
				continue
			}
			target, err := sec.Key(name).Int()
			if err != nil {
				return nil, fmt.Errorf("room %d exit %s: %w", r.ID, name, err)
			}
			if !w.validRoom(target) {
				return nil, fmt.Errorf("room %d exit %s: no room %d", r.ID, name, target)
			}
			r.Exits[dir] = target
		}
	}

	// Load items
	for i := 1; i <= MaxItems; i++ {
		sectionName := fmt.Sprintf("Item%d", i)
		if !cfg.HasSection(sectionName) {
			continue
		}
		sec := cfg.Section(sectionName)
		it := &Item{
			ID:          i,
			Name:        strings.ToLower(sec.Key("Name").String()),
			Home:        sec.Key("Location").MustInt(-1),
			IsGrabbable: sec.Key("IsTakeable").MustInt(0) == 1,
			Text:        sectionText(sec, itemKeys),
		}
		behavior, ok := itemBehaviors[it.Name]
		if !ok {
			return nil, fmt.Errorf("item %q: no behavior registered", it.Name)
		}
		it.behavior = behavior
		if !w.validRoom(it.Home) {
			return nil, fmt.Errorf("item %q: no room %d", it.Name, it.Home)
		}
		room := w.Rooms[it.Home]
		if findItem(room.Items, it.Name) >= 0 {
			return nil, fmt.Errorf("item %q: duplicate name in room %d", it.Name, it.Home)
		}
		room.Items = append(room.Items, it)
	}

	return w, nil
}

func (w *World) validRoom(id int) bool {
	return id >= 0 && id < len(w.Rooms)
}

// Describe renders the room's narration for the current flag state.
func (w *World) Describe(roomID int, f *Flags) string {
	r := w.Rooms[roomID]
	return r.script.Describe(r.Text, f)
}

// CanMove asks the room whether a direction is open right now. It says
// nothing about whether a passage exists there at all.
func (w *World) CanMove(roomID int, f *Flags, d Direction) bool {
	return w.Rooms[roomID].script.CanMove(f, d)
}

func (w *World) Exit(roomID int, d Direction) (int, bool) {
	target, ok := w.Rooms[roomID].Exits[d]
	return target, ok
}

// findItem returns the index of the first item named name, or -1.
func findItem(items []*Item, name string) int {
	for i, it := range items {
		if strings.EqualFold(it.Name, name) {
			return i
		}
	}
	return -1
}
