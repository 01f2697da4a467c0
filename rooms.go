package main

import "strings"

// RoomScript supplies a room's flag-dependent narration and movement gates.
type RoomScript interface {
	Describe(t Text, f *Flags) string
	CanMove(f *Flags, d Direction) bool
}

var roomScripts = map[int]RoomScript{
	RoomCell:         cell{},
	RoomGreenhouse:   greenhouse{},
	RoomWell:         well{},
	RoomShackOutside: shackOutside{},
	RoomShackInside:  shackInside{},
}

// paragraphs joins sentences of one paragraph with spaces and paragraphs
// with newlines.
func paragraphs(ps ...[]string) string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, strings.Join(p, " "))
	}
	return strings.Join(out, "\n")
}

// plainRoom has a single fixed description and no gates.
type plainRoom struct{}

func (plainRoom) Describe(t Text, _ *Flags) string { return t.Line("Description") }

func (plainRoom) CanMove(*Flags, Direction) bool { return true }

type cell struct{}

func (cell) Describe(t Text, f *Flags) string {
	waking := t.Line("Waking")
	if f.IsSet(FlagPickedUpCat) {
		waking = t.Line("WakingCatGone")
	}
	wall := t.Line("Lever")
	if f.IsSet(FlagLeverPulled) {
		wall = t.Line("Passage")
	}
	return paragraphs([]string{waking}, []string{wall})
}

func (cell) CanMove(f *Flags, d Direction) bool {
	if d == North {
		return f.IsSet(FlagLeverPulled)
	}
	return true
}

type greenhouse struct{}

func (greenhouse) Describe(t Text, f *Flags) string {
	door := t.Line("DoorShut")
	if f.IsSet(FlagGlassDoorSmashed) {
		door = t.Line("DoorSmashed")
	}
	table := t.Line("TableShovel")
	if f.IsSet(FlagPickedUpShovel) {
		table = t.Line("Table")
	}
	return paragraphs([]string{t.Line("Intro"), door}, []string{table})
}

func (greenhouse) CanMove(f *Flags, d Direction) bool {
	if d == North {
		return f.IsSet(FlagGlassDoorSmashed)
	}
	return true
}

type well struct{}

func (well) Describe(t Text, f *Flags) string {
	var bucket string
	switch {
	case !f.IsSet(FlagBucketRaised):
		bucket = t.Line("Rope")
	case !f.IsSet(FlagPickedUpKey):
		bucket = t.Line("BucketKey")
	default:
		bucket = t.Line("BucketEmpty")
	}
	return paragraphs([]string{t.Line("Intro"), bucket})
}

func (well) CanMove(*Flags, Direction) bool { return true }

type shackOutside struct{}

func (shackOutside) Describe(t Text, f *Flags) string {
	ps := [][]string{{t.Line("Intro")}}
	switch {
	case !f.IsSet(FlagShackDoorUnlocked):
		ps = append(ps, []string{t.Line("DoorLocked")})
	case f.IsSet(FlagShackDoorOpen):
		ps = append(ps, []string{t.Line("DoorOpen")})
	}
	return paragraphs(ps...)
}

func (shackOutside) CanMove(f *Flags, d Direction) bool {
	if d == East {
		return f.IsSet(FlagShackDoorUnlocked)
	}
	return true
}

type shackInside struct{}

func (shackInside) Describe(t Text, f *Flags) string {
	ps := [][]string{{t.Line("Intro")}}
	if f.IsSet(FlagCatOnAltar) {
		ps = append(ps, []string{t.Line("Mirror")})
	}
	return paragraphs(ps...)
}

func (shackInside) CanMove(*Flags, Direction) bool { return true }
