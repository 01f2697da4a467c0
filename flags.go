package main

import "sort"

// Flag names a boolean in the story's progress.
type Flag string

const (
	FlagGameRunning       Flag = "game_running"
	FlagPickedUpCat       Flag = "picked_up_cat"
	FlagLeverPulled       Flag = "lever_pulled"
	FlagPickedUpShovel    Flag = "picked_up_shovel"
	FlagGlassDoorSmashed  Flag = "glass_door_smashed"
	FlagBucketRaised      Flag = "bucket_raised"
	FlagPickedUpKey       Flag = "picked_up_key"
	FlagBucketOnFloor     Flag = "bucket_on_floor"
	FlagShackDoorUnlocked Flag = "shack_door_unlocked"
	FlagShackDoorOpen     Flag = "shack_door_open"
	FlagCatOnAltar        Flag = "cat_on_altar"
)

// Flags is the fixed set of progress flags for one session. The key set is
// decided in NewFlags and never grows.
type Flags struct {
	values map[Flag]bool
}

func NewFlags() *Flags {
	return &Flags{values: map[Flag]bool{
		FlagGameRunning:       true,
		FlagPickedUpCat:       false,
		FlagLeverPulled:       false,
		FlagPickedUpShovel:    false,
		FlagGlassDoorSmashed:  false,
		FlagBucketRaised:      false,
		FlagPickedUpKey:       false,
		FlagBucketOnFloor:     false,
		FlagShackDoorUnlocked: false,
		FlagShackDoorOpen:     false,
		FlagCatOnAltar:        false,
	}}
}

// Get reports the flag's value; ok is false for names outside the universe.
func (f *Flags) Get(name Flag) (value, ok bool) {
	value, ok = f.values[name]
	return value, ok
}

// Set updates a known flag. Unknown names are ignored.
func (f *Flags) Set(name Flag, value bool) {
	if _, ok := f.values[name]; ok {
		f.values[name] = value
	}
}

// IsSet treats an unknown flag as false.
func (f *Flags) IsSet(name Flag) bool {
	return f.values[name]
}

func (f *Flags) Names() []Flag {
	names := make([]Flag, 0, len(f.values))
	for name := range f.values {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (f *Flags) Snapshot() map[string]bool {
	out := make(map[string]bool, len(f.values))
	for name, v := range f.values {
		out[string(name)] = v
	}
	return out
}
