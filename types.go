package main

const (
	MaxRooms     = 20
	MaxItems     = 24
	MaxHistory   = 10
	DefaultWidth = 79
)

// Room ids referenced by item and room scripts. They must match the
// [RoomN] sections of the world file.
const (
	RoomCell = iota
	RoomGreenhouse
	RoomCrossroads
	RoomWell
	RoomShackOutside
	RoomShackInside
)

type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = [...]string{"North", "South", "East", "West"}

func (d Direction) String() string {
	if d < North || d > West {
		return "Unknown"
	}
	return directionNames[d]
}

type Room struct {
	ID     int
	Name   string
	Exits  map[Direction]int
	Items  []*Item
	Text   Text
	script RoomScript
}

type Item struct {
	ID          int
	Name        string
	Home        int
	IsGrabbable bool
	Text        Text
	behavior    ItemBehavior
}
