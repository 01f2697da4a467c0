package main

// ItemBehavior is an item's reaction to being grabbed or used.
//
// OnGrab runs whenever the item is found in the current room, whether or
// not it can be taken. OnUse only runs for items in the inventory and
// reports whether the item was consumed.
type ItemBehavior interface {
	OnGrab(sc *Scene)
	OnUse(sc *Scene, object string) bool
}

// Scene is what a reaction sees while it runs: the flags, the room the
// player stands in, and the acting item's narration.
type Scene struct {
	Flags *Flags
	Room  int
	text  Text
	s     *GameState
}

func newScene(s *GameState, it *Item) *Scene {
	return &Scene{Flags: s.Flags, Room: s.CurrentRoom, text: it.Text, s: s}
}

// Say prints one line of the item's narration.
func (sc *Scene) Say(key string, args ...any) {
	wrapWriteLn(sc.s, sc.text.Line(key, args...))
}

// Pause waits for the player to press enter. Front-ends that cannot
// block, such as the MCP tool, skip it.
func (sc *Scene) Pause() {
	if sc.s.pause == nil {
		return
	}
	wrapWriteLn(sc.s, sc.s.World.Messages.Line("PressKey"))
	sc.s.pause()
}

var itemBehaviors = map[string]ItemBehavior{
	"cat":        cat{},
	"lever":      lever{},
	"shovel":     shovel{},
	"glass door": fixture{grab: "Grab"},
	"rope":       rope{},
	"key":        key{},
	"door":       shackDoor{},
	"altar":      fixture{grab: "Grab"},
	"head":       head{},
}

// fixture is an item that never leaves its room. grab names the line it
// says when pulled at, if it has nothing smarter to do.
type fixture struct {
	grab string
}

func (f fixture) OnGrab(sc *Scene) {
	if f.grab != "" {
		sc.Say(f.grab)
	}
}

func (fixture) OnUse(*Scene, string) bool { return false }

type cat struct{}

func (cat) OnGrab(sc *Scene) {
	sc.Say("Grab")
	sc.Flags.Set(FlagPickedUpCat, true)
}

// OnUse on the altar reveals the mirror but the cat comes back to the
// pocket, so it is never consumed.
func (cat) OnUse(sc *Scene, object string) bool {
	switch {
	case sc.Room == RoomCell && object == "lever":
		sc.Say("UseLever")
	case sc.Room == RoomShackInside && object == "altar":
		sc.Say("UseAltar")
		sc.Flags.Set(FlagCatOnAltar, true)
	default:
		sc.Say("Confused")
	}
	return false
}

type lever struct{ fixture }

func (lever) OnGrab(sc *Scene) {
	if sc.Flags.IsSet(FlagLeverPulled) {
		sc.Say("Stuck")
		return
	}
	sc.Say("Pull")
	sc.Flags.Set(FlagLeverPulled, true)
}

type shovel struct{}

func (shovel) OnGrab(sc *Scene) {
	sc.Say("Grab")
	sc.Flags.Set(FlagPickedUpShovel, true)
}

func (shovel) OnUse(sc *Scene, object string) bool {
	if sc.Room != RoomGreenhouse || object != "glass door" {
		sc.Say("Unsure", object)
		return false
	}
	if sc.Flags.IsSet(FlagGlassDoorSmashed) {
		sc.Say("AlreadySmashed")
		return false
	}
	sc.Say("Smash")
	sc.Flags.Set(FlagGlassDoorSmashed, true)
	return false
}

type rope struct{ fixture }

func (rope) OnGrab(sc *Scene) {
	switch {
	case !sc.Flags.IsSet(FlagBucketRaised):
		sc.Say("PullUp")
		sc.Flags.Set(FlagBucketRaised, true)
	case !sc.Flags.IsSet(FlagBucketOnFloor):
		sc.Say("PullDown")
		sc.Flags.Set(FlagBucketOnFloor, true)
	default:
		sc.Say("Limp")
	}
}

type key struct{}

// OnGrab only narrates. The key is takeable, so it lands in the pocket
// even before the bucket has been raised.
func (key) OnGrab(sc *Scene) {
	if !sc.Flags.IsSet(FlagBucketRaised) {
		sc.Say("Unseen")
		return
	}
	sc.Say("Grab")
	sc.Flags.Set(FlagPickedUpKey, true)
}

func (key) OnUse(sc *Scene, object string) bool {
	if sc.Room != RoomShackOutside || object != "door" {
		sc.Say("Unsure", object)
		return false
	}
	sc.Say("Insert")
	sc.Say("Unlocked")
	sc.Flags.Set(FlagShackDoorUnlocked, true)
	return true
}

type shackDoor struct{ fixture }

func (shackDoor) OnGrab(sc *Scene) {
	switch {
	case !sc.Flags.IsSet(FlagShackDoorUnlocked):
		sc.Say("Locked")
	case !sc.Flags.IsSet(FlagShackDoorOpen):
		sc.Say("Opens")
		sc.Flags.Set(FlagShackDoorOpen, true)
	default:
		sc.Say("Talks")
	}
}

type head struct{}

// OnGrab ends the story.
func (head) OnGrab(sc *Scene) {
	sc.Say("PopOff")
	sc.Say("Reveal")
	sc.Say("Aftermath")
	sc.Say("End")
	sc.Pause()
	sc.Flags.Set(FlagGameRunning, false)
}

func (head) OnUse(sc *Scene, object string) bool {
	sc.Say("Quip", object)
	return false
}
