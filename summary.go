package main

type GameSummary struct {
	SessionID string          `json:"session_id" jsonschema:"Session identifier"`
	RoomID    int             `json:"room_id" jsonschema:"Current room ID"`
	RoomName  string          `json:"room_name" jsonschema:"Current room name"`
	IsPlaying bool            `json:"is_playing" jsonschema:"Whether the game is still active"`
	Inventory []string        `json:"inventory" jsonschema:"Names of the items the player carries"`
	Flags     map[string]bool `json:"flags" jsonschema:"Story progress flags"`
}

func SummarizeState(s *GameState) GameSummary {
	summary := GameSummary{
		SessionID: s.ID.String(),
		RoomID:    s.CurrentRoom,
		IsPlaying: s.IsPlaying(),
		Inventory: inventoryNames(s),
		Flags:     s.Flags.Snapshot(),
	}
	if s.World != nil && s.World.validRoom(s.CurrentRoom) {
		summary.RoomName = s.World.Rooms[s.CurrentRoom].Name
	}
	return summary
}
