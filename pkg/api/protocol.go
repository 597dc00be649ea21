package api

import (
	"encoding/json"
)

// Message types sent to spectators.
const (
	TypeTick     = "TICK"
	TypeGameOver = "GAME_OVER"
	TypeError    = "ERROR"
)

// Commands accepted from spectators.
const (
	ActionStart = "START"
	ActionStop  = "STOP"
)

// --- SERVER -> CLIENT ---

// TickFrame is the full battlefield snapshot sent after every tick.
// Spectators render it as is, nothing is diffed.
type TickFrame struct {
	// Type is TICK while the game runs and GAME_OVER for the final frame.
	Type string `json:"type"`

	Tick int   `json:"tick"`
	Seed int64 `json:"seed"`

	Grid *GridMeta `json:"grid,omitempty"`

	// Map carries every tile; the grid is small and changes never.
	Map []TileView `json:"map,omitempty"`

	Actors []ActorView `json:"actors"`

	// Outcome is set on the GAME_OVER frame only.
	Outcome string `json:"outcome,omitempty"`
}

// GridMeta tells the client which grid to prepare.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

type TileView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

// ActorView is one unit as the client sees it.
type ActorView struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	// Life is omitted for actors that cannot die.
	Life *int `json:"life,omitempty"`
}

// ErrorFrame reports a rejected command back to the sender.
type ErrorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// --- CLIENT -> SERVER ---

// ClientCommand is the root of every message a spectator sends.
type ClientCommand struct {
	// Action is START or STOP.
	Action string `json:"action"`

	// Payload depends on Action; STOP takes none.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// StartPayload asks for a new game on a fresh world.
type StartPayload struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	Starts   int `json:"starts"`
	Finishes int `json:"finishes"`
}
