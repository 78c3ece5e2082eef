package server

import (
	"encoding/json"

	"microcity/internal/sims/city"
)

// Envelope wraps every websocket message in both directions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client-to-server action types.
const (
	ActionTool     = "tool"
	ActionSpeed    = "speed"
	ActionTax      = "tax"
	ActionDisaster = "disaster"
	ActionNewGame  = "newGame"
)

// Server-to-client event types.
const (
	EventFullState  = "fullState"
	EventStats      = "stats"
	EventMessage    = "message"
	EventToolResult = "toolResult"
)

type ToolPayload struct {
	Tool city.Tool `json:"tool"`
	X    int       `json:"x"`
	Y    int       `json:"y"`
}

type ToolResultPayload struct {
	Tool   city.Tool       `json:"tool"`
	X      int             `json:"x"`
	Y      int             `json:"y"`
	Result city.ToolResult `json:"result"`
}

type SpeedPayload struct {
	Speed city.Speed `json:"speed"`
}

type TaxPayload struct {
	Rate int `json:"rate"`
}

type DisasterPayload struct {
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type NewGamePayload struct {
	Seed uint64 `json:"seed"`
}

type MessagePayload struct {
	Text      string `json:"text"`
	X         int    `json:"x,omitempty"`
	Y         int    `json:"y,omitempty"`
	HasCoords bool   `json:"hasCoords,omitempty"`
	Important bool   `json:"important,omitempty"`
}

// FullState carries the complete map plus headline stats.
type FullState struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Serial uint64     `json:"serial"`
	Tiles  []uint16   `json:"tiles"`
	Stats  city.Stats `json:"stats"`
}

func encodeEnvelope(eventType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: eventType, Payload: raw})
}
