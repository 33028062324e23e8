package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
)

// Message is the envelope for every frame in both directions: an action
// name plus an action-specific payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewGamePayload configures a fresh game. An empty mark lets the server
// pick the human's side at random.
type NewGamePayload struct {
	Difficulty string `json:"difficulty,omitempty"`
	Mark       string `json:"mark,omitempty"`
}

// TurnPayload is the human's move in 0-based grid coordinates.
type TurnPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ResponsePayload is the server's view of the game after handling an
// action. ComputerMove is set when the computer replied within the same
// action.
type ResponsePayload struct {
	Board        *[engine.Size][engine.Size]engine.Mark `json:"board,omitempty"`
	Turn         engine.Mark                            `json:"turn,omitempty"`
	Outcome      *engine.Outcome                        `json:"outcome,omitempty"`
	YourMark     engine.Mark                            `json:"your_mark,omitempty"`
	Difficulty   engine.Tier                            `json:"difficulty,omitempty"`
	ComputerMove *engine.Cell                           `json:"computer_move,omitempty"`
	Error        string                                 `json:"error,omitempty"`
}
