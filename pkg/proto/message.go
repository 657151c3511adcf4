package proto

import "ctchen222/Solo-Tac-Toe/internal/game"

// MoveRequest asks to place the next mark in a cell. The cell is a
// pointer so that index 0 survives the required check.
type MoveRequest struct {
	Cell *int `json:"cell" validate:"required,gte=0,lte=8"`
}

// ResetRequest restarts the game, optionally switching mode.
type ResetRequest struct {
	Mode game.Mode `json:"mode" validate:"omitempty,oneof=human bot"`
}

// GameStateMessage is the snapshot returned to the client after every
// call. Reason is set when a move was rejected and the state comes back
// unchanged.
type GameStateMessage struct {
	GameID  string             `json:"game_id"`
	Version uint64             `json:"version"`
	Board   [9]game.PlayerMark `json:"board"`
	Next    game.PlayerMark    `json:"next"`
	Status  game.Status        `json:"status"`
	Label   string             `json:"label"`
	Winner  game.PlayerMark    `json:"winner,omitempty"`
	Line    []int              `json:"line,omitempty"`
	Mode    game.Mode          `json:"mode"`
	Theme   string             `json:"theme"`
	Reason  string             `json:"reason,omitempty"`
}

// ThemeMessage reports the theme after a toggle.
type ThemeMessage struct {
	Theme string `json:"theme"`
}
