package game

import (
	"errors"

	"github.com/google/uuid"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// Mode selects who plays O: a second human or the computer.
type Mode string

// Status is the evaluated state of a board.
type Status string

const (
	// Player marks. X always opens.
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Game modes
	ModeHuman Mode = "human"
	ModeBot   Mode = "bot"

	// Outcome statuses
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

var (
	ErrGameFinished = errors.New("game already finished")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrNotYourTurn  = errors.New("it's not your turn")
)

// WinningTriples lists the 8 winning lines in check order:
// rows, columns, then diagonals. The first matching triple wins.
var WinningTriples = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome is the result of evaluating a board.
type Outcome struct {
	Status Status
	Winner PlayerMark
	Line   [3]int
}

// GameState holds one game: the 9-cell row-major board, whose turn it
// is, and the mode. ID and Version identify the state a scheduled
// computer move was computed against; Version grows monotonically
// across moves and resets.
type GameState struct {
	ID       string
	Version  uint64
	Board    [9]PlayerMark
	NextMark PlayerMark
	Mode     Mode
}

// MoveResult carries the state after an accepted move, its re-evaluated
// outcome, and whether the caller should schedule a computer reply.
type MoveResult struct {
	State       GameState
	Outcome     Outcome
	ScheduleBot bool
}

// NewGame returns a fresh game with X to move.
func NewGame(mode Mode) GameState {
	return GameState{
		ID:       uuid.NewString(),
		Version:  1,
		NextMark: PlayerX,
		Mode:     mode,
	}
}

// Reset replaces a game with a fresh board in the given mode. The new
// state gets a new ID and a version past the old one, so any move
// still pending against the old state can never match.
func Reset(prev GameState, mode Mode) GameState {
	next := NewGame(mode)
	next.Version = prev.Version + 1
	return next
}

// Evaluate computes the outcome of a board snapshot. The win check runs
// before the draw check, so a full board with a winning triple is a win.
func Evaluate(board [9]PlayerMark) Outcome {
	for _, triple := range WinningTriples {
		a, b, c := board[triple[0]], board[triple[1]], board[triple[2]]
		if a != None && a == b && b == c {
			return Outcome{Status: StatusWon, Winner: a, Line: triple}
		}
	}

	for _, cell := range board {
		if cell == None {
			return Outcome{Status: StatusInProgress}
		}
	}

	return Outcome{Status: StatusDraw}
}

// ApplyMove validates and applies a move to the given state, returning
// the new state and outcome. A None mark means the move is
// human-originated and plays whatever mark is next; an explicit mark is
// the computer path and bypasses the turn guard. On rejection the
// returned result carries the input state unchanged.
func ApplyMove(state GameState, cell int, mark PlayerMark) (MoveResult, error) {
	res := MoveResult{State: state, Outcome: Evaluate(state.Board)}

	if cell < 0 || cell >= len(state.Board) {
		return res, ErrInvalidCell
	}
	if res.Outcome.Status != StatusInProgress {
		return res, ErrGameFinished
	}
	if state.Board[cell] != None {
		return res, ErrCellOccupied
	}
	if mark == None {
		// Human input must not preempt the computer's slot.
		if state.Mode == ModeBot && state.NextMark == PlayerO {
			return res, ErrNotYourTurn
		}
		mark = state.NextMark
	}

	state.Board[cell] = mark
	state.NextMark = toggleMark(mark)
	state.Version++

	outcome := Evaluate(state.Board)

	return MoveResult{
		State:       state,
		Outcome:     outcome,
		ScheduleBot: state.Mode == ModeBot && outcome.Status == StatusInProgress && state.NextMark == PlayerO,
	}, nil
}

// StatusLabel projects an outcome and the next mark onto the label the
// UI shows above the board.
func StatusLabel(outcome Outcome, next PlayerMark) string {
	switch outcome.Status {
	case StatusWon:
		return "Winner: " + string(outcome.Winner)
	case StatusDraw:
		return "It's a Draw!"
	default:
		return "Current: " + string(next)
	}
}

func toggleMark(mark PlayerMark) PlayerMark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
