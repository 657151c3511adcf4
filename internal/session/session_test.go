package session

import (
	"context"
	"testing"
	"time"

	"ctchen222/Solo-Tac-Toe/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMarks(board [9]game.PlayerMark, mark game.PlayerMark) int {
	n := 0
	for _, cell := range board {
		if cell == mark {
			n++
		}
	}
	return n
}

func TestMoveSchedulesComputerReply(t *testing.T) {
	m := NewManager(game.ModeBot, ThemeLight, 10*time.Millisecond)

	snap, err := m.Move(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, game.PlayerX, snap.State.Board[4])
	require.Equal(t, game.PlayerO, snap.State.NextMark)

	assert.Eventually(t, func() bool {
		s := m.Snapshot()
		return countMarks(s.State.Board, game.PlayerO) == 1 && s.State.NextMark == game.PlayerX
	}, time.Second, 10*time.Millisecond, "the computer should reply after the delay")
}

func TestResetCancelsPendingComputerMove(t *testing.T) {
	m := NewManager(game.ModeBot, ThemeLight, 50*time.Millisecond)

	_, err := m.Move(context.Background(), 4)
	require.NoError(t, err)

	snap := m.Reset(context.Background(), game.ModeBot)
	require.Equal(t, [9]game.PlayerMark{}, snap.State.Board)

	// Give the cancelled timer time to have fired.
	time.Sleep(200 * time.Millisecond)

	after := m.Snapshot()
	assert.Equal(t, [9]game.PlayerMark{}, after.State.Board, "a stale computer move must not land on the reset board")
	assert.Equal(t, game.StatusInProgress, after.Outcome.Status)
}

func TestHumanCannotPreemptComputerTurn(t *testing.T) {
	m := NewManager(game.ModeBot, ThemeLight, time.Hour)

	first, err := m.Move(context.Background(), 4)
	require.NoError(t, err)

	snap, err := m.Move(context.Background(), 0)
	require.ErrorIs(t, err, game.ErrNotYourTurn)
	assert.Equal(t, first.State, snap.State, "a rejected move must not change state")
}

func TestStaleComputerMoveDiscarded(t *testing.T) {
	m := NewManager(game.ModeBot, ThemeLight, time.Hour)

	snap, err := m.Move(context.Background(), 4)
	require.NoError(t, err)

	// Fire the callback with a tag that no longer matches the live state.
	m.playBotMove("some-old-game", snap.State.Version-1)

	after := m.Snapshot()
	assert.Equal(t, snap.State, after.State, "a mismatched tag must leave the state alone")

	// The matching tag goes through.
	m.playBotMove(snap.State.ID, snap.State.Version)
	assert.Equal(t, 1, countMarks(m.Snapshot().State.Board, game.PlayerO))
}

func TestModeChangeRestartsGame(t *testing.T) {
	m := NewManager(game.ModeHuman, ThemeLight, time.Hour)

	_, err := m.Move(context.Background(), 0)
	require.NoError(t, err)

	snap := m.Reset(context.Background(), game.ModeBot)
	assert.Equal(t, game.ModeBot, snap.State.Mode)
	assert.Equal(t, [9]game.PlayerMark{}, snap.State.Board)
	assert.Equal(t, game.PlayerX, snap.State.NextMark)
}

func TestHumanModeNeverSchedulesComputer(t *testing.T) {
	m := NewManager(game.ModeHuman, ThemeLight, 10*time.Millisecond)

	_, err := m.Move(context.Background(), 0)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	board := m.Snapshot().State.Board
	assert.Equal(t, 0, countMarks(board, game.PlayerO), "no computer move in human mode")
}

func TestSnapshotLabel(t *testing.T) {
	m := NewManager(game.ModeHuman, ThemeLight, time.Hour)
	assert.Equal(t, "Current: X", m.Snapshot().Label)

	_, err := m.Move(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "Current: O", m.Snapshot().Label)
}

func TestToggleTheme(t *testing.T) {
	m := NewManager(game.ModeHuman, ThemeLight, time.Hour)

	assert.Equal(t, ThemeDark, m.ToggleTheme())
	assert.Equal(t, ThemeLight, m.ToggleTheme())
}
