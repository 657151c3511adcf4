package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ctchen222/Solo-Tac-Toe/internal/bot"
	"ctchen222/Solo-Tac-Toe/internal/game"
)

// Theme values the UI can render with.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Snapshot is a copy of the live session handed to callers. Mutating it
// has no effect on the session.
type Snapshot struct {
	State   game.GameState
	Outcome game.Outcome
	Label   string
	Theme   string
}

// Manager owns the single live game. Every state transition goes
// through it under one lock; the only other actor is the delayed
// computer move it schedules itself.
type Manager struct {
	mu         sync.Mutex
	state      game.GameState
	outcome    game.Outcome
	theme      string
	botDelay   time.Duration
	pending    *time.Timer
	selectMove func(board [9]game.PlayerMark) (int, bool)
}

// NewManager creates a session with a fresh game in the given mode.
func NewManager(mode game.Mode, theme string, botDelay time.Duration) *Manager {
	state := game.NewGame(mode)
	return &Manager{
		state:      state,
		outcome:    game.Evaluate(state.Board),
		theme:      theme,
		botDelay:   botDelay,
		selectMove: bot.SelectMove,
	}
}

// Snapshot returns a copy of the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Move applies a human-originated move. Invalid input (occupied cell,
// finished game, the computer's turn) leaves the state untouched and
// reports the rejection as a typed error; the UI treats it as a no-op.
func (m *Manager) Move(ctx context.Context, cell int) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := game.ApplyMove(m.state, cell, game.None)
	if err != nil {
		slog.DebugContext(ctx, "move rejected", "cell", cell, "reason", err)
		return m.snapshotLocked(), err
	}

	m.state = res.State
	m.outcome = res.Outcome
	slog.InfoContext(ctx, "move applied", "cell", cell, "next", m.state.NextMark, "status", m.outcome.Status)

	if res.ScheduleBot {
		m.scheduleBotLocked()
	}

	return m.snapshotLocked(), nil
}

// Reset cancels any pending computer move and replaces the game with a
// fresh board in the given mode. Mode changes go through here too.
func (m *Manager) Reset(ctx context.Context, mode game.Mode) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancelPendingLocked()
	m.state = game.Reset(m.state, mode)
	m.outcome = game.Evaluate(m.state.Board)
	slog.InfoContext(ctx, "game reset", "mode", mode, "game_id", m.state.ID)

	return m.snapshotLocked()
}

// ToggleTheme flips between light and dark and returns the new theme.
func (m *Manager) ToggleTheme() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.theme == ThemeDark {
		m.theme = ThemeLight
	} else {
		m.theme = ThemeDark
	}
	return m.theme
}

// scheduleBotLocked arms the delayed computer reply, tagged with the
// identity of the state it was computed against. At most one timer is
// pending at a time.
func (m *Manager) scheduleBotLocked() {
	m.cancelPendingLocked()

	gameID, version := m.state.ID, m.state.Version
	m.pending = time.AfterFunc(m.botDelay, func() {
		m.playBotMove(gameID, version)
	})
}

// playBotMove runs when the bot timer fires. If the state the timer was
// scheduled against is gone (reset, mode change), the move is discarded.
func (m *Manager) playBotMove(gameID string, version uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.ID != gameID || m.state.Version != version {
		slog.Debug("stale computer move discarded", "game_id", gameID, "version", version)
		return
	}

	cell, ok := m.selectMove(m.state.Board)
	if !ok {
		return
	}

	res, err := game.ApplyMove(m.state, cell, game.PlayerO)
	if err != nil {
		slog.Warn("computer move rejected", "cell", cell, "reason", err)
		return
	}

	m.state = res.State
	m.outcome = res.Outcome
	slog.Info("computer move applied", "cell", cell, "status", m.outcome.Status)
}

func (m *Manager) cancelPendingLocked() {
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
}

func (m *Manager) snapshotLocked() Snapshot {
	return Snapshot{
		State:   m.state,
		Outcome: m.outcome,
		Label:   game.StatusLabel(m.outcome, m.state.NextMark),
		Theme:   m.theme,
	}
}
