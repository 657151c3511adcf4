package controller

import (
	"ctchen222/Solo-Tac-Toe/internal/api/response"
	"ctchen222/Solo-Tac-Toe/internal/game"
	"ctchen222/Solo-Tac-Toe/internal/session"
	"ctchen222/Solo-Tac-Toe/internal/validator"
	"ctchen222/Solo-Tac-Toe/pkg/proto"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("controller")

// GameController exposes the session over JSON for the browser UI.
type GameController struct {
	sessions *session.Manager
}

// NewGameController creates a new GameController.
func NewGameController(sessions *session.Manager) *GameController {
	return &GameController{
		sessions: sessions,
	}
}

// State returns the current board snapshot.
func (gc *GameController) State(c *gin.Context) {
	response.SuccessResponse(c, stateMessage(gc.sessions.Snapshot(), ""))
}

// Move handles a cell selection. A rejected move (occupied cell,
// finished game, the computer's slot) is not an error: the unchanged
// snapshot comes back with a reason attached.
func (gc *GameController) Move(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "controller.Move", trace.WithAttributes(
		attribute.String("http.method", c.Request.Method),
	))
	defer span.End()

	var req proto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.Struct(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	span.SetAttributes(attribute.Int("move.cell", *req.Cell))

	snap, err := gc.sessions.Move(ctx, *req.Cell)
	reason := ""
	if err != nil {
		reason = err.Error()
		span.SetAttributes(attribute.String("move.rejected", reason))
	}

	response.SuccessResponse(c, stateMessage(snap, reason))
}

// Reset restarts the game, switching mode if one was supplied.
func (gc *GameController) Reset(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "controller.Reset")
	defer span.End()

	var req proto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.Struct(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = gc.sessions.Snapshot().State.Mode
	}
	span.SetAttributes(attribute.String("game.mode", string(mode)))

	response.SuccessResponse(c, stateMessage(gc.sessions.Reset(ctx, mode), ""))
}

// ToggleTheme flips the light/dark theme.
func (gc *GameController) ToggleTheme(c *gin.Context) {
	response.SuccessResponse(c, proto.ThemeMessage{Theme: gc.sessions.ToggleTheme()})
}

func stateMessage(snap session.Snapshot, reason string) proto.GameStateMessage {
	msg := proto.GameStateMessage{
		GameID:  snap.State.ID,
		Version: snap.State.Version,
		Board:   snap.State.Board,
		Next:    snap.State.NextMark,
		Status:  snap.Outcome.Status,
		Label:   snap.Label,
		Winner:  snap.Outcome.Winner,
		Mode:    snap.State.Mode,
		Theme:   snap.Theme,
		Reason:  reason,
	}
	if snap.Outcome.Status == game.StatusWon {
		msg.Line = snap.Outcome.Line[:]
	}
	return msg
}
