package handler

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ugaemi/mazechase-server/internal/game"
	"github.com/ugaemi/mazechase-server/internal/room"
	"github.com/ugaemi/mazechase-server/internal/ws"
)

// GameplayHandler handles in-game messages.
type GameplayHandler struct {
	rm *room.Manager
}

// NewGameplayHandler creates a new gameplay handler.
func NewGameplayHandler(rm *room.Manager) *GameplayHandler {
	return &GameplayHandler{rm: rm}
}

// HandleInput replaces the client's held movement keys.
func (h *GameplayHandler) HandleInput(client *ws.Client, msg ws.Message) {
	var in game.Input
	if err := json.Unmarshal(msg.Data, &in); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid input data"))
		return
	}

	r := h.rm.FindRoomByClientID(client.ID)
	if r == nil {
		client.SendMessage(ws.NewErrorMessage("no active session"))
		return
	}
	r.SetInput(in)
}

type commandRequest struct {
	Name  string `json:"name"`
	Level int    `json:"level,omitempty"`
}

// HandleCommand applies a menu or run command to the client's session.
func (h *GameplayHandler) HandleCommand(client *ws.Client, msg ws.Message) {
	var req commandRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid command data"))
		return
	}

	kind, err := game.ParseCommandKind(req.Name)
	if err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	r := h.rm.FindRoomByClientID(client.ID)
	if r == nil {
		client.SendMessage(ws.NewErrorMessage("no active session"))
		return
	}

	if err := r.HandleCommand(game.Command{Kind: kind, Level: req.Level}); err != nil {
		if !errors.Is(err, game.ErrInvalidCommand) {
			slog.Warn("command failed", "room", r.Code, "command", kind.String(), "error", err)
		}
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	slog.Debug("command applied", "room", r.Code, "command", kind.String(), "level", req.Level)
}
