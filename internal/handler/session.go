package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ugaemi/mazechase-server/internal/game"
	"github.com/ugaemi/mazechase-server/internal/room"
	"github.com/ugaemi/mazechase-server/internal/score"
	"github.com/ugaemi/mazechase-server/internal/store"
	"github.com/ugaemi/mazechase-server/internal/ws"
)

const (
	maxNicknameLength = 16
	saveTimeout       = 5 * time.Second
)

// SessionHandler creates and tears down per-client game sessions.
type SessionHandler struct {
	rm     *room.Manager
	levels []game.LevelData
	seed   int64
	scores store.ScoreStore
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(rm *room.Manager, levels []game.LevelData, seed int64, scores store.ScoreStore) *SessionHandler {
	return &SessionHandler{
		rm:     rm,
		levels: levels,
		seed:   seed,
		scores: scores,
	}
}

type startSessionRequest struct {
	Nickname string `json:"nickname"`
}

// HandleStartSession starts a new session in the menu for client, replacing
// any session the client already had.
func (h *SessionHandler) HandleStartSession(client *ws.Client, msg ws.Message) {
	var req startSessionRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid start_session data"))
		return
	}

	nickname := strings.TrimSpace(req.Nickname)
	switch {
	case nickname == "":
		client.SendMessage(ws.NewErrorMessage("nickname is required"))
		return
	case utf8.RuneCountInString(nickname) > maxNicknameLength:
		client.SendMessage(ws.NewErrorMessage("nickname is too long"))
		return
	}
	session := game.NewSession(h.levels, game.NewMazeGenerator(h.seed))
	r := h.rm.CreateRoom(client, session)
	r.OnResult = func(r *room.Room, res game.RunResult) {
		h.saveResult(nickname, r, res)
	}

	resp, _ := ws.NewMessage(ws.TypeSessionInfo, r.Info())
	client.SendMessage(resp)
	r.Start()

	slog.Info("session started", "player", nickname, "room", r.Code)
}

// HandleDisconnect stops the client's session.
func (h *SessionHandler) HandleDisconnect(client *ws.Client) {
	h.rm.RemoveRoom(client.ID)
}

// saveResult records victories on the score board.
func (h *SessionHandler) saveResult(nickname string, r *room.Room, res game.RunResult) {
	if res.Outcome != game.OutcomeVictory || h.scores == nil {
		return
	}

	rec := score.NewRecord(nickname, res)
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := h.scores.Save(ctx, rec); err != nil {
		slog.Error("failed to save score", "room", r.Code, "run", res.RunID, "error", err)
		return
	}
	slog.Info("score saved", "player", rec.Nickname, "level", rec.Level, "score", rec.Score)
}
