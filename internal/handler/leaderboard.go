package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ugaemi/mazechase-server/internal/score"
	"github.com/ugaemi/mazechase-server/internal/store"
	"github.com/ugaemi/mazechase-server/internal/ws"
)

const queryTimeout = 3 * time.Second

// LeaderboardHandler serves score board queries.
type LeaderboardHandler struct {
	scores store.ScoreStore
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(scores store.ScoreStore) *LeaderboardHandler {
	return &LeaderboardHandler{scores: scores}
}

type leaderboardRequest struct {
	Level int `json:"level"`
	Limit int `json:"limit"`
}

type leaderboardResponse struct {
	Level   int             `json:"level"`
	Entries []*score.Record `json:"entries"`
}

// HandleLeaderboard replies with the best runs for a level.
func (h *LeaderboardHandler) HandleLeaderboard(client *ws.Client, msg ws.Message) {
	var req leaderboardRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Level < 1 {
		client.SendMessage(ws.NewErrorMessage("level is required"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	entries, err := h.scores.Top(ctx, req.Level, req.Limit)
	if err != nil {
		slog.Error("leaderboard query failed", "level", req.Level, "error", err)
		client.SendMessage(ws.NewErrorMessage("leaderboard unavailable"))
		return
	}
	if entries == nil {
		entries = []*score.Record{}
	}

	resp, _ := ws.NewMessage(ws.TypeLeaderboard, leaderboardResponse{
		Level:   req.Level,
		Entries: entries,
	})
	client.SendMessage(resp)
}
