package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/ugaemi/mazechase-server/internal/game"
	"github.com/ugaemi/mazechase-server/internal/room"
	"github.com/ugaemi/mazechase-server/internal/store"
	"github.com/ugaemi/mazechase-server/internal/ws"
)

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	session     *SessionHandler
	gameplay    *GameplayHandler
	leaderboard *LeaderboardHandler
}

// NewRouter creates a new message router. Sessions play levels in order and
// draw generated levels from a generator seeded with seed.
func NewRouter(rm *room.Manager, levels []game.LevelData, seed int64, scores store.ScoreStore) *Router {
	return &Router{
		session:     NewSessionHandler(rm, levels, seed, scores),
		gameplay:    NewGameplayHandler(rm),
		leaderboard: NewLeaderboardHandler(scores),
	}
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	case ws.TypeStartSession:
		r.session.HandleStartSession(cm.Client, msg)

	case ws.TypeInput:
		r.gameplay.HandleInput(cm.Client, msg)
	case ws.TypeCommand:
		r.gameplay.HandleCommand(cm.Client, msg)

	case ws.TypeLeaderboard:
		r.leaderboard.HandleLeaderboard(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.session.HandleDisconnect(client)
}
