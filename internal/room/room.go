package room

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ugaemi/mazechase-server/internal/game"
	"github.com/ugaemi/mazechase-server/internal/ws"
)

// Room hosts one game session for one connected client and drives it from a
// fixed-rate ticker.
type Room struct {
	Code string

	client   *ws.Client
	session  *game.Session
	input    game.Input
	interval time.Duration

	// OnResult is called outside the room lock for every finished run.
	OnResult func(r *Room, res game.RunResult)

	stopCh   chan struct{}
	stopOnce sync.Once
	running  bool

	mu sync.Mutex
}

// NewRoom creates a room around session. interval is both the ticker period
// and the simulated time each tick advances.
func NewRoom(code string, client *ws.Client, session *game.Session, interval time.Duration) *Room {
	if interval <= 0 {
		interval = game.TickInterval
	}
	return &Room{
		Code:     code,
		client:   client,
		session:  session,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Client returns the connection that owns the room.
func (r *Room) Client() *ws.Client { return r.client }

// SetInput replaces the held movement intent. It stays in effect until the
// next call.
func (r *Room) SetInput(in game.Input) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.input = in.Normalize()
}

// HandleCommand applies a key-press command and pushes the resulting frame
// right away so menu transitions do not wait for the next tick.
func (r *Room) HandleCommand(cmd game.Command) error {
	r.mu.Lock()
	before := r.session.State()
	if err := r.session.Handle(cmd); err != nil {
		r.mu.Unlock()
		return err
	}
	if before != r.session.State() {
		r.input = game.Input{}
	}
	frame := r.session.Frame()
	r.mu.Unlock()

	r.sendFrame(frame)
	return nil
}

// Tick advances the session by one interval and sends the frame plus any run
// results to the client.
func (r *Room) Tick() {
	r.mu.Lock()
	events := r.session.Update(r.interval, r.input)
	frame := r.session.Frame()
	r.mu.Unlock()

	r.sendFrame(frame)
	for _, ev := range events {
		msg, err := ws.NewMessage(ws.TypeRunResult, ev.Result)
		if err != nil {
			slog.Error("failed to encode run result", "room", r.Code, "error", err)
			continue
		}
		r.client.SendMessage(msg)

		if r.OnResult != nil {
			r.OnResult(r, ev.Result)
		}
	}
}

// Frame returns the current frame.
func (r *Room) Frame() game.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Frame()
}

// Info describes the room for session_info.
func (r *Room) Info() SessionInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return SessionInfo{
		Code:       r.Code,
		LevelCount: r.session.LevelCount(),
		TickRate:   int(time.Second / r.interval),
		ArenaW:     game.ArenaWidth,
		ArenaH:     game.ArenaHeight,
		State:      r.session.State(),
	}
}

// SessionInfo is the payload of session_info.
type SessionInfo struct {
	Code       string         `json:"code"`
	LevelCount int            `json:"level_count"`
	TickRate   int            `json:"tick_rate"`
	ArenaW     int            `json:"arena_width"`
	ArenaH     int            `json:"arena_height"`
	State      game.GameState `json:"state"`
}

// Start launches the tick loop. Calling it more than once has no effect.
func (r *Room) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	go r.loop()
}

// Stop ends the tick loop. It is safe to call more than once.
func (r *Room) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
		slog.Info("room stopped", "room", r.Code)
	})
}

func (r *Room) loop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-r.client.Done():
			r.Stop()
			return
		case <-ticker.C:
			r.Tick()
		}
	}
}

func (r *Room) sendFrame(f game.Frame) {
	msg, err := ws.NewMessage(ws.TypeFrame, f)
	if err != nil {
		slog.Error("failed to encode frame", "room", r.Code, "error", err)
		return
	}
	r.client.SendMessage(msg)
}
