package room

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ugaemi/mazechase-server/internal/game"
	"github.com/ugaemi/mazechase-server/internal/ws"
)

// Manager tracks the live rooms, one per connected client.
type Manager struct {
	rooms    map[string]*Room // code -> room
	byClient map[string]*Room // client id -> room
	interval time.Duration
	mu       sync.RWMutex
}

// NewManager creates a manager whose rooms tick every interval.
func NewManager(interval time.Duration) *Manager {
	return &Manager{
		rooms:    make(map[string]*Room),
		byClient: make(map[string]*Room),
		interval: interval,
	}
}

// CreateRoom hosts session for client under a fresh code. A client that
// already owns a room gets that room stopped and replaced.
func (m *Manager) CreateRoom(client *ws.Client, session *game.Session) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.byClient[client.ID]; ok {
		old.Stop()
		delete(m.rooms, old.Code)
	}

	existing := make(map[string]bool, len(m.rooms))
	for code := range m.rooms {
		existing[code] = true
	}

	code := GenerateCode(existing)
	r := NewRoom(code, client, session, m.interval)
	m.rooms[code] = r
	m.byClient[client.ID] = r

	slog.Info("room created", "code", code, "client", client.ID)
	return r
}

// GetRoom returns a room by its code.
func (m *Manager) GetRoom(code string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[code]
}

// FindRoomByClientID returns the room owned by a client, or nil.
func (m *Manager) FindRoomByClientID(clientID string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byClient[clientID]
}

// RemoveRoom stops and forgets the room owned by a client.
func (m *Manager) RemoveRoom(clientID string) {
	m.mu.Lock()
	r, ok := m.byClient[clientID]
	if ok {
		delete(m.byClient, clientID)
		delete(m.rooms, r.Code)
	}
	m.mu.Unlock()

	if ok {
		r.Stop()
		slog.Info("room removed", "code", r.Code, "client", clientID)
	}
}

// RoomCount returns the number of active rooms.
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// StopAll stops every room.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for code, r := range m.rooms {
		r.Stop()
		delete(m.rooms, code)
	}
	clear(m.byClient)
}
