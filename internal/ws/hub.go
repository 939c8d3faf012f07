package ws

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Hub tracks connected clients and serializes their messages onto a single
// goroutine.
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Incoming   chan *ClientMessage
	mu         sync.RWMutex
	seq        atomic.Uint64
	stopped    chan struct{}

	// OnMessage is called for each incoming client message.
	OnMessage func(cm *ClientMessage)
	// OnDisconnect is called after a client has been closed.
	OnDisconnect func(client *Client)
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Incoming:   make(chan *ClientMessage, 256),
		stopped:    make(chan struct{}),
	}
}

// NextClientID returns a process-unique client id.
func (h *Hub) NextClientID() string {
	return fmt.Sprintf("client-%d", h.seq.Add(1))
}

// Run dispatches registrations and messages until ctx is cancelled, then
// closes every remaining client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.Clients {
				client.Close()
				delete(h.Clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			h.mu.Unlock()
			slog.Info("client connected", "client", client.ID)

		case client := <-h.Unregister:
			h.mu.Lock()
			_, ok := h.Clients[client]
			delete(h.Clients, client)
			h.mu.Unlock()
			if !ok {
				continue
			}
			client.Close()
			slog.Info("client disconnected", "client", client.ID)
			if h.OnDisconnect != nil {
				h.OnDisconnect(client)
			}

		case cm := <-h.Incoming:
			if h.OnMessage != nil {
				h.OnMessage(cm)
			}
		}
	}
}

// Join registers c with the running hub. It returns false, and closes c,
// once the hub has stopped.
func (h *Hub) Join(c *Client) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.stopped:
		c.Close()
		return false
	}
}

// Leave unregisters c. It does not block after the hub has stopped.
func (h *Hub) Leave(c *Client) {
	select {
	case h.Unregister <- c:
	case <-h.stopped:
	}
}

func (h *Hub) deliver(cm *ClientMessage) {
	select {
	case h.Incoming <- cm:
	case <-h.stopped:
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Clients)
}
