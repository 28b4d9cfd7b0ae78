package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"dinger/projection"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// Hub pushes state snapshots to websocket clients. A new client receives
// the latest snapshot right away; later ones only when the view changes.
// A poll that only moves FetchedAt is not broadcast.
type Hub struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	last     []byte
	lastView []byte
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Consume(_ context.Context, state projection.State) error {
	snapshot := NewSnapshot(state)
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	snapshot.FetchedAt = time.Time{}
	view, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = payload
	if bytes.Equal(view, h.lastView) {
		return nil
	}
	h.lastView = view
	for conn := range h.clients {
		if err = write(conn, payload); err != nil {
			h.log.Debug("Dropping websocket client", "remote", conn.RemoteAddr(), "error", err)
			h.dropLocked(conn)
		}
	}
	return nil
}

// ServeHTTP upgrades the request and keeps the client registered until it
// disconnects. Incoming frames are ignored.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	if h.last != nil {
		if err = write(conn, h.last); err != nil {
			h.dropLocked(conn)
			h.mu.Unlock()
			return
		}
	}
	h.mu.Unlock()

	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			break
		}
	}
	h.mu.Lock()
	h.dropLocked(conn)
	h.mu.Unlock()
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "node stopping"),
			time.Now().Add(time.Second))
		h.dropLocked(conn)
	}
}

func (h *Hub) dropLocked(conn *websocket.Conn) {
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		_ = conn.Close()
	}
}

func write(conn *websocket.Conn, payload []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
