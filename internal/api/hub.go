package api

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"safequeue-viz/internal/logger"
	"safequeue-viz/internal/queue"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS policy is enforced at the router layer
	},
}

// Hub fans freshly grouped queue views out to connected WebSocket
// clients on every poll tick.
type Hub struct {
	logger  logger.Logger
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

func NewHub(l logger.Logger) *Hub {
	return &Hub{
		logger:  l,
		clients: make(map[*websocket.Conn]bool),
	}
}

// HandleWebSocket upgrades the request and keeps the connection
// registered until the peer goes away.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", logger.Fields{"error": err.Error()})
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	// Drain the connection; clients only listen.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast pushes a queue view to every connected client, dropping
// clients whose write fails.
func (h *Hub) Broadcast(view *queue.QueueView) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if err := client.WriteJSON(view); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

// ClientCount returns how many WebSocket clients are connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
