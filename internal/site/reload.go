package site

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ReloadMessage is sent to every live-reload client. A client receives the
// current build id when it connects and a new one after every rebuild.
type ReloadMessage struct {
	Type    string `json:"type"`
	BuildID string `json:"build_id"`
}

// Hub tracks connected live-reload clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	buildID string
	logger  *zap.Logger
}

// NewHub returns a hub with no clients.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		logger:  logger.Named("reload"),
	}
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	if err := h.register(conn); err != nil {
		h.logger.Debug("websocket write", zap.Error(err))
		return
	}
	defer h.unregister(conn)

	// Clients never send anything meaningful; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read", zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) register(conn *websocket.Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := send(conn, h.buildID); err != nil {
		return err
	}
	h.clients[conn] = struct{}{}
	return nil
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Broadcast records buildID as current and tells every client about it.
// Clients that cannot be written to are dropped.
func (h *Hub) Broadcast(buildID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buildID = buildID
	for conn := range h.clients {
		if err := send(conn, buildID); err != nil {
			h.logger.Debug("dropping client", zap.Error(err))
			conn.Close()
			delete(h.clients, conn)
		}
	}
	h.logger.Debug("reload broadcast", zap.String("build_id", buildID), zap.Int("clients", len(h.clients)))
}

// SetBuildID records the current build without notifying anyone.
func (h *Hub) SetBuildID(id string) {
	h.mu.Lock()
	h.buildID = id
	h.mu.Unlock()
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func send(conn *websocket.Conn, buildID string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(ReloadMessage{Type: "reload", BuildID: buildID})
}
