// Package stream pushes rendered planet frames and tick statistics to
// browsers over WebSocket and collects their control commands.
package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"cube-planet/internal/logger"
)

type message struct {
	kind int
	data []byte
}

// Command is a control request sent by a viewer.
type Command struct {
	Type  string `json:"type"` // "pause", "resume", "step", "reset", "layer"
	Seed  int64  `json:"seed,omitempty"`
	Layer string `json:"layer,omitempty"`
}

// Hub maintains the set of active viewers and broadcasts frames to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan message
	register   chan *Client
	unregister chan *Client
	commands   chan Command
	done       chan struct{}

	mu        sync.Mutex
	lastFrame []byte
	lastStats []byte

	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewHub initializes a hub. Run must be started before clients connect.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan message, 4),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan Command, 16),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: log,
	}
}

// Run handles registration and fan-out until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("stream hub shutting down")
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.greet(client)
			h.mu.Unlock()
			h.logger.Info("viewer connected (%d active)", count)
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("viewer disconnected (%d active)", len(h.clients))
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					close(client.send)
					delete(h.clients, client)
					h.logger.Warn("dropping slow viewer")
				}
			}
			h.mu.Unlock()
		}
	}
}

// greet sends the most recent frame and stats so a new viewer does not wait
// for the next tick. Callers hold h.mu.
func (h *Hub) greet(c *Client) {
	if h.lastFrame != nil {
		c.send <- message{kind: websocket.BinaryMessage, data: h.lastFrame}
	}
	if h.lastStats != nil {
		c.send <- message{kind: websocket.TextMessage, data: h.lastStats}
	}
}

// ClientCount reports the number of connected viewers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastFrame sends a PNG-encoded frame as a binary message. The bytes
// are copied, so the caller may reuse its buffer.
func (h *Hub) BroadcastFrame(png []byte) {
	frame := append([]byte(nil), png...)
	h.mu.Lock()
	h.lastFrame = frame
	h.mu.Unlock()
	h.send(message{kind: websocket.BinaryMessage, data: frame})
}

// BroadcastStats serializes v to JSON and sends it as a text message.
func (h *Hub) BroadcastStats(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("failed to serialize stats: %v", err)
		return
	}
	h.mu.Lock()
	h.lastStats = payload
	h.mu.Unlock()
	h.send(message{kind: websocket.TextMessage, data: payload})
}

func (h *Hub) send(msg message) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// Commands delivers control requests from viewers.
func (h *Hub) Commands() <-chan Command { return h.commands }

// ServeWS upgrades the request and starts the client pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed: %v", err)
		return
	}
	client := NewClient(h, conn)
	if !client.Register() {
		return
	}
	go client.WritePump()
	go client.ReadPump()
}

func (h *Hub) submit(cmd Command) {
	select {
	case h.commands <- cmd:
	default:
		h.logger.Warn("command queue full, dropping %q", cmd.Type)
	}
}
