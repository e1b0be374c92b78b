package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/freelinkd/kuesioner-api/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgSubmissionReceived MessageType = "submission_received"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SubmissionEvent is broadcast to connected admin dashboards after each
// successful insert, so the table refreshes without polling.
type SubmissionEvent struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	UserRole    string    `json:"userRole"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Hub manages the admin feed connections.
type Hub struct {
	conns map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one connected dashboard.
type Connection struct {
	Send chan []byte
	Hub  *Hub
}

// NewHub creates the hub and starts its dispatch loop.
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = true
			h.mu.Unlock()
			log.Printf("ws: admin dashboard connected (%d active)", h.count())

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.conns[conn] {
				delete(h.conns, conn)
				close(conn.Send)
			}
			h.mu.Unlock()
			log.Printf("ws: admin dashboard disconnected (%d active)", h.count())

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg)
			if err != nil {
				log.Printf("ws: marshaling broadcast: %v", err)
				continue
			}
			h.mu.RLock()
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Slow consumer, skip this message for it
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Register adds a dashboard connection to the hub.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a dashboard connection from the hub.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// SubmissionReceived implements service.Notifier: it fans the new
// submission out to every connected dashboard.
func (h *Hub) SubmissionReceived(k *model.Kuesioner) {
	payload, err := json.Marshal(SubmissionEvent{
		ID:          k.ID,
		FullName:    k.Intro.FullName,
		UserRole:    k.UserRole,
		SubmittedAt: k.SubmittedAt,
	})
	if err != nil {
		log.Printf("ws: marshaling submission event: %v", err)
		return
	}
	h.broadcast <- &Message{Type: MsgSubmissionReceived, Payload: payload}
}
