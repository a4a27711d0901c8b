package services

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

// WebSocket errors
var (
	ErrConnectionNotFound   = errors.New("connection not found")
	ErrConnectionBufferFull = errors.New("connection buffer full")
)

// WebSocketManager fans chat activity out to connected dashboard clients
type WebSocketManager struct {
	connections map[string]*WebSocketConnection
	mu          sync.RWMutex
	broadcast   chan BroadcastMessage
}

// WebSocketConnection represents a single dashboard WebSocket connection
type WebSocketConnection struct {
	Conn      *websocket.Conn
	UserID    string
	UserEmail string
	Send      chan []byte
}

// BroadcastMessage represents a message to broadcast
type BroadcastMessage struct {
	Type string
	Data interface{}
}

// MessagePayload is the wire format of broadcast frames
type MessagePayload struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

var wsManager *WebSocketManager
var wsOnce sync.Once

// GetWebSocketManager returns the singleton WebSocket manager
func GetWebSocketManager() *WebSocketManager {
	wsOnce.Do(func() {
		wsManager = &WebSocketManager{
			connections: make(map[string]*WebSocketConnection),
			broadcast:   make(chan BroadcastMessage, 100),
		}
		go wsManager.handleBroadcast()
	})
	return wsManager
}

// RegisterConnection registers a new WebSocket connection
func (m *WebSocketManager) RegisterConnection(conn *WebSocketConnection) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connections[conn.UserID] = conn

	slog.Info("WebSocket connection registered", "userID", conn.UserID)
}

// UnregisterConnection removes a WebSocket connection
func (m *WebSocketManager) UnregisterConnection(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if conn, ok := m.connections[userID]; ok {
		close(conn.Send)
		delete(m.connections, userID)
		slog.Info("WebSocket connection unregistered", "userID", userID)
	}
}

// Broadcast queues a message for all connected dashboard clients. Drops the
// message when the broadcast buffer is full rather than blocking a chat turn.
func (m *WebSocketManager) Broadcast(msg BroadcastMessage) {
	select {
	case m.broadcast <- msg:
	default:
		slog.Warn("Broadcast buffer full, dropping message", "type", msg.Type)
	}
}

func (m *WebSocketManager) handleBroadcast() {
	for msg := range m.broadcast {
		payload := MessagePayload{
			Type:      msg.Type,
			Data:      msg.Data,
			Timestamp: time.Now().Unix(),
		}

		data, err := json.Marshal(payload)
		if err != nil {
			slog.Error("Failed to marshal broadcast payload", "error", err)
			continue
		}

		m.mu.RLock()
		for userID, conn := range m.connections {
			select {
			case conn.Send <- data:
			default:
				slog.Warn("Connection buffer full, skipping", "userID", userID)
			}
		}
		m.mu.RUnlock()
	}
}

// ConnectionCount returns the number of connected dashboard clients
func (m *WebSocketManager) ConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}
