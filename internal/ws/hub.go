package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans game snapshots out to admin dashboard clients watching a
// chat. Connections are grouped by chat id.
type Hub struct {
	mu    sync.RWMutex
	chats map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		chats: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(chatID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.chats[chatID] == nil {
		h.chats[chatID] = make(map[*websocket.Conn]bool)
	}
	h.chats[chatID][conn] = true
	log.Printf("ws: client connected to chat %s (total: %d)", chatID, len(h.chats[chatID]))
}

func (h *Hub) RemoveConnection(chatID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.chats[chatID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.chats, chatID)
		}
		log.Printf("ws: client disconnected from chat %s", chatID)
	}
}

// BroadcastGame sends the snapshot to every watcher of the chat. Dead
// connections are dropped on write failure.
func (h *Hub) BroadcastGame(chatID string, snapshot interface{}) {
	payload, err := json.Marshal(WSMessage{Type: "game_state", Data: snapshot})
	if err != nil {
		log.Printf("ws: marshal snapshot for chat %s: %v", chatID, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.chats[chatID]
	if !ok {
		return
	}
	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(conns, conn)
			conn.Close()
		}
	}
	if len(conns) == 0 {
		delete(h.chats, chatID)
	}
}
