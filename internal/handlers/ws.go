package handlers

import (
	"log"
	"net/http"

	"github.com/Similization/kts-project/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket stream of game state for a chat
// @Description  Connect via WebSocket to receive a snapshot after every processed guess
// @Tags         websocket
// @Param        chat_id path string true "Chat ID"
// @Router       /ws/games/{chat_id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	chatID := c.Param("chat_id")
	if chatID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid chat id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(chatID, conn)
	defer h.hub.RemoveConnection(chatID, conn)

	// Reads are discarded, the stream is one-way. Exit on close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
