package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"frigosmart/internal/models"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // The API binds to localhost only
	},
}

// chatConn maintains one chat conversation over a WebSocket connection.
// History lives with the connection; closing the socket ends the session.
type chatConn struct {
	conn    *websocket.Conn
	send    chan []byte
	mu      sync.Mutex
	history []models.ChatMessage
	server  *Server
}

type chatRequest struct {
	Message string `json:"message"`
}

// HandleChatSocket upgrades the request to a WebSocket carrying the
// assistant conversation.
func (s *Server) HandleChatSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("api: failed to upgrade chat connection: %v", err)
		return
	}

	cc := &chatConn{
		conn:   conn,
		send:   make(chan []byte, 256),
		server: s,
	}

	go cc.writePump()
	go cc.readPump()
}

// readPump pumps messages from the WebSocket connection to the assistant.
func (c *chatConn) readPump() {
	defer func() {
		c.conn.Close()
	}()

	c.conn.SetReadLimit(64 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("api: chat socket error: %v", err)
			}
			break
		}
		c.handleMessage(message)
	}
}

// writePump pumps replies to the WebSocket connection and keeps it alive
// with pings.
func (c *chatConn) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage runs one conversation turn in the background. The
// assistant always answers; failures come back as in-character fallbacks.
func (c *chatConn) handleMessage(message []byte) {
	var req chatRequest
	if err := json.Unmarshal(message, &req); err != nil {
		c.sendJSON(map[string]string{"error": "invalid message"})
		return
	}
	if req.Message == "" {
		return
	}

	go func() {
		c.mu.Lock()
		history := append([]models.ChatMessage(nil), c.history...)
		c.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		reply := c.server.advisor.Chat(ctx, history, req.Message, c.server.inventory.Items())

		now := time.Now().UnixMilli()
		c.mu.Lock()
		c.history = append(c.history,
			models.ChatMessage{ID: uuid.NewString(), Role: models.ChatRoleUser, Text: req.Message, Timestamp: now},
			models.ChatMessage{ID: uuid.NewString(), Role: models.ChatRoleModel, Text: reply, Timestamp: time.Now().UnixMilli()},
		)
		c.mu.Unlock()

		c.sendJSON(map[string]string{"reply": reply})
	}()
}

func (c *chatConn) sendJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("api: failed to marshal chat payload: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
		log.Println("api: chat buffer full, dropping message")
	}
}
