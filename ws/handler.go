package ws

import (
	"net/http"

	"dastawez_backend/internal/auth"
	"dastawez_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	Manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{Manager: manager}
}

// ServeWS upgrades the connection. Browsers cannot set an
// Authorization header on the WebSocket handshake, so the token comes
// in as a query parameter.
func (h *Handler) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter is required"})
		return
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("ws upgrade failed", "error", err)
		return
	}

	client := &Client{
		UserID:  claims.UserID,
		Conn:    conn,
		Send:    make(chan interface{}, 256),
		manager: h.Manager,
	}

	h.Manager.register <- client

	go client.readPump()
	go client.writePump()
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/ws", h.ServeWS)
}
