package handlers

import (
	"net/http"

	"dastawez_backend/ws"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
	wsManager *ws.Manager
}

func NewHealthHandler(base *BaseHandler, wsManager *ws.Manager) *HealthHandler {
	return &HealthHandler{BaseHandler: base, wsManager: wsManager}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
}

// Health reports liveness, database reachability and the live
// WebSocket connection count.
func (h *HealthHandler) Health(c *gin.Context) {
	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"database":   "up",
		"ws_clients": h.wsManager.ClientCount(),
	})
}
