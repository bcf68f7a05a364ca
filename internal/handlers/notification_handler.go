package handlers

import (
	"net/http"

	"dastawez_backend/internal/middleware"
	"dastawez_backend/internal/notifications"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	center *notifications.Center
}

func NewNotificationHandler(base *BaseHandler, center *notifications.Center) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, center: center}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notif := r.Group("/notifications")
	notif.Use(middleware.AuthMiddleware())
	{
		notif.GET("", h.GetFeed)
		notif.POST("/:id/read", h.MarkRead)
		notif.POST("/read-all", h.MarkAllRead)
		notif.DELETE("", h.Clear)
	}
}

func (h *NotificationHandler) GetFeed(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	feed, err := h.center.Feed(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// UnreadCount still reflects the whole feed when truncated.
	if limit := ParseQueryInt(c, "limit", 0); limit > 0 && len(feed.Items) > limit {
		feed.Items = feed.Items[:limit]
	}
	c.JSON(http.StatusOK, feed)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	feed, err := h.center.MarkRead(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	feed, err := h.center.MarkAllRead(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	feed, err := h.center.Clear(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}
