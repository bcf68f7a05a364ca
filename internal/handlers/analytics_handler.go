package handlers

import (
	"net/http"

	"dastawez_backend/internal/middleware"
	"dastawez_backend/internal/models"
	"dastawez_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	analytics services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analytics services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{BaseHandler: base, analytics: analytics}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/analytics")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.AppRoleAdmin))
	{
		admin.GET("", h.Dashboard)
	}
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	resp, err := h.analytics.Dashboard()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
