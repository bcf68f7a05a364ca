package handlers

import (
	"net/http"

	"dastawez_backend/internal/middleware"
	"dastawez_backend/internal/models"
	"dastawez_backend/internal/services"
	"dastawez_backend/internal/services/dto"
	"dastawez_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	*BaseHandler
	catalog services.CatalogService
}

func NewServiceHandler(base *BaseHandler, catalog services.CatalogService) *ServiceHandler {
	return &ServiceHandler{BaseHandler: base, catalog: catalog}
}

func (h *ServiceHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Customer catalog, active services only
	catalog := r.Group("/services")
	catalog.Use(middleware.AuthMiddleware())
	{
		catalog.GET("", h.ListActive)
		catalog.GET("/:id", h.GetService)
	}

	// Admin management, full catalog
	admin := r.Group("/admin/services")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.AppRoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.CreateService)
		admin.PUT("/:id", h.UpdateService)
		admin.PATCH("/:id/active", h.SetActive)
		admin.DELETE("/:id", h.DeleteService)
	}
}

func (h *ServiceHandler) ListActive(c *gin.Context) {
	resp, err := h.catalog.ListActive()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	resp, err := h.catalog.GetService(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if !resp.IsActive && !h.IsAdminRequest(c) {
		h.HandleServiceError(c, apperrors.NewNotFoundError("catalog", "service not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServiceHandler) ListAll(c *gin.Context) {
	resp, err := h.catalog.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req dto.ServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.catalog.CreateService(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var req dto.ServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.catalog.UpdateService(c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServiceHandler) SetActive(c *gin.Context) {
	var req dto.SetActiveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.catalog.SetActive(c.Param("id"), *req.IsActive); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "is_active": *req.IsActive})
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.catalog.DeleteService(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
