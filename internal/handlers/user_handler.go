package handlers

import (
	"net/http"

	"dastawez_backend/internal/middleware"
	"dastawez_backend/internal/models"
	"dastawez_backend/internal/services"
	"dastawez_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	users services.UserService
}

func NewUserHandler(base *BaseHandler, users services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, users: users}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.AppRoleAdmin))
	{
		admin.GET("", h.ListUsers)
		admin.GET("/:id", h.GetUserDetail)
		admin.POST("/:id/admin", h.GrantAdmin)
		admin.DELETE("/:id/admin", h.RevokeAdmin)
		admin.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	resp, err := h.users.ListUsers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetUserDetail(c *gin.Context) {
	resp, err := h.users.GetUserDetail(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GrantAdmin(c *gin.Context) {
	if err := h.users.GrantAdmin(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "is_admin": true})
}

func (h *UserHandler) RevokeAdmin(c *gin.Context) {
	requesterID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if requesterID == c.Param("id") {
		h.HandleServiceError(c, apperrors.NewBadRequestError("cannot revoke your own admin role"))
		return
	}

	if err := h.users.RevokeAdmin(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "is_admin": false})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	requesterID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if requesterID == c.Param("id") {
		h.HandleServiceError(c, apperrors.NewBadRequestError("cannot delete your own account"))
		return
	}

	if err := h.users.DeleteUser(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
