package handlers

import (
	"net/http"

	"dastawez_backend/internal/middleware"
	"dastawez_backend/internal/models"
	"dastawez_backend/internal/services"
	"dastawez_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*BaseHandler
	orders services.OrderService
}

func NewOrderHandler(base *BaseHandler, orders services.OrderService) *OrderHandler {
	return &OrderHandler{BaseHandler: base, orders: orders}
}

func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("/quote", h.Quote)
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListMyOrders)
		orders.GET("/:id", h.GetOrder)
		orders.DELETE("/:id", h.DeleteOrder)
	}

	admin := r.Group("/admin/orders")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.AppRoleAdmin))
	{
		admin.GET("", h.ListAllOrders)
		admin.PATCH("/:id/status", h.UpdateStatus)
		admin.PATCH("/:id/delivery-date", h.SetDeliveryDate)
		admin.DELETE("/:id", h.DeleteOrder)
	}
}

// Quote returns the price the wizard shows live on the details step.
func (h *OrderHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	resp, err := h.orders.Quote(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.orders.CreateOrder(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.orders.ListUserOrders(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.orders.GetOrder(c.Param("id"), userID, h.IsAdminRequest(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	resp, err := h.orders.ListAllOrders()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.orders.UpdateStatus(c.Param("id"), actorID, models.OrderStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) SetDeliveryDate(c *gin.Context) {
	var req dto.SetDeliveryDateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.orders.SetDeliveryDate(c.Param("id"), req.ExpectedDeliveryDate)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.orders.DeleteOrder(c.Request.Context(), c.Param("id"), userID, h.IsAdminRequest(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
