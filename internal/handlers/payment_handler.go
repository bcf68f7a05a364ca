package handlers

import (
	"net/http"

	"dastawez_backend/internal/middleware"
	"dastawez_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	payments services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, payments services.PaymentService) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, payments: payments}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/orders/:id/payment")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.GET("", h.PaymentInfo)
		payments.POST("/confirm", h.ConfirmPayment)
	}
}

func (h *PaymentHandler) PaymentInfo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.payments.PaymentInfo(c.Param("id"), userID, h.IsAdminRequest(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.payments.ConfirmPayment(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
