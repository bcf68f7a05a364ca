package dto

import (
	"time"

	"dastawez_backend/internal/models"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	ServiceID string                 `json:"service_id" validate:"required,uuid4"`
	Details   map[string]interface{} `json:"details" validate:"required"`
	Notes     string                 `json:"notes" validate:"max=1000"`
}

type QuoteRequest struct {
	ServiceID string `form:"service_id" json:"service_id" validate:"required,uuid4"`
	Copies    string `form:"copies" json:"copies"`
}

type QuoteResponse struct {
	ServiceID    string          `json:"service_id"`
	PricePerCopy bool            `json:"price_per_copy"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Copies       int             `json:"copies"`
	Total        decimal.Decimal `json:"total"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

type SetDeliveryDateRequest struct {
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date" validate:"required"`
}

type OrderResponse struct {
	ID                   string                   `json:"id"`
	UserID               string                   `json:"user_id"`
	ServiceID            string                   `json:"service_id"`
	Status               models.OrderStatus       `json:"status"`
	StatusLabel          string                   `json:"status_label"`
	Details              map[string]interface{}   `json:"details"`
	Notes                string                   `json:"notes,omitempty"`
	TotalAmount          decimal.Decimal          `json:"total_amount"`
	ExpectedDeliveryDate *time.Time               `json:"expected_delivery_date,omitempty"`
	Service              *ServiceResponse         `json:"service,omitempty"`
	Customer             *ProfileResponse         `json:"customer,omitempty"`
	Documents            []OrderDocumentResponse  `json:"documents"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
}
