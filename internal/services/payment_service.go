package services

import (
	"fmt"
	"net/url"

	"dastawez_backend/internal/logger"
	"dastawez_backend/internal/services/dto"
	"dastawez_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type UPIConfig struct {
	PayeeVPA    string
	PayeeName   string
	QREndpoint  string
	QRImageSize string
}

type PaymentService interface {
	PaymentInfo(orderID, requesterID string, isAdmin bool) (*dto.PaymentInfoResponse, error)
	ConfirmPayment(orderID, requesterID string) (*dto.PaymentConfirmResponse, error)
}

type PaymentServiceImpl struct {
	orders OrderService
	cfg    UPIConfig
}

func NewPaymentService(orders OrderService, cfg UPIConfig) PaymentService {
	return &PaymentServiceImpl{orders: orders, cfg: cfg}
}

// BuildUPILink assembles a standard upi://pay deep link. The
// transaction note carries the service name and a short order
// reference so the payment shows up identifiably in the UPI app.
func BuildUPILink(cfg UPIConfig, serviceName, orderID string, amount decimal.Decimal) string {
	params := url.Values{}
	params.Set("pa", cfg.PayeeVPA)
	params.Set("pn", cfg.PayeeName)
	params.Set("am", amount.StringFixed(2))
	params.Set("tn", fmt.Sprintf("Order: %s - %s", serviceName, shortOrderRef(orderID)))
	params.Set("cu", "INR")
	return "upi://pay?" + params.Encode()
}

// BuildQRImageURL points at the QR rendering endpoint with the UPI link
// as the encoded payload.
func BuildQRImageURL(cfg UPIConfig, upiLink string) string {
	params := url.Values{}
	params.Set("size", cfg.QRImageSize)
	params.Set("data", upiLink)
	return cfg.QREndpoint + "?" + params.Encode()
}

func shortOrderRef(orderID string) string {
	if len(orderID) > 8 {
		return orderID[:8]
	}
	return orderID
}

func (s *PaymentServiceImpl) PaymentInfo(orderID, requesterID string, isAdmin bool) (*dto.PaymentInfoResponse, error) {
	order, err := s.orders.GetOrder(orderID, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}

	name := "Order"
	if order.Service != nil {
		name = order.Service.Name
	}

	link := BuildUPILink(s.cfg, name, order.ID, order.TotalAmount)
	return &dto.PaymentInfoResponse{
		OrderID:    order.ID,
		Amount:     order.TotalAmount,
		PayeeVPA:   s.cfg.PayeeVPA,
		PayeeName:  s.cfg.PayeeName,
		UPILink:    link,
		QRImageURL: BuildQRImageURL(s.cfg, link),
	}, nil
}

// ConfirmPayment records the customer's self-reported payment. There
// is no settlement check; staff verify manually before fulfilment.
func (s *PaymentServiceImpl) ConfirmPayment(orderID, requesterID string) (*dto.PaymentConfirmResponse, error) {
	order, err := s.orders.GetOrder(orderID, requesterID, false)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID {
		return nil, apperrors.NewForbiddenError("order belongs to another user")
	}

	logger.Info("payment self-reported",
		"order_id", order.ID, "user_id", requesterID, "amount", order.TotalAmount.String())

	return &dto.PaymentConfirmResponse{
		OrderID:      order.ID,
		Acknowledged: true,
		Message:      "payment noted, the order will be processed shortly",
	}, nil
}
