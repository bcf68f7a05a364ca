package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"dastawez_backend/internal/events"
	"dastawez_backend/internal/logger"
	"dastawez_backend/internal/models"
	"dastawez_backend/internal/repositories"
	"dastawez_backend/internal/services/dto"
	"dastawez_backend/internal/storage"
	"dastawez_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderService interface {
	Quote(req dto.QuoteRequest) (*dto.QuoteResponse, error)
	CreateOrder(userID string, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	ListUserOrders(userID string) ([]dto.OrderResponse, error)
	ListAllOrders() ([]dto.OrderResponse, error)
	GetOrder(orderID, requesterID string, isAdmin bool) (*dto.OrderResponse, error)
	UpdateStatus(orderID, actorID string, status models.OrderStatus) (*dto.OrderResponse, error)
	SetDeliveryDate(orderID string, date *time.Time) (*dto.OrderResponse, error)
	DeleteOrder(ctx context.Context, orderID, requesterID string, isAdmin bool) error
}

type OrderServiceImpl struct {
	orders   repositories.OrderRepository
	services repositories.ServiceRepository
	profiles repositories.ProfileRepository
	store    storage.Storage
	bus      *events.Bus
}

func NewOrderService(
	orders repositories.OrderRepository,
	services repositories.ServiceRepository,
	profiles repositories.ProfileRepository,
	store storage.Storage,
	bus *events.Bus,
) OrderService {
	return &OrderServiceImpl{
		orders:   orders,
		services: services,
		profiles: profiles,
		store:    store,
		bus:      bus,
	}
}

// ComputeTotal applies the pricing rule: per-copy services multiply the
// unit price by the copy count, everything else charges the flat price.
// A missing or invalid copy count falls back to the flat price.
func ComputeTotal(price decimal.Decimal, perCopy bool, copies int) decimal.Decimal {
	if perCopy && copies > 0 {
		return price.Mul(decimal.NewFromInt(int64(copies)))
	}
	return price
}

// ParseCopies extracts a copy count from a raw form value. Form values
// arrive as strings or JSON numbers.
func ParseCopies(raw interface{}) int {
	switch v := raw.(type) {
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func (s *OrderServiceImpl) Quote(req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	service, err := s.services.FindByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NewNotFoundError("order", "service not found")
		}
		return nil, apperrors.InternalError(err)
	}

	copies := ParseCopies(req.Copies)
	return &dto.QuoteResponse{
		ServiceID:    service.ID,
		PricePerCopy: service.PricePerCopy,
		UnitPrice:    service.Price,
		Copies:       copies,
		Total:        ComputeTotal(service.Price, service.PricePerCopy, copies),
	}, nil
}

func (s *OrderServiceImpl) CreateOrder(userID string, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	service, err := s.services.FindByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NewNotFoundError("order", "service not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !service.IsActive {
		return nil, apperrors.NewBadRequestError("service is not currently available")
	}

	// The submitted form values are frozen as-is. Service edits after
	// this point never change what the customer ordered.
	snapshot, err := json.Marshal(req.Details)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid order details")
	}

	copies := ParseCopies(req.Details["copies"])
	order := &models.Order{
		UserID:      userID,
		ServiceID:   service.ID,
		Status:      models.OrderStatusPending,
		Details:     datatypes.JSON(snapshot),
		Notes:       req.Notes,
		TotalAmount: ComputeTotal(service.Price, service.PricePerCopy, copies),
	}
	if err := s.orders.Create(order); err != nil {
		return nil, apperrors.InternalError(err)
	}
	order.Service = service

	s.bus.Publish(events.Event{
		Type:   events.OrderCreated,
		UserID: userID,
		Payload: map[string]interface{}{
			"order_id":     order.ID,
			"service_name": service.Name,
			"total_amount": order.TotalAmount.String(),
		},
	})

	resp := newOrderResponse(order, nil)
	return &resp, nil
}

func (s *OrderServiceImpl) ListUserOrders(userID string) ([]dto.OrderResponse, error) {
	orders, err := s.orders.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, newOrderResponse(&orders[i], nil))
	}
	return resp, nil
}

func (s *OrderServiceImpl) ListAllOrders() ([]dto.OrderResponse, error) {
	orders, err := s.orders.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// One profile lookup per distinct customer.
	profileByUser := make(map[string]*dto.ProfileResponse)
	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		customer, seen := profileByUser[orders[i].UserID]
		if !seen {
			if profile, err := s.profiles.FindByUserID(orders[i].UserID); err == nil {
				customer = dto.NewProfileResponse(profile)
			}
			profileByUser[orders[i].UserID] = customer
		}
		resp = append(resp, newOrderResponse(&orders[i], customer))
	}
	return resp, nil
}

func (s *OrderServiceImpl) GetOrder(orderID, requesterID string, isAdmin bool) (*dto.OrderResponse, error) {
	order, err := s.findAuthorized(orderID, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}

	var customer *dto.ProfileResponse
	if isAdmin {
		if profile, err := s.profiles.FindByUserID(order.UserID); err == nil {
			customer = dto.NewProfileResponse(profile)
		}
	}
	resp := newOrderResponse(order, customer)
	return &resp, nil
}

func (s *OrderServiceImpl) UpdateStatus(orderID, actorID string, status models.OrderStatus) (*dto.OrderResponse, error) {
	if !models.ValidOrderStatus(status) {
		return nil, apperrors.NewBadRequestError("unknown order status")
	}

	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.NewNotFoundError("order", "order not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if order.Status != status {
		if err := s.orders.UpdateStatus(orderID, status); err != nil {
			return nil, apperrors.InternalError(err)
		}
		order.Status = status

		s.bus.Publish(events.Event{
			Type:   events.OrderStatusChanged,
			UserID: order.UserID,
			Payload: map[string]interface{}{
				"order_id":     order.ID,
				"service_name": serviceName(order),
				"status":       string(status),
				"status_label": models.OrderStatusLabel(status),
				"actor_id":     actorID,
			},
		})
	}

	resp := newOrderResponse(order, nil)
	return &resp, nil
}

func (s *OrderServiceImpl) SetDeliveryDate(orderID string, date *time.Time) (*dto.OrderResponse, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.NewNotFoundError("order", "order not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.orders.UpdateDeliveryDate(orderID, date); err != nil {
		return nil, apperrors.InternalError(err)
	}
	order.ExpectedDeliveryDate = date

	resp := newOrderResponse(order, nil)
	return &resp, nil
}

// DeleteOrder removes the order, its document rows and the stored
// files together, so no orphans remain on either side.
func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, orderID, requesterID string, isAdmin bool) error {
	order, err := s.findAuthorized(orderID, requesterID, isAdmin)
	if err != nil {
		return err
	}

	if err := s.orders.Delete(orderID); err != nil {
		return apperrors.InternalError(err)
	}

	for _, doc := range order.Documents {
		if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
			logger.Warn("failed to remove stored file for deleted order",
				"order_id", orderID, "path", doc.StoragePath, "error", err)
		}
	}

	s.bus.Publish(events.Event{
		Type:   events.OrderDeleted,
		UserID: order.UserID,
		Payload: map[string]interface{}{
			"order_id":     order.ID,
			"service_name": serviceName(order),
			"actor_id":     requesterID,
		},
	})
	return nil
}

func (s *OrderServiceImpl) findAuthorized(orderID, requesterID string, isAdmin bool) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.NewNotFoundError("order", "order not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !isAdmin && order.UserID != requesterID {
		return nil, apperrors.NewForbiddenError("order belongs to another user")
	}
	return order, nil
}

func serviceName(order *models.Order) string {
	if order.Service != nil {
		return order.Service.Name
	}
	return "your order"
}

func newOrderResponse(o *models.Order, customer *dto.ProfileResponse) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:                   o.ID,
		UserID:               o.UserID,
		ServiceID:            o.ServiceID,
		Status:               o.Status,
		StatusLabel:          models.OrderStatusLabel(o.Status),
		Notes:                o.Notes,
		TotalAmount:          o.TotalAmount,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Customer:             customer,
		Documents:            make([]dto.OrderDocumentResponse, 0, len(o.Documents)),
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
	if len(o.Details) > 0 {
		_ = json.Unmarshal(o.Details, &resp.Details)
	}
	if o.Service != nil {
		svc := dto.NewServiceResponse(o.Service)
		resp.Service = &svc
	}
	for i := range o.Documents {
		resp.Documents = append(resp.Documents, dto.NewOrderDocumentResponse(&o.Documents[i]))
	}
	return resp
}
