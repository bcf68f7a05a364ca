package handlers

import (
	"dastawez_backend/internal/services"
	"dastawez_backend/internal/validator"
	"dastawez_backend/ws"
)

// AppHandlers holds every handler in the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	UserHandler         *UserHandler
	ServiceHandler      *ServiceHandler
	OrderHandler        *OrderHandler
	DocumentHandler     *DocumentHandler
	FileHandler         *FileHandler
	PaymentHandler      *PaymentHandler
	NotificationHandler *NotificationHandler
	AnalyticsHandler    *AnalyticsHandler
	HealthHandler       *HealthHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator, wsManager *ws.Manager) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, container.Auth),
		ProfileHandler:      NewProfileHandler(base, container.Profiles),
		UserHandler:         NewUserHandler(base, container.Users),
		ServiceHandler:      NewServiceHandler(base, container.Catalog),
		OrderHandler:        NewOrderHandler(base, container.Orders),
		DocumentHandler:     NewDocumentHandler(base, container.Documents),
		FileHandler:         NewFileHandler(base, container.Documents),
		PaymentHandler:      NewPaymentHandler(base, container.Payments),
		NotificationHandler: NewNotificationHandler(base, container.Center),
		AnalyticsHandler:    NewAnalyticsHandler(base, container.Analytics),
		HealthHandler:       NewHealthHandler(base, wsManager),
	}
}
