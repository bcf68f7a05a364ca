package services

import (
	"dastawez_backend/internal/events"
	"dastawez_backend/internal/notifications"
	"dastawez_backend/internal/repositories"
	"dastawez_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer wires every service over one repository set. Built
// once at startup and handed to the handler registry.
type ServiceContainer struct {
	Auth      AuthService
	Users     UserService
	Profiles  ProfileService
	Catalog   CatalogService
	Orders    OrderService
	Documents DocumentService
	Payments  PaymentService
	Analytics AnalyticsService

	Bus    *events.Bus
	Center *notifications.Center

	// AdminLister feeds the notification dispatcher the staff user set.
	AdminLister notifications.AdminLister
}

type ContainerDeps struct {
	DB      *gorm.DB
	Storage storage.Storage
	Bus     *events.Bus
	Center  *notifications.Center
	Limits  UploadLimits
	UPI     UPIConfig
}

func NewServiceContainer(deps ContainerDeps) *ServiceContainer {
	userRepo := repositories.NewUserRepository(deps.DB)
	profileRepo := repositories.NewProfileRepository(deps.DB)
	serviceRepo := repositories.NewServiceRepository(deps.DB)
	orderRepo := repositories.NewOrderRepository(deps.DB)
	documentRepo := repositories.NewDocumentRepository(deps.DB)

	orderService := NewOrderService(orderRepo, serviceRepo, profileRepo, deps.Storage, deps.Bus)

	return &ServiceContainer{
		Auth:      NewAuthService(userRepo, profileRepo),
		Users:     NewUserService(userRepo, orderRepo, documentRepo),
		Profiles:  NewProfileService(profileRepo),
		Catalog:   NewCatalogService(serviceRepo),
		Orders:    orderService,
		Documents: NewDocumentService(documentRepo, orderRepo, deps.Storage, deps.Limits, deps.Bus),
		Payments:  NewPaymentService(orderService, deps.UPI),
		Analytics: NewAnalyticsService(orderRepo),
		Bus:       deps.Bus,
		Center:    deps.Center,

		AdminLister: userRepo,
	}
}
