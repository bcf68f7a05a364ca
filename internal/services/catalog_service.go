package services

import (
	"encoding/json"
	"errors"

	"dastawez_backend/internal/models"
	"dastawez_backend/internal/repositories"
	"dastawez_backend/internal/services/dto"
	"dastawez_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type CatalogService interface {
	ListActive() ([]dto.ServiceResponse, error)
	ListAll() ([]dto.ServiceResponse, error)
	GetService(id string) (*dto.ServiceResponse, error)
	CreateService(req dto.ServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(id string, req dto.ServiceRequest) (*dto.ServiceResponse, error)
	SetActive(id string, active bool) error
	DeleteService(id string) error
}

type CatalogServiceImpl struct {
	services repositories.ServiceRepository
}

func NewCatalogService(services repositories.ServiceRepository) CatalogService {
	return &CatalogServiceImpl{services: services}
}

func (s *CatalogServiceImpl) ListActive() ([]dto.ServiceResponse, error) {
	services, err := s.services.FindActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toServiceResponses(services), nil
}

func (s *CatalogServiceImpl) ListAll() ([]dto.ServiceResponse, error) {
	services, err := s.services.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toServiceResponses(services), nil
}

func (s *CatalogServiceImpl) GetService(id string) (*dto.ServiceResponse, error) {
	service, err := s.services.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NewNotFoundError("catalog", "service not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewServiceResponse(service)
	return &resp, nil
}

func (s *CatalogServiceImpl) CreateService(req dto.ServiceRequest) (*dto.ServiceResponse, error) {
	service, err := serviceFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.services.Create(service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewServiceResponse(service)
	return &resp, nil
}

func (s *CatalogServiceImpl) UpdateService(id string, req dto.ServiceRequest) (*dto.ServiceResponse, error) {
	service, err := serviceFromRequest(req)
	if err != nil {
		return nil, err
	}
	service.ID = id
	if err := s.services.Update(service); err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NewNotFoundError("catalog", "service not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetService(id)
}

func (s *CatalogServiceImpl) SetActive(id string, active bool) error {
	if err := s.services.SetActive(id, active); err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return apperrors.NewNotFoundError("catalog", "service not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) DeleteService(id string) error {
	if err := s.services.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrServiceNotFound) {
			return apperrors.NewNotFoundError("catalog", "service not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func serviceFromRequest(req dto.ServiceRequest) (*models.Service, error) {
	service := &models.Service{
		Name:                 req.Name,
		Description:          req.Description,
		Category:             models.ServiceCategory(req.Category),
		Price:                req.Price,
		PricePerCopy:         req.PricePerCopy,
		Icon:                 req.Icon,
		IsActive:             true,
		ShowUploadSection:    true,
		ShowCompletedSection: true,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	if req.ShowUploadSection != nil {
		service.ShowUploadSection = *req.ShowUploadSection
	}
	if req.ShowCompletedSection != nil {
		service.ShowCompletedSection = *req.ShowCompletedSection
	}
	if len(req.CustomFields) > 0 {
		raw, err := json.Marshal(req.CustomFields)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid custom fields")
		}
		service.CustomFields = datatypes.JSON(raw)
	}
	return service, nil
}

func toServiceResponses(services []models.Service) []dto.ServiceResponse {
	resp := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		resp = append(resp, dto.NewServiceResponse(&services[i]))
	}
	return resp
}
