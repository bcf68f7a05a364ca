package dto

import (
	"time"

	"dastawez_backend/internal/models"

	"github.com/shopspring/decimal"
)

type ServiceRequest struct {
	Name                 string               `json:"name" validate:"required,min=2,max=120"`
	Description          string               `json:"description" validate:"max=1000"`
	Category             string               `json:"category" validate:"required,service_category"`
	Price                decimal.Decimal      `json:"price" validate:"required"`
	PricePerCopy         bool                 `json:"price_per_copy"`
	Icon                 string               `json:"icon" validate:"max=50"`
	CustomFields         []models.CustomField `json:"custom_fields" validate:"omitempty,dive"`
	IsActive             *bool                `json:"is_active"`
	ShowUploadSection    *bool                `json:"show_upload_section"`
	ShowCompletedSection *bool                `json:"show_completed_section"`
}

type ServiceResponse struct {
	ID                   string                 `json:"id"`
	Name                 string                 `json:"name"`
	Description          string                 `json:"description"`
	Category             models.ServiceCategory `json:"category"`
	Price                decimal.Decimal        `json:"price"`
	PricePerCopy         bool                   `json:"price_per_copy"`
	Icon                 string                 `json:"icon"`
	CustomFields         []models.CustomField   `json:"custom_fields"`
	FormFields           []models.CustomField   `json:"form_fields"`
	IsActive             bool                   `json:"is_active"`
	ShowUploadSection    bool                   `json:"show_upload_section"`
	ShowCompletedSection bool                   `json:"show_completed_section"`
	CreatedAt            time.Time              `json:"created_at"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func NewServiceResponse(s *models.Service) ServiceResponse {
	return ServiceResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		Description:          s.Description,
		Category:             s.Category,
		Price:                s.Price,
		PricePerCopy:         s.PricePerCopy,
		Icon:                 s.Icon,
		CustomFields:         s.ParseCustomFields(),
		FormFields:           s.FormFields(),
		IsActive:             s.IsActive,
		ShowUploadSection:    s.ShowUploadSection,
		ShowCompletedSection: s.ShowCompletedSection,
		CreatedAt:            s.CreatedAt,
	}
}
