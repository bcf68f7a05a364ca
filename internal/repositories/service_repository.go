package repositories

import (
	"errors"

	"dastawez_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	Create(service *models.Service) error
	FindByID(id string) (*models.Service, error)
	FindActive() ([]models.Service, error)
	FindAll() ([]models.Service, error)
	FindByCategory(category models.ServiceCategory) ([]models.Service, error)
	Update(service *models.Service) error
	SetActive(id string, active bool) error
	Delete(id string) error
}

type ServiceRepositoryImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

func (r *ServiceRepositoryImpl) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *ServiceRepositoryImpl) FindByID(id string) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

// FindActive returns the catalog as users see it, grouped by category.
func (r *ServiceRepositoryImpl) FindActive() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("is_active = ?", true).
		Order("category ASC, name ASC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) FindAll() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("category ASC, name ASC").Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) FindByCategory(category models.ServiceCategory) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("category = ? AND is_active = ?", category, true).
		Order("name ASC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) Update(service *models.Service) error {
	result := r.db.Model(&models.Service{}).
		Where("id = ?", service.ID).
		Updates(map[string]interface{}{
			"name":                   service.Name,
			"description":            service.Description,
			"category":               service.Category,
			"price":                  service.Price,
			"price_per_copy":         service.PricePerCopy,
			"icon":                   service.Icon,
			"custom_fields":          service.CustomFields,
			"is_active":              service.IsActive,
			"show_upload_section":    service.ShowUploadSection,
			"show_completed_section": service.ShowCompletedSection,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) SetActive(id string, active bool) error {
	result := r.db.Model(&models.Service{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
