package repositories

import (
	"errors"

	"dastawez_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	CreateOrderDocument(doc *models.OrderDocument) error
	FindOrderDocument(id string) (*models.OrderDocument, error)
	FindOrderDocumentByPath(path string) (*models.OrderDocument, error)
	FindByOrder(orderID string) ([]models.OrderDocument, error)
	DeleteOrderDocument(id string) error

	CreateUserDocument(doc *models.UserDocument) error
	FindUserDocument(id string) (*models.UserDocument, error)
	FindUserDocumentByPath(path string) (*models.UserDocument, error)
	FindByUser(userID string) ([]models.UserDocument, error)
	DeleteUserDocument(id string) error
}

type DocumentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

func (r *DocumentRepositoryImpl) CreateOrderDocument(doc *models.OrderDocument) error {
	return r.db.Create(doc).Error
}

func (r *DocumentRepositoryImpl) FindOrderDocument(id string) (*models.OrderDocument, error) {
	var doc models.OrderDocument
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepositoryImpl) FindOrderDocumentByPath(path string) (*models.OrderDocument, error) {
	var doc models.OrderDocument
	err := r.db.First(&doc, "storage_path = ?", path).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepositoryImpl) FindByOrder(orderID string) ([]models.OrderDocument, error) {
	var docs []models.OrderDocument
	err := r.db.Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) DeleteOrderDocument(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.OrderDocument{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *DocumentRepositoryImpl) CreateUserDocument(doc *models.UserDocument) error {
	return r.db.Create(doc).Error
}

func (r *DocumentRepositoryImpl) FindUserDocument(id string) (*models.UserDocument, error) {
	var doc models.UserDocument
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepositoryImpl) FindUserDocumentByPath(path string) (*models.UserDocument, error) {
	var doc models.UserDocument
	err := r.db.First(&doc, "storage_path = ?", path).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepositoryImpl) FindByUser(userID string) ([]models.UserDocument, error) {
	var docs []models.UserDocument
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) DeleteUserDocument(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.UserDocument{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
