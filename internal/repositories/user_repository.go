package repositories

import (
	"errors"

	"dastawez_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrRoleNotGranted = errors.New("role not granted")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindAll() ([]models.User, error)
	Delete(id string) error

	// Role assignments
	HasRole(userID string, role models.AppRole) (bool, error)
	GrantRole(userID string, role models.AppRole) error
	RevokeRole(userID string, role models.AppRole) error
	FindUserIDsWithRole(role models.AppRole) ([]string, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Profile").Preload("Roles").
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// Delete removes the user together with role assignments and profile.
func (r *UserRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepositoryImpl) HasRole(userID string, role models.AppRole) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) GrantRole(userID string, role models.AppRole) error {
	has, err := r.HasRole(userID, role)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	return r.db.Create(&models.UserRole{UserID: userID, Role: role}).Error
}

func (r *UserRepositoryImpl) RevokeRole(userID string, role models.AppRole) error {
	result := r.db.Where("user_id = ? AND role = ?", userID, role).Delete(&models.UserRole{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoleNotGranted
	}
	return nil
}

func (r *UserRepositoryImpl) FindUserIDsWithRole(role models.AppRole) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.UserRole{}).
		Where("role = ?", role).
		Pluck("user_id", &ids).Error
	return ids, err
}
