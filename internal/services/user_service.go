package services

import (
	"errors"

	"dastawez_backend/internal/models"
	"dastawez_backend/internal/repositories"
	"dastawez_backend/internal/services/dto"
	"dastawez_backend/pkg/apperrors"
)

type UserService interface {
	ListUsers() ([]dto.UserResponse, error)
	GetUserDetail(userID string) (*dto.UserDetailResponse, error)
	GrantAdmin(userID string) error
	RevokeAdmin(userID string) error
	DeleteUser(userID string) error
}

type UserServiceImpl struct {
	users     repositories.UserRepository
	orders    repositories.OrderRepository
	documents repositories.DocumentRepository
}

func NewUserService(
	users repositories.UserRepository,
	orders repositories.OrderRepository,
	documents repositories.DocumentRepository,
) UserService {
	return &UserServiceImpl{users: users, orders: orders, documents: documents}
}

func (s *UserServiceImpl) ListUsers() ([]dto.UserResponse, error) {
	users, err := s.users.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *UserServiceImpl) GetUserDetail(userID string) (*dto.UserDetailResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "user not found")
		}
		return nil, apperrors.InternalError(err)
	}

	isAdmin, err := s.users.HasRole(userID, models.AppRoleAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if isAdmin {
		user.Roles = append(user.Roles, models.UserRole{UserID: userID, Role: models.AppRoleAdmin})
	}

	orders, err := s.orders.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	docs, err := s.documents.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	detail := &dto.UserDetailResponse{
		User:      dto.NewUserResponse(user),
		Orders:    make([]dto.OrderResponse, 0, len(orders)),
		Documents: make([]dto.UserDocumentResponse, 0, len(docs)),
	}
	for i := range orders {
		detail.Orders = append(detail.Orders, newOrderResponse(&orders[i], nil))
	}
	for i := range docs {
		detail.Documents = append(detail.Documents, dto.NewUserDocumentResponse(&docs[i]))
	}
	return detail, nil
}

func (s *UserServiceImpl) GrantAdmin(userID string) error {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "user not found")
		}
		return apperrors.InternalError(err)
	}
	if err := s.users.GrantRole(userID, models.AppRoleAdmin); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) RevokeAdmin(userID string) error {
	err := s.users.RevokeRole(userID, models.AppRoleAdmin)
	if err != nil {
		if errors.Is(err, repositories.ErrRoleNotGranted) {
			return apperrors.NewNotFoundError("user", "user does not hold the admin role")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) DeleteUser(userID string) error {
	err := s.users.Delete(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "user not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
