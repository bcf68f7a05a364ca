package services

import (
	"errors"

	"dastawez_backend/internal/auth"
	"dastawez_backend/internal/models"
	"dastawez_backend/internal/repositories"
	"dastawez_backend/internal/services/dto"
	"dastawez_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	users    repositories.UserRepository
	profiles repositories.ProfileRepository
}

func NewAuthService(users repositories.UserRepository, profiles repositories.ProfileRepository) AuthService {
	return &AuthServiceImpl{users: users, profiles: profiles}
}

func (s *AuthServiceImpl) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	// The DTO enforces this at the HTTP boundary too; callers that
	// skip binding still get the policy applied.
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Status:       models.UserStatusActive,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.NewConflictError("auth", "email is already registered")
		}
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		UserID:   user.ID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := s.profiles.Create(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.Profile = profile

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, invalidCredentials()
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	if profile, err := s.profiles.FindByUserID(user.ID); err == nil {
		user.Profile = profile
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	role := models.AppRoleUser
	isAdmin, err := s.users.HasRole(user.ID, models.AppRoleAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if isAdmin {
		role = models.AppRoleAdmin
		user.Roles = append(user.Roles, models.UserRole{UserID: user.ID, Role: models.AppRoleAdmin})
	}

	token, err := auth.GenerateToken(user.ID, user.Email, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

func invalidCredentials() *apperrors.AppError {
	return apperrors.New(apperrors.CodeInvalidCredentials, "auth", "invalid email or password", 401)
}
