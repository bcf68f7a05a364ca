package services

import (
	"errors"

	"dastawez_backend/internal/models"
	"dastawez_backend/internal/repositories"
	"dastawez_backend/internal/services/dto"
	"dastawez_backend/pkg/apperrors"
)

type ProfileService interface {
	GetProfile(userID string) (*dto.ProfileResponse, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profiles repositories.ProfileRepository
}

func NewProfileService(profiles repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profiles: profiles}
}

func (s *ProfileServiceImpl) GetProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile := &models.Profile{
		UserID:    userID,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		AvatarURL: req.AvatarURL,
	}
	if err := s.profiles.Upsert(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}
