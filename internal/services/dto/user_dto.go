package dto

import (
	"time"

	"dastawez_backend/internal/models"
)

type UserResponse struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Status    models.UserStatus `json:"status"`
	IsAdmin   bool              `json:"is_admin"`
	Profile   *ProfileResponse  `json:"profile,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type ProfileResponse struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AvatarURL string `json:"avatar_url"`
}

type UpdateProfileRequest struct {
	FullName  string `json:"full_name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,min=7,max=20"`
	Address   string `json:"address" validate:"omitempty,max=500"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// UserDetailResponse backs the admin per-user view.
type UserDetailResponse struct {
	User      UserResponse           `json:"user"`
	Orders    []OrderResponse        `json:"orders"`
	Documents []UserDocumentResponse `json:"documents"`
}

func NewUserResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
	for _, r := range user.Roles {
		if r.Role == models.AppRoleAdmin {
			resp.IsAdmin = true
		}
	}
	if user.Profile != nil {
		resp.Profile = NewProfileResponse(user.Profile)
	}
	return resp
}

func NewProfileResponse(p *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		FullName:  p.FullName,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
		AvatarURL: p.AvatarURL,
	}
}
