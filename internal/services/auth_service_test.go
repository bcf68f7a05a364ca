package services

import (
	"testing"

	"dastawez_backend/internal/auth"
	"dastawez_backend/internal/config"
	"dastawez_backend/internal/models"
	"dastawez_backend/internal/repositories"
	"dastawez_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*models.User
	roles map[string][]models.AppRole
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[string]*models.User),
		roles: make(map[string][]models.AppRole),
	}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	delete(r.roles, id)
	return nil
}

func (r *fakeUserRepo) HasRole(userID string, role models.AppRole) (bool, error) {
	for _, have := range r.roles[userID] {
		if have == role {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) GrantRole(userID string, role models.AppRole) error {
	has, _ := r.HasRole(userID, role)
	if !has {
		r.roles[userID] = append(r.roles[userID], role)
	}
	return nil
}

func (r *fakeUserRepo) RevokeRole(userID string, role models.AppRole) error {
	for i, have := range r.roles[userID] {
		if have == role {
			r.roles[userID] = append(r.roles[userID][:i], r.roles[userID][i+1:]...)
			return nil
		}
	}
	return repositories.ErrRoleNotGranted
}

func (r *fakeUserRepo) FindUserIDsWithRole(role models.AppRole) ([]string, error) {
	var ids []string
	for id, roles := range r.roles {
		for _, have := range roles {
			if have == role {
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

func setAuthTestConfig(t *testing.T) {
	t.Helper()
	old := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = old })
}

func TestRegister_CreatesUserWithProfile(t *testing.T) {
	setAuthTestConfig(t)
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	svc := NewAuthService(users, profiles)

	resp, err := svc.Register(dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "secret-password",
		FullName: "Asha Kumari",
		Phone:    "9876543210",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.False(t, resp.User.IsAdmin)
	require.NotNil(t, resp.User.Profile)
	assert.Equal(t, "Asha Kumari", resp.User.Profile.FullName)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.AppRoleUser, claims.Role)
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	setAuthTestConfig(t)
	svc := NewAuthService(newFakeUserRepo(), newFakeProfileRepo())

	_, err := svc.Register(dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "short",
		FullName: "Asha",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	setAuthTestConfig(t)
	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeProfileRepo())

	req := dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "secret-password",
		FullName: "Asha",
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.Error(t, err)
}

func TestLogin_ValidCredentials(t *testing.T) {
	setAuthTestConfig(t)
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	svc := NewAuthService(users, profiles)

	_, err := svc.Register(dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "secret-password",
		FullName: "Asha",
	})
	require.NoError(t, err)

	resp, err := svc.Login(dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	setAuthTestConfig(t)
	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeProfileRepo())

	_, err := svc.Register(dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "secret-password",
		FullName: "Asha",
	})
	require.NoError(t, err)

	_, errWrongPass := svc.Login(dto.LoginRequest{Email: "asha@example.com", Password: "nope-nope"})
	_, errUnknown := svc.Login(dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, errWrongPass)
	require.Error(t, errUnknown)
	// Same message either way, no account probing.
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
}

func TestLogin_AdminRoleCarriedInToken(t *testing.T) {
	setAuthTestConfig(t)
	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeProfileRepo())

	reg, err := svc.Register(dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "secret-password",
		FullName: "Admin",
	})
	require.NoError(t, err)
	require.NoError(t, users.GrantRole(reg.User.ID, models.AppRoleAdmin))

	resp, err := svc.Login(dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.True(t, resp.User.IsAdmin)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.AppRoleAdmin, claims.Role)
}
