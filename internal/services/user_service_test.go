package services

import (
	"context"
	"testing"
	"time"

	"photostudio_backend/internal/auth"
	"photostudio_backend/internal/models"
	"photostudio_backend/pkg/apperrors"

	"photostudio_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	user, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Approved = approved
	return nil
}

func (r *fakeUserRepo) CountSuperadmins(ctx context.Context) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.IsSuperadmin {
			count++
		}
	}
	return count, nil
}

func newTestUserService(repo *fakeUserRepo) UserService {
	return NewUserService(repo, auth.NewTokenManager("test-secret", time.Hour))
}

func TestRegister_StartsUnapproved(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ivana",
		Email:    "ivana@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.User.Approved)
	assert.False(t, resp.User.IsSuperadmin)
	assert.False(t, resp.User.CanAccess())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	req := &dto.RegisterRequest{Name: "Ivana", Email: "ivana@example.com", Password: "secret-password"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ivana",
		Email:    "ivana@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	// Login succeeds even while unapproved; the admin routes enforce the
	// approval check on every request.
	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ivana@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ivana@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSetApproved(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ivana",
		Email:    "ivana@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	user, err := svc.SetApproved(context.Background(), resp.User.ID, true)
	require.NoError(t, err)
	assert.True(t, user.Approved)
	assert.True(t, user.CanAccess())

	user, err = svc.SetApproved(context.Background(), resp.User.ID, false)
	require.NoError(t, err)
	assert.False(t, user.Approved)

	_, err = svc.SetApproved(context.Background(), uuid.NewString(), true)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestEnsureSuperadmin(t *testing.T) {
	repo := newFakeUserRepo()

	require.NoError(t, EnsureSuperadmin(context.Background(), repo, "Owner", "owner@example.com", "seed-password"))

	seeded, err := repo.FindByEmail(context.Background(), "owner@example.com")
	require.NoError(t, err)
	assert.True(t, seeded.IsSuperadmin)
	assert.True(t, seeded.Approved)
	require.NotNil(t, seeded.EmailVerifiedAt)

	// A second boot does not seed another superadmin.
	require.NoError(t, EnsureSuperadmin(context.Background(), repo, "Owner", "other@example.com", "seed-password"))
	_, err = repo.FindByEmail(context.Background(), "other@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEnsureSuperadmin_SkipsWithoutCredentials(t *testing.T) {
	repo := newFakeUserRepo()

	require.NoError(t, EnsureSuperadmin(context.Background(), repo, "", "", ""))
	assert.Empty(t, repo.users)
}
