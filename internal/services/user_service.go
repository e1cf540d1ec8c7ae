package services

import (
	"context"
	"time"

	"photostudio_backend/internal/auth"
	"photostudio_backend/internal/logger"
	"photostudio_backend/internal/models"
	"photostudio_backend/internal/repositories"
	"photostudio_backend/internal/services/dto"
	"photostudio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	// Register creates a new user; accounts start unapproved.
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login verifies credentials and issues a token. Approval is not checked
	// here; the gate runs per request so revocation applies immediately.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)

	// List returns all users, newest first.
	List(ctx context.Context) ([]models.User, error)

	// SetApproved flips the approval flag on a user.
	SetApproved(ctx context.Context, id string, approved bool) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewUserService(userRepo repositories.UserRepository, tokens *auth.TokenManager) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !apperrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrDatabase(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	logger.Info("user registered", "user_id", user.ID, "email", user.Email)

	return s.buildAuthResponse(user)
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.ErrDatabase(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return users, nil
}

func (s *userService) SetApproved(ctx context.Context, id string, approved bool) (*models.User, error) {
	if err := s.userRepo.SetApproved(ctx, id, approved); err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	logger.Info("user approval changed", "user_id", id, "approved", approved)

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return user, nil
}

func (s *userService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: user}, nil
}

// EnsureSuperadmin seeds the first superadmin from config when none exists.
func EnsureSuperadmin(ctx context.Context, userRepo repositories.UserRepository, name, emailAddr, password string) error {
	count, err := userRepo.CountSuperadmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 || emailAddr == "" || password == "" {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	user := &models.User{
		Name:            name,
		Email:           emailAddr,
		PasswordHash:    hash,
		Approved:        true,
		IsSuperadmin:    true,
		EmailVerifiedAt: &now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}

	logger.Info("superadmin seeded", "email", emailAddr)
	return nil
}
