package dto

import "photostudio_backend/internal/models"

// RegisterRequest creates a new (unapproved) user.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest authenticates a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries a bearer token plus the user record.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// ApproveUserRequest flips a user's approval flag.
type ApproveUserRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}
