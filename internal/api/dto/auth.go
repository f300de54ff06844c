package dto

import (
	"github.com/pointsclub/clubadmin/internal/auth"
)

// LoginRequest documents the login form; handlers read it through the login schema
type LoginRequest struct {
	Email    string `json:"email" form:"email" example:"admin@example.com"`
	Password string `json:"password" form:"password"`
}

type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	ExpiresIn int64  `json:"expires_in"`
}

func NewAuthResponse(resp *auth.AuthResponse) *AuthResponse {
	if resp == nil {
		return nil
	}
	return &AuthResponse{
		Token:     resp.AuthToken,
		UserID:    resp.UserID,
		Email:     resp.Email,
		ExpiresIn: resp.ExpiresIn,
	}
}

// MeResponse describes the signed in dashboard user
type MeResponse struct {
	UserID               string  `json:"user_id"`
	Email                string  `json:"email"`
	ActiveOrganizationID *string `json:"active_organization_id"`
}
