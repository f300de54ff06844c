package auth

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/config"
	"github.com/pointsclub/clubadmin/internal/types"
)

type AuthRequest struct {
	Email    string
	Password string
}

type AuthResponse struct {
	AuthToken string
	UserID    string
	Email     string
	ExpiresIn int64
}

// Claims identify the caller of an authenticated request
type Claims struct {
	UserID string
	Email  string
}

type Provider interface {
	GetProvider() types.AuthProvider
	Login(ctx context.Context, req AuthRequest) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

func NewProvider(cfg *config.Configuration) Provider {
	switch cfg.Auth.Provider {
	case types.AuthProviderSupabase:
		return NewSupabaseAuth(cfg)
	default:
		return NewLocalAuth(cfg)
	}
}
