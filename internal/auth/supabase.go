package auth

import (
	"context"
	"log"

	"github.com/nedpals/supabase-go"
	"github.com/pointsclub/clubadmin/internal/config"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/types"
)

type supabaseAuth struct {
	AuthConfig config.AuthConfig
	client     *supabase.Client
}

func NewSupabaseAuth(cfg *config.Configuration) Provider {
	supabaseUrl := cfg.Auth.Supabase.BaseURL
	adminApiKey := cfg.Auth.Supabase.ServiceKey

	client := supabase.CreateClient(supabaseUrl, adminApiKey)
	if client == nil {
		log.Fatalf("failed to create Supabase client")
	}

	return &supabaseAuth{
		AuthConfig: cfg.Auth,
		client:     client,
	}
}

func (s *supabaseAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderSupabase
}

func (s *supabaseAuth) Login(ctx context.Context, req AuthRequest) (*AuthResponse, error) {
	details, err := s.client.Auth.SignIn(ctx, supabase.UserCredentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid email or password").
			Mark(ierr.ErrUnauthorized)
	}

	return &AuthResponse{
		AuthToken: details.AccessToken,
		UserID:    details.User.ID,
		Email:     details.User.Email,
		ExpiresIn: int64(details.ExpiresIn),
	}, nil
}

// ValidateToken verifies a Supabase access token with the project's JWT secret
func (s *supabaseAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	claims, err := parseHMACToken(token, s.AuthConfig.Secret)
	if err != nil {
		return nil, err
	}
	return claimsFrom(claims)
}
