package auth

import (
	"context"
	"strings"
	"time"

	"github.com/pointsclub/clubadmin/internal/config"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/types"
	"golang.org/x/crypto/bcrypt"
)

const defaultLocalTokenTTL = 24 * time.Hour

// localAuth signs in the single operator account from config. It backs local
// development and self hosted installs without Supabase.
type localAuth struct {
	AuthConfig config.AuthConfig
	now        func() time.Time
}

func NewLocalAuth(cfg *config.Configuration) Provider {
	return &localAuth{
		AuthConfig: cfg.Auth,
		now:        time.Now,
	}
}

func (l *localAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderLocal
}

func (l *localAuth) Login(ctx context.Context, req AuthRequest) (*AuthResponse, error) {
	invalid := ierr.NewError("invalid credentials").
		WithHint("Invalid email or password").
		Mark(ierr.ErrUnauthorized)

	if !strings.EqualFold(strings.TrimSpace(req.Email), l.AuthConfig.Local.Email) {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(l.AuthConfig.Local.PasswordHash), []byte(req.Password)); err != nil {
		return nil, invalid
	}

	ttl := l.AuthConfig.Local.TokenTTL
	if ttl <= 0 {
		ttl = defaultLocalTokenTTL
	}

	userID := l.userID()
	token, err := signHMACToken(l.AuthConfig.Secret, userID, l.AuthConfig.Local.Email, ttl, l.now())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}

	return &AuthResponse{
		AuthToken: token,
		UserID:    userID,
		Email:     l.AuthConfig.Local.Email,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}

func (l *localAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	claims, err := parseHMACToken(token, l.AuthConfig.Secret)
	if err != nil {
		return nil, err
	}
	return claimsFrom(claims)
}

func (l *localAuth) userID() string {
	if l.AuthConfig.Local.UserID != "" {
		return l.AuthConfig.Local.UserID
	}
	return types.DefaultUserID
}

// HashPassword returns the bcrypt hash to put in auth.local.password_hash
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to hash password").
			Mark(ierr.ErrSystem)
	}
	return string(hash), nil
}
