package service

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/action"
	"github.com/pointsclub/clubadmin/internal/auth"
	"github.com/pointsclub/clubadmin/internal/schema"
)

var loginSchema = schema.New("login",
	schema.Key("email", schema.Email("Email is required", "Email is not valid")),
	schema.Key("password", schema.RequiredString("Password is required")),
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	Login(ctx context.Context, in schema.Input) (*action.State[auth.AuthResponse], error)
}

type authService struct {
	ServiceParams
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{ServiceParams: params}
}

// Login signs in through the configured provider. Wrong credentials come
// back as a failed state with a general message.
func (s *authService) Login(ctx context.Context, in schema.Input) (*action.State[auth.AuthResponse], error) {
	creds, err := schema.Decode[credentials](loginSchema, in)
	if err != nil {
		return writeResult[auth.AuthResponse](ctx, s.ServiceParams, "login", nil, err)
	}

	resp, err := s.Auth.Login(ctx, auth.AuthRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		s.Logger.Infow("login failed", "email", creds.Email, "provider", s.Auth.GetProvider())
		return writeResult[auth.AuthResponse](ctx, s.ServiceParams, "login", nil, err)
	}

	s.Logger.Infow("user logged in", "user_id", resp.UserID, "provider", s.Auth.GetProvider())
	return action.Ok(resp), nil
}
