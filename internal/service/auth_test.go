package service

import (
	"testing"

	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/stretchr/testify/suite"
)

type AuthServiceSuite struct {
	ServiceTestSuite
	service AuthService
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.ServiceTestSuite.SetupTest()
	s.service = NewAuthService(s.params)
}

func (s *AuthServiceSuite) TestLogin() {
	state, err := s.service.Login(s.GetContext(), schema.Input{
		"email":    "Admin@Example.com",
		"password": testOperatorPassword,
	})
	s.NoError(err)
	s.Require().True(state.Success)
	s.NotEmpty(state.Data.AuthToken)
	s.Equal(types.DefaultUserID, state.Data.UserID)

	claims, err := s.params.Auth.ValidateToken(s.GetContext(), state.Data.AuthToken)
	s.NoError(err)
	s.Equal(types.DefaultUserID, claims.UserID)
	s.Equal(testOperatorEmail, claims.Email)
}

func (s *AuthServiceSuite) TestLoginFailures() {
	testCases := []struct {
		name    string
		input   schema.Input
		message string
		fields  map[string][]string
	}{
		{
			name:   "missing_fields",
			input:  schema.Input{},
			fields: map[string][]string{"email": {"Email is required"}, "password": {"Password is required"}},
		},
		{
			name:   "bad_email",
			input:  schema.Input{"email": "admin", "password": "x"},
			fields: map[string][]string{"email": {"Email is not valid"}},
		},
		{
			name:    "wrong_password",
			input:   schema.Input{"email": testOperatorEmail, "password": "wrong"},
			message: "Invalid email or password",
		},
		{
			name:    "unknown_email",
			input:   schema.Input{"email": "other@example.com", "password": testOperatorPassword},
			message: "Invalid email or password",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			state, err := s.service.Login(s.GetContext(), tc.input)
			s.NoError(err)
			s.False(state.Success)
			s.Equal(tc.message, state.Error.Message)
			s.Equal(tc.fields, state.Error.Fields)
		})
	}
}
