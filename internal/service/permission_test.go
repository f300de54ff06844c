package service

import (
	"testing"

	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/stretchr/testify/suite"
)

type PermissionServiceSuite struct {
	ServiceTestSuite
	service       PermissionService
	organizations OrganizationService
}

func TestPermissionService(t *testing.T) {
	suite.Run(t, new(PermissionServiceSuite))
}

func (s *PermissionServiceSuite) SetupTest() {
	s.ServiceTestSuite.SetupTest()
	s.service = NewPermissionService(s.params)
	s.organizations = NewOrganizationService(s.params)
}

func (s *PermissionServiceSuite) TestCreatePermission() {
	state, err := s.service.CreatePermission(s.GetContext(), "o1", schema.Input{"user_id": "user_2", "role": "admin"})
	s.NoError(err)
	s.Require().True(state.Success)
	s.True(state.Data.IsActive)
	s.Equal("o1", state.Data.OrganizationID)

	state, err = s.service.CreatePermission(s.GetContext(), "o1", schema.Input{"user_id": "user_3", "role": "root"})
	s.NoError(err)
	s.False(state.Success)
	s.Equal("Role must be owner, admin or staff", state.FieldError("role"))
}

func (s *PermissionServiceSuite) TestRevokingPermissionDropsCachedAccess() {
	org, err := s.organizations.CreateOrganization(s.GetContext(), s.userID(), schema.Input{"name": "Club"})
	s.Require().NoError(err)
	s.Require().True(org.Success)

	granted, err := s.service.CreatePermission(s.GetContext(), org.Data.ID, schema.Input{"user_id": "user_2", "role": "staff"})
	s.Require().NoError(err)
	s.Require().True(granted.Success)

	_, err = s.organizations.ResolveActive(s.GetContext(), "user_2", org.Data.ID)
	s.Require().NoError(err)

	state, err := s.service.UpdatePermission(s.GetContext(), org.Data.ID, granted.Data.ID, schema.Input{
		"user_id":   "user_2",
		"role":      "staff",
		"is_active": "false",
	})
	s.NoError(err)
	s.Require().True(state.Success)
	s.False(state.Data.IsActive)

	_, err = s.organizations.ResolveActive(s.GetContext(), "user_2", org.Data.ID)
	s.Error(err)
}
