package service

import (
	"testing"

	"github.com/pointsclub/clubadmin/internal/cache"
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/domain/organization"
	"github.com/pointsclub/clubadmin/internal/domain/permission"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/stretchr/testify/suite"
)

// a 1x1 PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

type OrganizationServiceSuite struct {
	ServiceTestSuite
	service OrganizationService
}

func TestOrganizationService(t *testing.T) {
	suite.Run(t, new(OrganizationServiceSuite))
}

func (s *OrganizationServiceSuite) SetupTest() {
	s.ServiceTestSuite.SetupTest()
	s.service = NewOrganizationService(s.params)
}

func (s *OrganizationServiceSuite) create(name string) *organization.Organization {
	state, err := s.service.CreateOrganization(s.GetContext(), s.userID(), schema.Input{"name": name})
	s.Require().NoError(err)
	s.Require().True(state.Success)
	return state.Data
}

// seed stores an organization the test user has no permission on
func (s *OrganizationServiceSuite) seed(active bool) *organization.Organization {
	org := &organization.Organization{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORGANIZATION),
		Name:      "Other Club",
		Slug:      "other-club-" + types.GenerateUUID(),
		Settings:  types.Metadata{},
		IsActive:  active,
		BaseModel: domain.NewBaseModel(s.GetNow()),
	}
	s.Require().NoError(s.GetStores().OrganizationRepo.Create(s.GetContext(), org))
	return org
}

func (s *OrganizationServiceSuite) grant(orgID string, active bool) {
	s.Require().NoError(s.GetStores().PermissionRepo.Create(s.GetContext(), &permission.Permission{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PERMISSION),
		UserID:         s.userID(),
		OrganizationID: orgID,
		Role:           types.RoleStaff,
		IsActive:       active,
		BaseModel:      domain.NewBaseModel(s.GetNow()),
	}))
}

func (s *OrganizationServiceSuite) TestCreateOrganizationGrantsOwner() {
	org := s.create("Café Río Club")

	s.Equal("caf-r-o-club", org.Slug)
	s.True(org.IsActive)
	s.Equal(types.Metadata{}, org.Settings)
	s.Equal(1, s.GetDB().Calls)

	p, err := s.GetStores().PermissionRepo.GetByUserAndOrganization(s.GetContext(), s.userID(), org.ID)
	s.NoError(err)
	s.Equal(types.RoleOwner, p.Role)
	s.True(p.IsActive)
}

func (s *OrganizationServiceSuite) TestCreateOrganizationValidation() {
	state, err := s.service.CreateOrganization(s.GetContext(), s.userID(), schema.Input{
		"name":     "",
		"settings": "not json",
	})
	s.NoError(err)
	s.False(state.Success)
	s.Equal(map[string][]string{
		"name":     {"Name is required"},
		"settings": {"Settings must be a JSON object"},
	}, state.Error.Fields)
	s.Equal(0, s.GetDB().Calls)
}

func (s *OrganizationServiceSuite) TestCreateOrganizationDuplicateSlug() {
	s.create("Points Club")

	state, err := s.service.CreateOrganization(s.GetContext(), s.userID(), schema.Input{"name": "Points  Club"})
	s.NoError(err)
	s.False(state.Success)
	s.Equal("organization already exists", state.Error.Message)
	s.Empty(state.Error.Fields)
}

func (s *OrganizationServiceSuite) TestGetOrganization() {
	org := s.create("Points Club")

	got, err := s.service.GetOrganization(s.GetContext(), s.userID(), org.ID)
	s.NoError(err)
	s.Equal(org.Name, got.Name)

	_, err = s.service.GetOrganization(s.GetContext(), "someone-else", org.ID)
	s.True(ierr.IsPermissionDenied(err))
	s.Equal("You do not have access to this organization", ierr.DisplayMessage(err))

	_, err = s.service.GetOrganization(s.GetContext(), "someone-else", "org_missing")
	s.True(ierr.IsNotFound(err))
}

func (s *OrganizationServiceSuite) TestUpdateOrganizationInvalidatesCache() {
	org := s.create("Points Club")
	_, err := s.service.GetOrganization(s.GetContext(), s.userID(), org.ID)
	s.NoError(err)

	state, err := s.service.UpdateOrganization(s.GetContext(), s.userID(), org.ID, schema.Input{
		"name":        "Points Club Plus",
		"slug":        "points-plus",
		"description": "",
	})
	s.NoError(err)
	s.Require().True(state.Success)
	s.Nil(state.Data.Description)

	got, err := s.service.GetOrganization(s.GetContext(), s.userID(), org.ID)
	s.NoError(err)
	s.Equal("Points Club Plus", got.Name)
	s.Equal("points-plus", got.Slug)
}

func (s *OrganizationServiceSuite) TestUpdateMissingOrganizationIsNotFound() {
	state, err := s.service.UpdateOrganization(s.GetContext(), s.userID(), "org_missing", schema.Input{"name": "x"})
	s.Nil(state)
	s.True(ierr.IsNotFound(err))
}

func (s *OrganizationServiceSuite) TestListOrganizationsOnlyShowsGranted() {
	mine := s.create("Mine")
	s.seed(true)

	resp, err := s.service.ListOrganizations(s.GetContext(), s.userID(), nil)
	s.NoError(err)
	s.Require().Len(resp.Items, 1)
	s.Equal(mine.ID, resp.Items[0].ID)
	s.Equal(1, resp.Pagination.Total)
}

func (s *OrganizationServiceSuite) TestSelectOrganization() {
	mine := s.create("Mine")
	other := s.seed(true)
	inactive := s.seed(false)
	s.grant(inactive.ID, true)
	revoked := s.seed(true)
	s.grant(revoked.ID, false)

	state, err := s.service.SelectOrganization(s.GetContext(), s.userID(), schema.Input{"organization_id": mine.ID})
	s.NoError(err)
	s.Require().True(state.Success)
	s.Equal(mine.ID, state.Data.ID)

	state, err = s.service.SelectOrganization(s.GetContext(), s.userID(), schema.Input{})
	s.NoError(err)
	s.Equal("Organization is required", state.FieldError("organization_id"))

	for _, id := range []string{"org_missing", other.ID, inactive.ID, revoked.ID} {
		_, err = s.service.SelectOrganization(s.GetContext(), s.userID(), schema.Input{"organization_id": id})
		s.True(ierr.IsPermissionDenied(err), id)
		s.False(ierr.IsNotFound(err), id)
	}

	// unknown and foreign ids look the same to the caller
	_, err = s.service.SelectOrganization(s.GetContext(), s.userID(), schema.Input{"organization_id": "org_missing"})
	s.Equal("You do not have access to this organization", ierr.DisplayMessage(err))
}

func (s *OrganizationServiceSuite) TestResolveActiveUsesCachedPermission() {
	org := s.create("Mine")
	_, err := s.service.ResolveActive(s.GetContext(), s.userID(), org.ID)
	s.NoError(err)

	key := cache.PermissionKey(org.ID, s.userID())
	_, found := s.GetCache().Get(s.GetContext(), key)
	s.True(found)

	// an edit drops the cached check along with the organization
	state, err := s.service.UpdateOrganization(s.GetContext(), s.userID(), org.ID, schema.Input{"name": "Renamed"})
	s.NoError(err)
	s.Require().True(state.Success)
	_, found = s.GetCache().Get(s.GetContext(), key)
	s.False(found)
}

func (s *OrganizationServiceSuite) TestUploadLogo() {
	org := s.create("Mine")

	state, err := s.service.UploadLogo(s.GetContext(), s.userID(), org.ID, pngPixel)
	s.NoError(err)
	s.Require().True(state.Success)
	s.Require().NotNil(state.Data.LogoURL)
	s.Equal("https://cdn.test/logos/"+org.ID+".png", *state.Data.LogoURL)

	state, err = s.service.UploadLogo(s.GetContext(), s.userID(), org.ID, []byte("plain text"))
	s.NoError(err)
	s.False(state.Success)
	s.Equal("The file must be a JPEG, PNG, GIF or WebP image", state.Error.Message)
}
