package service

import (
	"context"
	"time"

	"github.com/pointsclub/clubadmin/internal/action"
	"github.com/pointsclub/clubadmin/internal/cache"
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/domain/organization"
	"github.com/pointsclub/clubadmin/internal/domain/permission"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/s3"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/samber/lo"
)

// selectSchema validates the organization picker form
var selectSchema = schema.New("select_organization",
	schema.Key("organization_id", schema.RequiredString("Organization is required")),
)

type selection struct {
	OrganizationID string `json:"organization_id"`
}

type OrganizationService interface {
	CreateOrganization(ctx context.Context, userID string, in schema.Input) (*action.State[organization.Organization], error)
	GetOrganization(ctx context.Context, userID, id string) (*organization.Organization, error)
	UpdateOrganization(ctx context.Context, userID, id string, in schema.Input) (*action.State[organization.Organization], error)
	ListOrganizations(ctx context.Context, userID string, filter *types.QueryFilter) (*types.ListResponse[*organization.Organization], error)
	UploadLogo(ctx context.Context, userID, id string, data []byte) (*action.State[organization.Organization], error)

	// SelectOrganization validates the picker form and checks userID may act
	// on the chosen organization. The caller stores the id in the session.
	SelectOrganization(ctx context.Context, userID string, in schema.Input) (*action.State[organization.Organization], error)

	// ResolveActive re-checks the organization held in the session on every
	// request. Results are cached briefly.
	ResolveActive(ctx context.Context, userID, organizationID string) (*organization.Organization, error)
}

type organizationService struct {
	ServiceParams
}

func NewOrganizationService(params ServiceParams) OrganizationService {
	return &organizationService{ServiceParams: params}
}

func (s *organizationService) CreateOrganization(ctx context.Context, userID string, in schema.Input) (*action.State[organization.Organization], error) {
	org, err := schema.Decode[organization.Organization](organization.Schema, in)
	if err != nil {
		return writeResult[organization.Organization](ctx, s.ServiceParams, "create_organization", nil, err)
	}

	now := time.Now().UTC()
	org.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORGANIZATION)
	if org.Slug == "" {
		org.Slug = organization.Slugify(org.Name)
	}
	if org.Settings == nil {
		org.Settings = types.Metadata{}
	}
	org.BaseModel = domain.NewBaseModel(now)

	owner := &permission.Permission{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PERMISSION),
		UserID:         userID,
		OrganizationID: org.ID,
		Role:           types.RoleOwner,
		IsActive:       true,
		BaseModel:      domain.NewBaseModel(now),
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.OrganizationRepo.Create(ctx, org); err != nil {
			return err
		}
		return s.PermissionRepo.Create(ctx, owner)
	})
	if err != nil {
		return writeResult[organization.Organization](ctx, s.ServiceParams, "create_organization", nil, err)
	}

	s.Logger.Infow("created organization", "organization_id", org.ID, "user_id", userID)
	return action.Ok(org), nil
}

// authorize returns the active permission userID holds on organizationID
func (s *organizationService) authorize(ctx context.Context, userID, organizationID string) (*permission.Permission, error) {
	key := cache.PermissionKey(organizationID, userID)
	if cached, found := s.Cache.Get(ctx, key); found {
		if p, ok := cached.(*permission.Permission); ok {
			return p, nil
		}
	}

	p, err := s.PermissionRepo.GetByUserAndOrganization(ctx, userID, organizationID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.NewErrorf("user %s has no permission on %s", userID, organizationID).
				WithHint("You do not have access to this organization").
				Mark(ierr.ErrPermissionDenied)
		}
		return nil, err
	}

	s.Cache.Set(ctx, key, p, 0)
	return p, nil
}

func (s *organizationService) getOrganization(ctx context.Context, id string) (*organization.Organization, error) {
	key := cache.OrganizationKey(id)
	if cached, found := s.Cache.Get(ctx, key); found {
		if org, ok := cached.(*organization.Organization); ok {
			c := *org
			return &c, nil
		}
	}

	org, err := s.OrganizationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c := *org
	s.Cache.Set(ctx, key, &c, 0)
	return org, nil
}

// forget drops the cached organization along with the permissions checked
// against it, so a deactivation applies on the next request
func (s *organizationService) forget(ctx context.Context, id string) {
	cache.ForgetOrganization(ctx, s.Cache, id)
}

// GetOrganization answers not found before permission denied, so a missing
// organization is a 404 even for callers without access
func (s *organizationService) GetOrganization(ctx context.Context, userID, id string) (*organization.Organization, error) {
	org, err := s.getOrganization(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorize(ctx, userID, id); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *organizationService) UpdateOrganization(ctx context.Context, userID, id string, in schema.Input) (*action.State[organization.Organization], error) {
	org, err := s.GetOrganization(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := schema.DecodeInto(organization.EditSchema, in.With(schema.FieldID, id), org); err != nil {
		return writeResult[organization.Organization](ctx, s.ServiceParams, "update_organization", nil, err)
	}
	if org.Slug == "" {
		org.Slug = organization.Slugify(org.Name)
	}
	if org.Settings == nil {
		org.Settings = types.Metadata{}
	}
	org.Touch(time.Now())

	if err := s.OrganizationRepo.Update(ctx, org); err != nil {
		return writeResult[organization.Organization](ctx, s.ServiceParams, "update_organization", nil, err)
	}
	s.forget(ctx, id)
	return action.Ok(org), nil
}

func (s *organizationService) ListOrganizations(ctx context.Context, userID string, filter *types.QueryFilter) (*types.ListResponse[*organization.Organization], error) {
	filter, err := validateFilter(filter)
	if err != nil {
		return nil, err
	}

	page, err := fetchPage(ctx, userID, filter, s.OrganizationRepo.ListByUser, s.OrganizationRepo.CountByUser)
	if err != nil {
		s.Logger.Errorw("failed to list organizations", "error", err, "user_id", userID)
		return nil, err
	}
	return page, nil
}

func (s *organizationService) UploadLogo(ctx context.Context, userID, id string, data []byte) (*action.State[organization.Organization], error) {
	org, err := s.GetOrganization(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	url, err := s.S3.UploadImage(ctx, &s3.Image{OwnerID: id, Kind: s3.ImageKindLogo, Data: data})
	if err != nil {
		return writeResult[organization.Organization](ctx, s.ServiceParams, "upload_logo", nil, err)
	}

	org.LogoURL = lo.ToPtr(url)
	org.Touch(time.Now())
	if err := s.OrganizationRepo.Update(ctx, org); err != nil {
		return writeResult[organization.Organization](ctx, s.ServiceParams, "upload_logo", nil, err)
	}
	s.forget(ctx, id)
	return action.Ok(org), nil
}

func (s *organizationService) SelectOrganization(ctx context.Context, userID string, in schema.Input) (*action.State[organization.Organization], error) {
	sel, err := schema.Decode[selection](selectSchema, in)
	if err != nil {
		return writeResult[organization.Organization](ctx, s.ServiceParams, "select_organization", nil, err)
	}

	org, err := s.ResolveActive(ctx, userID, sel.OrganizationID)
	if err != nil {
		return nil, err
	}
	return action.Ok(org), nil
}

// ResolveActive checks access before looking the organization up, so an
// unknown id and a foreign one both answer permission denied
func (s *organizationService) ResolveActive(ctx context.Context, userID, organizationID string) (*organization.Organization, error) {
	if _, err := s.authorize(ctx, userID, organizationID); err != nil {
		return nil, err
	}
	org, err := s.getOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if !org.IsActive {
		return nil, ierr.NewError("organization is inactive").
			WithHint("This organization is inactive").
			Mark(ierr.ErrPermissionDenied)
	}
	return org, nil
}
