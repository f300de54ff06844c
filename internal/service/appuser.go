package service

import (
	"context"
	"time"

	"github.com/pointsclub/clubadmin/internal/action"
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/domain/appuser"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
)

// AppUserService manages the members' app accounts. App users are shared
// across organizations; listing is scoped through memberships.
type AppUserService interface {
	CreateAppUser(ctx context.Context, in schema.Input) (*action.State[appuser.AppUser], error)
	GetAppUser(ctx context.Context, id string) (*appuser.AppUser, error)
	UpdateAppUser(ctx context.Context, id string, in schema.Input) (*action.State[appuser.AppUser], error)
	ListAppUsers(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*appuser.AppUser], error)
}

type appUserService struct {
	ServiceParams
}

func NewAppUserService(params ServiceParams) AppUserService {
	return &appUserService{ServiceParams: params}
}

func (s *appUserService) CreateAppUser(ctx context.Context, in schema.Input) (*action.State[appuser.AppUser], error) {
	u, err := schema.Decode[appuser.AppUser](appuser.Schema, in)
	if err != nil {
		return writeResult[appuser.AppUser](ctx, s.ServiceParams, "create_app_user", nil, err)
	}

	u.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_APP_USER)
	u.BaseModel = domain.NewBaseModel(time.Now())

	err = s.AppUserRepo.Create(ctx, u)
	return writeResult(ctx, s.ServiceParams, "create_app_user", u, err)
}

func (s *appUserService) GetAppUser(ctx context.Context, id string) (*appuser.AppUser, error) {
	return s.AppUserRepo.Get(ctx, id)
}

func (s *appUserService) UpdateAppUser(ctx context.Context, id string, in schema.Input) (*action.State[appuser.AppUser], error) {
	u, err := s.AppUserRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := schema.DecodeInto(appuser.EditSchema, in.With(schema.FieldID, id), u); err != nil {
		return writeResult[appuser.AppUser](ctx, s.ServiceParams, "update_app_user", nil, err)
	}
	u.Touch(time.Now())

	err = s.AppUserRepo.Update(ctx, u)
	return writeResult(ctx, s.ServiceParams, "update_app_user", u, err)
}

func (s *appUserService) ListAppUsers(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*appuser.AppUser], error) {
	filter, err := validateFilter(filter)
	if err != nil {
		return nil, err
	}

	page, err := fetchPage(ctx, organizationID, filter, s.AppUserRepo.List, s.AppUserRepo.Count)
	if err != nil {
		s.Logger.Errorw("failed to list app users", "error", err, "organization_id", organizationID)
		return nil, err
	}
	return page, nil
}
