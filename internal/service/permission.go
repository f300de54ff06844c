package service

import (
	"context"
	"time"

	"github.com/pointsclub/clubadmin/internal/action"
	"github.com/pointsclub/clubadmin/internal/cache"
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/domain/permission"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
)

type PermissionService interface {
	CreatePermission(ctx context.Context, organizationID string, in schema.Input) (*action.State[permission.Permission], error)
	GetPermission(ctx context.Context, organizationID, id string) (*permission.Permission, error)
	UpdatePermission(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[permission.Permission], error)
	ListPermissions(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*permission.Permission], error)
}

type permissionService struct {
	ServiceParams
}

func NewPermissionService(params ServiceParams) PermissionService {
	return &permissionService{ServiceParams: params}
}

func (s *permissionService) CreatePermission(ctx context.Context, organizationID string, in schema.Input) (*action.State[permission.Permission], error) {
	p, err := schema.Decode[permission.Permission](permission.Schema, in.With("organization_id", organizationID))
	if err != nil {
		return writeResult[permission.Permission](ctx, s.ServiceParams, "create_permission", nil, err)
	}

	p.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PERMISSION)
	p.BaseModel = domain.NewBaseModel(time.Now())

	err = s.PermissionRepo.Create(ctx, p)
	return writeResult(ctx, s.ServiceParams, "create_permission", p, err)
}

func (s *permissionService) GetPermission(ctx context.Context, organizationID, id string) (*permission.Permission, error) {
	return s.PermissionRepo.Get(ctx, organizationID, id)
}

func (s *permissionService) UpdatePermission(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[permission.Permission], error) {
	p, err := s.PermissionRepo.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	previousUser := p.UserID

	in = in.With(schema.FieldID, id).With("organization_id", organizationID)
	if err := schema.DecodeInto(permission.EditSchema, in, p); err != nil {
		return writeResult[permission.Permission](ctx, s.ServiceParams, "update_permission", nil, err)
	}
	p.Touch(time.Now())

	if err := s.PermissionRepo.Update(ctx, p); err != nil {
		return writeResult[permission.Permission](ctx, s.ServiceParams, "update_permission", nil, err)
	}

	// revoked or reassigned access must not survive in the session cache
	s.Cache.Delete(ctx, cache.PermissionKey(organizationID, previousUser))
	s.Cache.Delete(ctx, cache.PermissionKey(organizationID, p.UserID))
	return action.Ok(p), nil
}

func (s *permissionService) ListPermissions(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*permission.Permission], error) {
	filter, err := validateFilter(filter)
	if err != nil {
		return nil, err
	}

	page, err := fetchPage(ctx, organizationID, filter, s.PermissionRepo.List, s.PermissionRepo.Count)
	if err != nil {
		s.Logger.Errorw("failed to list permissions", "error", err, "organization_id", organizationID)
		return nil, err
	}
	return page, nil
}
