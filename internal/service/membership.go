package service

import (
	"context"
	"time"

	"github.com/pointsclub/clubadmin/internal/action"
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/domain/membership"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
)

type MembershipService interface {
	CreateMembership(ctx context.Context, organizationID string, in schema.Input) (*action.State[membership.Membership], error)
	GetMembership(ctx context.Context, organizationID, id string) (*membership.Membership, error)
	UpdateMembership(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[membership.Membership], error)
	ListMemberships(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*membership.Membership], error)
}

type membershipService struct {
	ServiceParams
}

func NewMembershipService(params ServiceParams) MembershipService {
	return &membershipService{ServiceParams: params}
}

func (s *membershipService) CreateMembership(ctx context.Context, organizationID string, in schema.Input) (*action.State[membership.Membership], error) {
	m, err := schema.Decode[membership.Membership](membership.Schema, in.With("organization_id", organizationID))
	if err != nil {
		return writeResult[membership.Membership](ctx, s.ServiceParams, "create_membership", nil, err)
	}

	m.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MEMBERSHIP)
	m.BaseModel = domain.NewBaseModel(time.Now())

	err = s.MembershipRepo.Create(ctx, m)
	return writeResult(ctx, s.ServiceParams, "create_membership", m, err)
}

func (s *membershipService) GetMembership(ctx context.Context, organizationID, id string) (*membership.Membership, error) {
	return s.MembershipRepo.Get(ctx, organizationID, id)
}

func (s *membershipService) UpdateMembership(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[membership.Membership], error) {
	m, err := s.MembershipRepo.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	in = in.With(schema.FieldID, id).With("organization_id", organizationID)
	if err := schema.DecodeInto(membership.EditSchema, in, m); err != nil {
		return writeResult[membership.Membership](ctx, s.ServiceParams, "update_membership", nil, err)
	}
	m.Touch(time.Now())

	err = s.MembershipRepo.Update(ctx, m)
	return writeResult(ctx, s.ServiceParams, "update_membership", m, err)
}

func (s *membershipService) ListMemberships(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*membership.Membership], error) {
	filter, err := validateFilter(filter)
	if err != nil {
		return nil, err
	}

	page, err := fetchPage(ctx, organizationID, filter, s.MembershipRepo.List, s.MembershipRepo.Count)
	if err != nil {
		s.Logger.Errorw("failed to list memberships", "error", err, "organization_id", organizationID)
		return nil, err
	}
	return page, nil
}
