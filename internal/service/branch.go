package service

import (
	"context"
	"time"

	"github.com/pointsclub/clubadmin/internal/action"
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/domain/branch"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
)

type BranchService interface {
	CreateBranch(ctx context.Context, organizationID string, in schema.Input) (*action.State[branch.Branch], error)
	GetBranch(ctx context.Context, organizationID, id string) (*branch.Branch, error)
	UpdateBranch(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[branch.Branch], error)
	ListBranches(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*branch.Branch], error)
}

type branchService struct {
	ServiceParams
}

func NewBranchService(params ServiceParams) BranchService {
	return &branchService{ServiceParams: params}
}

func (s *branchService) CreateBranch(ctx context.Context, organizationID string, in schema.Input) (*action.State[branch.Branch], error) {
	b, err := schema.Decode[branch.Branch](branch.Schema, in.With("organization_id", organizationID))
	if err != nil {
		return writeResult[branch.Branch](ctx, s.ServiceParams, "create_branch", nil, err)
	}

	b.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BRANCH)
	b.BaseModel = domain.NewBaseModel(time.Now())

	err = s.BranchRepo.Create(ctx, b)
	return writeResult(ctx, s.ServiceParams, "create_branch", b, err)
}

func (s *branchService) GetBranch(ctx context.Context, organizationID, id string) (*branch.Branch, error) {
	return s.BranchRepo.Get(ctx, organizationID, id)
}

func (s *branchService) UpdateBranch(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[branch.Branch], error) {
	b, err := s.BranchRepo.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	in = in.With(schema.FieldID, id).With("organization_id", organizationID)
	if err := schema.DecodeInto(branch.EditSchema, in, b); err != nil {
		return writeResult[branch.Branch](ctx, s.ServiceParams, "update_branch", nil, err)
	}
	b.Touch(time.Now())

	err = s.BranchRepo.Update(ctx, b)
	return writeResult(ctx, s.ServiceParams, "update_branch", b, err)
}

func (s *branchService) ListBranches(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*branch.Branch], error) {
	filter, err := validateFilter(filter)
	if err != nil {
		return nil, err
	}

	page, err := fetchPage(ctx, organizationID, filter, s.BranchRepo.List, s.BranchRepo.Count)
	if err != nil {
		s.Logger.Errorw("failed to list branches", "error", err, "organization_id", organizationID)
		return nil, err
	}
	return page, nil
}
