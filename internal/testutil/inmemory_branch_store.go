package testutil

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/branch"
	"github.com/pointsclub/clubadmin/internal/types"
)

type InMemoryBranchStore struct {
	*InMemoryStore[*branch.Branch]
}

func NewInMemoryBranchStore() *InMemoryBranchStore {
	return &InMemoryBranchStore{
		InMemoryStore: NewInMemoryStore("branch", func(x *branch.Branch) *branch.Branch {
			c := *x
			return &c
		}),
	}
}

func (s *InMemoryBranchStore) Create(ctx context.Context, x *branch.Branch) error {
	return s.InMemoryStore.Create(ctx, x.ID, x)
}

func (s *InMemoryBranchStore) Get(ctx context.Context, organizationID, id string) (*branch.Branch, error) {
	x, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if x.OrganizationID != organizationID {
		return nil, s.notFound(id)
	}
	return x, nil
}

func (s *InMemoryBranchStore) Update(ctx context.Context, x *branch.Branch) error {
	if _, err := s.Get(ctx, x.OrganizationID, x.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, x.ID, x)
}

func (s *InMemoryBranchStore) inOrganization(organizationID string, filter *types.QueryFilter) FilterFunc[*branch.Branch] {
	return func(x *branch.Branch) bool {
		return x.OrganizationID == organizationID && matchesActive(filter, x.IsActive)
	}
}

func (s *InMemoryBranchStore) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*branch.Branch, error) {
	return s.InMemoryStore.List(ctx, filter, s.inOrganization(organizationID, filter), func(i, j *branch.Branch) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
}

func (s *InMemoryBranchStore) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, s.inOrganization(organizationID, filter))
}
