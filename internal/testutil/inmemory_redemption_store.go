package testutil

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/redemption"
	"github.com/pointsclub/clubadmin/internal/types"
)

type InMemoryRedemptionStore struct {
	*InMemoryStore[*redemption.Redemption]
}

func NewInMemoryRedemptionStore() *InMemoryRedemptionStore {
	return &InMemoryRedemptionStore{
		InMemoryStore: NewInMemoryStore("redemption", func(x *redemption.Redemption) *redemption.Redemption {
			c := *x
			return &c
		}),
	}
}

func (s *InMemoryRedemptionStore) Create(ctx context.Context, x *redemption.Redemption) error {
	return s.InMemoryStore.Create(ctx, x.ID, x)
}

func (s *InMemoryRedemptionStore) Get(ctx context.Context, organizationID, id string) (*redemption.Redemption, error) {
	x, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if x.OrganizationID != organizationID {
		return nil, s.notFound(id)
	}
	return x, nil
}

func (s *InMemoryRedemptionStore) Update(ctx context.Context, x *redemption.Redemption) error {
	if _, err := s.Get(ctx, x.OrganizationID, x.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, x.ID, x)
}

func (s *InMemoryRedemptionStore) inOrganization(organizationID string, filter *types.QueryFilter) FilterFunc[*redemption.Redemption] {
	return func(x *redemption.Redemption) bool {
		return x.OrganizationID == organizationID
	}
}

func (s *InMemoryRedemptionStore) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*redemption.Redemption, error) {
	return s.InMemoryStore.List(ctx, filter, s.inOrganization(organizationID, filter), func(i, j *redemption.Redemption) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
}

func (s *InMemoryRedemptionStore) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, s.inOrganization(organizationID, filter))
}

func (s *InMemoryRedemptionStore) GetByCode(ctx context.Context, organizationID, code string) (*redemption.Redemption, error) {
	return s.Find(ctx, func(r *redemption.Redemption) bool {
		return r.OrganizationID == organizationID && r.Code == code
	})
}
