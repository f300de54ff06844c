package testutil

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/membership"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/types"
)

type InMemoryMembershipStore struct {
	*InMemoryStore[*membership.Membership]
}

func NewInMemoryMembershipStore() *InMemoryMembershipStore {
	return &InMemoryMembershipStore{
		InMemoryStore: NewInMemoryStore("membership", func(x *membership.Membership) *membership.Membership {
			c := *x
			return &c
		}),
	}
}

func (s *InMemoryMembershipStore) Create(ctx context.Context, x *membership.Membership) error {
	if _, err := s.Find(ctx, func(m *membership.Membership) bool {
		return m.OrganizationID == x.OrganizationID && m.AppUserID == x.AppUserID
	}); err == nil {
		return alreadyExists("membership")
	}
	return s.InMemoryStore.Create(ctx, x.ID, x)
}

func (s *InMemoryMembershipStore) Get(ctx context.Context, organizationID, id string) (*membership.Membership, error) {
	x, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if x.OrganizationID != organizationID {
		return nil, s.notFound(id)
	}
	return x, nil
}

func (s *InMemoryMembershipStore) Update(ctx context.Context, x *membership.Membership) error {
	if _, err := s.Get(ctx, x.OrganizationID, x.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, x.ID, x)
}

func (s *InMemoryMembershipStore) DebitPoints(ctx context.Context, organizationID, id string, points int64) error {
	return s.Apply(ctx, id, func(m *membership.Membership) (*membership.Membership, error) {
		if m.OrganizationID != organizationID {
			return nil, s.notFound(id)
		}
		if !m.IsActive || m.PointsBalance < points {
			return nil, ierr.NewErrorf("cannot debit %d points", points).
				WithHint("The member does not have enough points").
				Mark(ierr.ErrInvalidOperation)
		}
		m.PointsBalance -= points
		return m, nil
	})
}

func (s *InMemoryMembershipStore) inOrganization(organizationID string, filter *types.QueryFilter) FilterFunc[*membership.Membership] {
	return func(x *membership.Membership) bool {
		return x.OrganizationID == organizationID && matchesActive(filter, x.IsActive)
	}
}

func (s *InMemoryMembershipStore) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*membership.Membership, error) {
	return s.InMemoryStore.List(ctx, filter, s.inOrganization(organizationID, filter), func(i, j *membership.Membership) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
}

func (s *InMemoryMembershipStore) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, s.inOrganization(organizationID, filter))
}
