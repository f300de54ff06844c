package testutil

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/appuser"
	"github.com/pointsclub/clubadmin/internal/domain/membership"
	"github.com/pointsclub/clubadmin/internal/types"
)

type InMemoryAppUserStore struct {
	*InMemoryStore[*appuser.AppUser]
	memberships *InMemoryMembershipStore
}

func NewInMemoryAppUserStore(memberships *InMemoryMembershipStore) *InMemoryAppUserStore {
	return &InMemoryAppUserStore{
		InMemoryStore: NewInMemoryStore("app user", func(u *appuser.AppUser) *appuser.AppUser {
			c := *u
			return &c
		}),
		memberships: memberships,
	}
}

func (s *InMemoryAppUserStore) Create(ctx context.Context, u *appuser.AppUser) error {
	if _, err := s.GetByEmail(ctx, u.Email); err == nil {
		return alreadyExists("app user")
	}
	return s.InMemoryStore.Create(ctx, u.ID, u)
}

func (s *InMemoryAppUserStore) Get(ctx context.Context, id string) (*appuser.AppUser, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryAppUserStore) GetByEmail(ctx context.Context, email string) (*appuser.AppUser, error) {
	return s.Find(ctx, func(u *appuser.AppUser) bool { return u.Email == email })
}

func (s *InMemoryAppUserStore) Update(ctx context.Context, u *appuser.AppUser) error {
	return s.InMemoryStore.Update(ctx, u.ID, u)
}

func (s *InMemoryAppUserStore) scope(organizationID string, filter *types.QueryFilter) FilterFunc[*appuser.AppUser] {
	return func(u *appuser.AppUser) bool {
		if !matchesActive(filter, u.IsActive) {
			return false
		}
		if organizationID == "" {
			return true
		}
		_, err := s.memberships.Find(context.Background(), func(m *membership.Membership) bool {
			return m.AppUserID == u.ID && m.OrganizationID == organizationID
		})
		return err == nil
	}
}

func (s *InMemoryAppUserStore) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*appuser.AppUser, error) {
	return s.InMemoryStore.List(ctx, filter, s.scope(organizationID, filter), func(i, j *appuser.AppUser) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
}

func (s *InMemoryAppUserStore) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, s.scope(organizationID, filter))
}
