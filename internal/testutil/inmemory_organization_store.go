package testutil

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/organization"
	"github.com/pointsclub/clubadmin/internal/domain/permission"
	"github.com/pointsclub/clubadmin/internal/types"
)

// InMemoryOrganizationStore lists organizations through the permissions held
// in the companion permission store
type InMemoryOrganizationStore struct {
	*InMemoryStore[*organization.Organization]
	permissions *InMemoryPermissionStore
}

func NewInMemoryOrganizationStore(permissions *InMemoryPermissionStore) *InMemoryOrganizationStore {
	return &InMemoryOrganizationStore{
		InMemoryStore: NewInMemoryStore("organization", func(o *organization.Organization) *organization.Organization {
			c := *o
			return &c
		}),
		permissions: permissions,
	}
}

func (s *InMemoryOrganizationStore) Create(ctx context.Context, org *organization.Organization) error {
	if _, err := s.Find(ctx, func(o *organization.Organization) bool { return o.Slug == org.Slug }); err == nil {
		return alreadyExists("organization")
	}
	return s.InMemoryStore.Create(ctx, org.ID, org)
}

func (s *InMemoryOrganizationStore) Get(ctx context.Context, id string) (*organization.Organization, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryOrganizationStore) Update(ctx context.Context, org *organization.Organization) error {
	return s.InMemoryStore.Update(ctx, org.ID, org)
}

func (s *InMemoryOrganizationStore) byUser(userID string, filter *types.QueryFilter) FilterFunc[*organization.Organization] {
	return func(o *organization.Organization) bool {
		if !matchesActive(filter, o.IsActive) {
			return false
		}
		_, err := s.permissions.Find(context.Background(), func(p *permission.Permission) bool {
			return p.UserID == userID && p.OrganizationID == o.ID && p.IsActive
		})
		return err == nil
	}
}

func (s *InMemoryOrganizationStore) ListByUser(ctx context.Context, userID string, filter *types.QueryFilter) ([]*organization.Organization, error) {
	return s.InMemoryStore.List(ctx, filter, s.byUser(userID, filter), func(i, j *organization.Organization) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
}

func (s *InMemoryOrganizationStore) CountByUser(ctx context.Context, userID string, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, s.byUser(userID, filter))
}
