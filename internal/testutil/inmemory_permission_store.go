package testutil

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/permission"
	"github.com/pointsclub/clubadmin/internal/types"
)

type InMemoryPermissionStore struct {
	*InMemoryStore[*permission.Permission]
}

func NewInMemoryPermissionStore() *InMemoryPermissionStore {
	return &InMemoryPermissionStore{
		InMemoryStore: NewInMemoryStore("permission", func(p *permission.Permission) *permission.Permission {
			c := *p
			return &c
		}),
	}
}

func (s *InMemoryPermissionStore) Create(ctx context.Context, p *permission.Permission) error {
	if _, err := s.Find(ctx, func(o *permission.Permission) bool {
		return o.UserID == p.UserID && o.OrganizationID == p.OrganizationID
	}); err == nil {
		return alreadyExists("permission")
	}
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPermissionStore) Get(ctx context.Context, organizationID, id string) (*permission.Permission, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OrganizationID != organizationID {
		return nil, s.notFound(id)
	}
	return p, nil
}

func (s *InMemoryPermissionStore) GetByUserAndOrganization(ctx context.Context, userID, organizationID string) (*permission.Permission, error) {
	return s.Find(ctx, func(p *permission.Permission) bool {
		return p.UserID == userID && p.OrganizationID == organizationID && p.IsActive
	})
}

func (s *InMemoryPermissionStore) Update(ctx context.Context, p *permission.Permission) error {
	if _, err := s.Get(ctx, p.OrganizationID, p.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

func (s *InMemoryPermissionStore) inOrganization(organizationID string, filter *types.QueryFilter) FilterFunc[*permission.Permission] {
	return func(p *permission.Permission) bool {
		return p.OrganizationID == organizationID && matchesActive(filter, p.IsActive)
	}
}

func (s *InMemoryPermissionStore) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*permission.Permission, error) {
	return s.InMemoryStore.List(ctx, filter, s.inOrganization(organizationID, filter), func(i, j *permission.Permission) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
}

func (s *InMemoryPermissionStore) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, s.inOrganization(organizationID, filter))
}
