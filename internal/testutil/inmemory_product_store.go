package testutil

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/product"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/samber/lo"
)

type InMemoryProductStore struct {
	*InMemoryStore[*product.Product]
}

func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		InMemoryStore: NewInMemoryStore("product", func(x *product.Product) *product.Product {
			c := *x
			return &c
		}),
	}
}

func (s *InMemoryProductStore) Create(ctx context.Context, x *product.Product) error {
	return s.InMemoryStore.Create(ctx, x.ID, x)
}

func (s *InMemoryProductStore) Get(ctx context.Context, organizationID, id string) (*product.Product, error) {
	x, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if x.OrganizationID != organizationID {
		return nil, s.notFound(id)
	}
	return x, nil
}

func (s *InMemoryProductStore) Update(ctx context.Context, x *product.Product) error {
	if _, err := s.Get(ctx, x.OrganizationID, x.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, x.ID, x)
}

func (s *InMemoryProductStore) inOrganization(organizationID string, filter *types.QueryFilter) FilterFunc[*product.Product] {
	return func(x *product.Product) bool {
		return x.OrganizationID == organizationID && matchesActive(filter, x.IsActive)
	}
}

func (s *InMemoryProductStore) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*product.Product, error) {
	return s.InMemoryStore.List(ctx, filter, s.inOrganization(organizationID, filter), func(i, j *product.Product) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
}

func (s *InMemoryProductStore) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, s.inOrganization(organizationID, filter))
}

func (s *InMemoryProductStore) DecrementStock(ctx context.Context, organizationID, id string, n int64) error {
	p, err := s.Get(ctx, organizationID, id)
	if err != nil {
		return err
	}
	if !p.InStock(n) {
		return ierr.NewError("insufficient stock").
			WithHint("The product is out of stock").
			Mark(ierr.ErrInvalidOperation)
	}
	if p.Stock != nil {
		p.Stock = lo.ToPtr(*p.Stock - n)
	}
	return s.InMemoryStore.Update(ctx, p.ID, p)
}
