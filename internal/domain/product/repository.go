package product

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/types"
)

type Repository interface {
	Create(ctx context.Context, p *Product) error
	Get(ctx context.Context, organizationID, id string) (*Product, error)
	Update(ctx context.Context, p *Product) error
	List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*Product, error)
	Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error)
	// DecrementStock takes n units from a product with limited stock. It fails
	// with ErrInvalidOperation when fewer than n are left.
	DecrementStock(ctx context.Context, organizationID, id string, n int64) error
}
