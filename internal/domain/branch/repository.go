package branch

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/types"
)

type Repository interface {
	Create(ctx context.Context, b *Branch) error
	Get(ctx context.Context, organizationID, id string) (*Branch, error)
	Update(ctx context.Context, b *Branch) error
	List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*Branch, error)
	Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error)
}
