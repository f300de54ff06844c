package redemption

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/types"
)

type Repository interface {
	Create(ctx context.Context, r *Redemption) error
	Get(ctx context.Context, organizationID, id string) (*Redemption, error)
	GetByCode(ctx context.Context, organizationID, code string) (*Redemption, error)
	Update(ctx context.Context, r *Redemption) error
	List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*Redemption, error)
	Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error)
}
