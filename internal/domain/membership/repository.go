package membership

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/types"
)

type Repository interface {
	Create(ctx context.Context, m *Membership) error
	Get(ctx context.Context, organizationID, id string) (*Membership, error)
	Update(ctx context.Context, m *Membership) error
	List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*Membership, error)
	Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error)
	// DebitPoints takes points from an active membership's balance in one
	// step. It fails with ErrInvalidOperation when the balance is too low.
	DebitPoints(ctx context.Context, organizationID, id string, points int64) error
}
