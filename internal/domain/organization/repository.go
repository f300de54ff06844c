package organization

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/types"
)

type Repository interface {
	Create(ctx context.Context, org *Organization) error
	Get(ctx context.Context, id string) (*Organization, error)
	Update(ctx context.Context, org *Organization) error
	// ListByUser returns the organizations userID holds an active permission on
	ListByUser(ctx context.Context, userID string, filter *types.QueryFilter) ([]*Organization, error)
	CountByUser(ctx context.Context, userID string, filter *types.QueryFilter) (int, error)
}
