package permission

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/types"
)

type Repository interface {
	Create(ctx context.Context, p *Permission) error
	Get(ctx context.Context, organizationID, id string) (*Permission, error)
	// GetByUserAndOrganization returns the active permission userID holds on
	// organizationID
	GetByUserAndOrganization(ctx context.Context, userID, organizationID string) (*Permission, error)
	Update(ctx context.Context, p *Permission) error
	List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*Permission, error)
	Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error)
}
