package appuser

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/types"
)

type Repository interface {
	Create(ctx context.Context, user *AppUser) error
	Get(ctx context.Context, id string) (*AppUser, error)
	GetByEmail(ctx context.Context, email string) (*AppUser, error)
	Update(ctx context.Context, user *AppUser) error
	// List returns app users holding a membership in organizationID, or every
	// app user when organizationID is empty
	List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*AppUser, error)
	Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error)
}
