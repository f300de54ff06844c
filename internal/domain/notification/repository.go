package notification

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/types"
)

type Repository interface {
	Create(ctx context.Context, n *PushNotification) error
	Get(ctx context.Context, organizationID, id string) (*PushNotification, error)
	Update(ctx context.Context, n *PushNotification) error
	List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*PushNotification, error)
	Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error)
}

// RecipientRepository is scoped by notification; callers check the
// notification belongs to the active organization first
type RecipientRepository interface {
	Create(ctx context.Context, r *Recipient) error
	Get(ctx context.Context, notificationID, id string) (*Recipient, error)
	Update(ctx context.Context, r *Recipient) error
	List(ctx context.Context, notificationID string, filter *types.QueryFilter) ([]*Recipient, error)
	Count(ctx context.Context, notificationID string, filter *types.QueryFilter) (int, error)
}
