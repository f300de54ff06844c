package testutil

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/notification"
	"github.com/pointsclub/clubadmin/internal/types"
)

type InMemoryPushNotificationStore struct {
	*InMemoryStore[*notification.PushNotification]
}

func NewInMemoryPushNotificationStore() *InMemoryPushNotificationStore {
	return &InMemoryPushNotificationStore{
		InMemoryStore: NewInMemoryStore("notification", func(x *notification.PushNotification) *notification.PushNotification {
			c := *x
			return &c
		}),
	}
}

func (s *InMemoryPushNotificationStore) Create(ctx context.Context, x *notification.PushNotification) error {
	return s.InMemoryStore.Create(ctx, x.ID, x)
}

func (s *InMemoryPushNotificationStore) Get(ctx context.Context, organizationID, id string) (*notification.PushNotification, error) {
	x, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if x.OrganizationID != organizationID {
		return nil, s.notFound(id)
	}
	return x, nil
}

func (s *InMemoryPushNotificationStore) Update(ctx context.Context, x *notification.PushNotification) error {
	if _, err := s.Get(ctx, x.OrganizationID, x.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, x.ID, x)
}

func (s *InMemoryPushNotificationStore) inOrganization(organizationID string, filter *types.QueryFilter) FilterFunc[*notification.PushNotification] {
	return func(x *notification.PushNotification) bool {
		return x.OrganizationID == organizationID
	}
}

func (s *InMemoryPushNotificationStore) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*notification.PushNotification, error) {
	return s.InMemoryStore.List(ctx, filter, s.inOrganization(organizationID, filter), func(i, j *notification.PushNotification) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
}

func (s *InMemoryPushNotificationStore) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, s.inOrganization(organizationID, filter))
}
