package testutil

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/notification"
	"github.com/pointsclub/clubadmin/internal/types"
)

type InMemoryRecipientStore struct {
	*InMemoryStore[*notification.Recipient]
}

func NewInMemoryRecipientStore() *InMemoryRecipientStore {
	return &InMemoryRecipientStore{
		InMemoryStore: NewInMemoryStore("recipient", func(r *notification.Recipient) *notification.Recipient {
			c := *r
			return &c
		}),
	}
}

func (s *InMemoryRecipientStore) Create(ctx context.Context, r *notification.Recipient) error {
	if _, err := s.Find(ctx, func(o *notification.Recipient) bool {
		return o.PushNotificationID == r.PushNotificationID && o.AppUserID == r.AppUserID
	}); err == nil {
		return alreadyExists("recipient")
	}
	return s.InMemoryStore.Create(ctx, r.ID, r)
}

func (s *InMemoryRecipientStore) Get(ctx context.Context, notificationID, id string) (*notification.Recipient, error) {
	r, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.PushNotificationID != notificationID {
		return nil, s.notFound(id)
	}
	return r, nil
}

func (s *InMemoryRecipientStore) Update(ctx context.Context, r *notification.Recipient) error {
	if _, err := s.Get(ctx, r.PushNotificationID, r.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, r.ID, r)
}

func (s *InMemoryRecipientStore) List(ctx context.Context, notificationID string, filter *types.QueryFilter) ([]*notification.Recipient, error) {
	return s.InMemoryStore.List(ctx, filter, func(r *notification.Recipient) bool {
		return r.PushNotificationID == notificationID
	}, func(i, j *notification.Recipient) bool {
		return i.CreatedAt.After(j.CreatedAt)
	})
}

func (s *InMemoryRecipientStore) Count(ctx context.Context, notificationID string, filter *types.QueryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, func(r *notification.Recipient) bool {
		return r.PushNotificationID == notificationID
	})
}
