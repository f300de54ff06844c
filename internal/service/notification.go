package service

import (
	"context"
	"time"

	"github.com/pointsclub/clubadmin/internal/action"
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/domain/notification"
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
)

type NotificationService interface {
	CreateNotification(ctx context.Context, organizationID string, in schema.Input) (*action.State[notification.PushNotification], error)
	GetNotification(ctx context.Context, organizationID, id string) (*notification.PushNotification, error)
	UpdateNotification(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[notification.PushNotification], error)
	ListNotifications(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*notification.PushNotification], error)

	// Recipients are reached through their notification, which must belong
	// to organizationID
	AddRecipient(ctx context.Context, organizationID, notificationID string, in schema.Input) (*action.State[notification.Recipient], error)
	UpdateRecipientStatus(ctx context.Context, organizationID, notificationID, id string, in schema.Input) (*action.State[notification.Recipient], error)
	ListRecipients(ctx context.Context, organizationID, notificationID string, filter *types.QueryFilter) (*types.ListResponse[*notification.Recipient], error)
}

type notificationService struct {
	ServiceParams
}

func NewNotificationService(params ServiceParams) NotificationService {
	return &notificationService{ServiceParams: params}
}

func (s *notificationService) CreateNotification(ctx context.Context, organizationID string, in schema.Input) (*action.State[notification.PushNotification], error) {
	n, err := schema.Decode[notification.PushNotification](notification.Schema, in.With("organization_id", organizationID))
	if err != nil {
		return writeResult[notification.PushNotification](ctx, s.ServiceParams, "create_notification", nil, err)
	}

	n.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PUSH_NOTIFICATION)
	if n.Data == nil {
		n.Data = types.Metadata{}
	}
	n.BaseModel = domain.NewBaseModel(time.Now())

	err = s.NotificationRepo.Create(ctx, n)
	return writeResult(ctx, s.ServiceParams, "create_notification", n, err)
}

func (s *notificationService) GetNotification(ctx context.Context, organizationID, id string) (*notification.PushNotification, error) {
	return s.NotificationRepo.Get(ctx, organizationID, id)
}

func (s *notificationService) UpdateNotification(ctx context.Context, organizationID, id string, in schema.Input) (*action.State[notification.PushNotification], error) {
	n, err := s.NotificationRepo.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	in = in.With(schema.FieldID, id).With("organization_id", organizationID)
	if err := schema.DecodeInto(notification.EditSchema, in, n); err != nil {
		return writeResult[notification.PushNotification](ctx, s.ServiceParams, "update_notification", nil, err)
	}
	if n.Data == nil {
		n.Data = types.Metadata{}
	}
	n.Touch(time.Now())

	err = s.NotificationRepo.Update(ctx, n)
	return writeResult(ctx, s.ServiceParams, "update_notification", n, err)
}

func (s *notificationService) ListNotifications(ctx context.Context, organizationID string, filter *types.QueryFilter) (*types.ListResponse[*notification.PushNotification], error) {
	filter, err := validateFilter(filter)
	if err != nil {
		return nil, err
	}

	page, err := fetchPage(ctx, organizationID, filter, s.NotificationRepo.List, s.NotificationRepo.Count)
	if err != nil {
		s.Logger.Errorw("failed to list notifications", "error", err, "organization_id", organizationID)
		return nil, err
	}
	return page, nil
}

func (s *notificationService) AddRecipient(ctx context.Context, organizationID, notificationID string, in schema.Input) (*action.State[notification.Recipient], error) {
	if _, err := s.NotificationRepo.Get(ctx, organizationID, notificationID); err != nil {
		return nil, err
	}

	r, err := schema.Decode[notification.Recipient](notification.RecipientSchema, in.With("push_notification_id", notificationID))
	if err != nil {
		return writeResult[notification.Recipient](ctx, s.ServiceParams, "add_recipient", nil, err)
	}

	now := time.Now()
	r.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NOTIFICATION_RECIPIENT)
	r.BaseModel = domain.NewBaseModel(now)
	r.MarkStatus(r.Status, now)

	err = s.RecipientRepo.Create(ctx, r)
	return writeResult(ctx, s.ServiceParams, "add_recipient", r, err)
}

type recipientStatus struct {
	Status types.RecipientStatus `json:"status"`
}

func (s *notificationService) UpdateRecipientStatus(ctx context.Context, organizationID, notificationID, id string, in schema.Input) (*action.State[notification.Recipient], error) {
	if _, err := s.NotificationRepo.Get(ctx, organizationID, notificationID); err != nil {
		return nil, err
	}
	r, err := s.RecipientRepo.Get(ctx, notificationID, id)
	if err != nil {
		return nil, err
	}

	change, err := schema.Decode[recipientStatus](notification.RecipientStatusSchema, in)
	if err != nil {
		return writeResult[notification.Recipient](ctx, s.ServiceParams, "update_recipient_status", nil, err)
	}

	now := time.Now()
	r.MarkStatus(change.Status, now)
	r.Touch(now)

	err = s.RecipientRepo.Update(ctx, r)
	return writeResult(ctx, s.ServiceParams, "update_recipient_status", r, err)
}

func (s *notificationService) ListRecipients(ctx context.Context, organizationID, notificationID string, filter *types.QueryFilter) (*types.ListResponse[*notification.Recipient], error) {
	if _, err := s.NotificationRepo.Get(ctx, organizationID, notificationID); err != nil {
		return nil, err
	}
	filter, err := validateFilter(filter)
	if err != nil {
		return nil, err
	}

	page, err := fetchPage(ctx, notificationID, filter, s.RecipientRepo.List, s.RecipientRepo.Count)
	if err != nil {
		s.Logger.Errorw("failed to list recipients", "error", err, "notification_id", notificationID)
		return nil, err
	}
	return page, nil
}
