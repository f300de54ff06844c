package types

import (
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/samber/lo"
)

type PushNotificationStatus string

const (
	PushNotificationStatusDraft     PushNotificationStatus = "draft"
	PushNotificationStatusScheduled PushNotificationStatus = "scheduled"
	PushNotificationStatusSent      PushNotificationStatus = "sent"
)

func PushNotificationStatusValues() []string {
	return []string{
		string(PushNotificationStatusDraft),
		string(PushNotificationStatusScheduled),
		string(PushNotificationStatusSent),
	}
}

func (s PushNotificationStatus) String() string {
	return string(s)
}

func (s PushNotificationStatus) Validate() error {
	if !lo.Contains(PushNotificationStatusValues(), string(s)) {
		return ierr.NewError("invalid push notification status").
			WithHint("Please provide a valid notification status").
			WithReportableDetails(map[string]any{
				"allowed": PushNotificationStatusValues(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// RecipientStatus tracks delivery of a notification to one app user
type RecipientStatus string

const (
	RecipientStatusPending RecipientStatus = "pending"
	RecipientStatusSent    RecipientStatus = "sent"
	RecipientStatusFailed  RecipientStatus = "failed"
	RecipientStatusRead    RecipientStatus = "read"
)

func RecipientStatusValues() []string {
	return []string{
		string(RecipientStatusPending),
		string(RecipientStatusSent),
		string(RecipientStatusFailed),
		string(RecipientStatusRead),
	}
}

func (s RecipientStatus) String() string {
	return string(s)
}

func (s RecipientStatus) Validate() error {
	if !lo.Contains(RecipientStatusValues(), string(s)) {
		return ierr.NewError("invalid recipient status").
			WithHint("Please provide a valid recipient status").
			WithReportableDetails(map[string]any{
				"allowed": RecipientStatusValues(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
