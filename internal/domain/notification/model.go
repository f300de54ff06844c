package notification

import (
	"time"

	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/types"
)

// PushNotification is a message an organization sends to its members' devices
type PushNotification struct {
	ID             string                       `db:"id" json:"id"`
	OrganizationID string                       `db:"organization_id" json:"organization_id"`
	Title          string                       `db:"title" json:"title"`
	Body           string                       `db:"body" json:"body"`
	Data           types.Metadata               `db:"data" json:"data"`
	Status         types.PushNotificationStatus `db:"status" json:"status"`
	ScheduledAt    *time.Time                   `db:"scheduled_at" json:"scheduled_at"`

	domain.BaseModel
}

// Recipient tracks delivery of one notification to one app user
type Recipient struct {
	ID                 string                `db:"id" json:"id"`
	PushNotificationID string                `db:"push_notification_id" json:"push_notification_id"`
	AppUserID          string                `db:"app_user_id" json:"app_user_id"`
	Status             types.RecipientStatus `db:"status" json:"status"`
	ReadAt             *time.Time            `db:"read_at" json:"read_at"`

	domain.BaseModel
}

// MarkStatus moves the recipient to status, stamping ReadAt the first time
// it becomes read
func (r *Recipient) MarkStatus(status types.RecipientStatus, now time.Time) {
	r.Status = status
	if status == types.RecipientStatusRead && r.ReadAt == nil {
		readAt := now.UTC()
		r.ReadAt = &readAt
	}
}
