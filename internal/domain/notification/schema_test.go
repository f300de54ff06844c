package notification

import (
	"testing"
	"time"

	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	n, err := schema.Decode[PushNotification](Schema, schema.Input{
		"organization_id": "o1",
		"title":           "Double points",
		"body":            "All weekend long",
		"data":            map[string]any{"screen": "rewards"},
	})
	require.NoError(t, err)

	assert.Equal(t, types.PushNotificationStatusDraft, n.Status)
	assert.Equal(t, types.Metadata{"screen": "rewards"}, n.Data)
	assert.Nil(t, n.ScheduledAt)
}

func TestSchemaScheduledNeedsDate(t *testing.T) {
	in := schema.Input{
		"organization_id": "o1",
		"title":           "Double points",
		"body":            "All weekend long",
		"status":          "scheduled",
	}

	_, err := Schema.Parse(in)
	verr, ok := schema.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []schema.FieldError{{Field: "scheduled_at", Message: "Scheduled notifications need a date"}}, verr.Errors)

	n, err := schema.Decode[PushNotification](Schema, in.With("scheduled_at", "2026-11-01T10:00"))
	require.NoError(t, err)
	require.NotNil(t, n.ScheduledAt)
	assert.True(t, time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC).Equal(*n.ScheduledAt))
}

func TestRecipientSchemaStatus(t *testing.T) {
	base := schema.Input{"push_notification_id": "push_1", "app_user_id": "appuser_1"}

	for _, status := range types.RecipientStatusValues() {
		_, err := RecipientSchema.Parse(base.With("status", status))
		assert.NoError(t, err, status)
	}

	_, err := RecipientSchema.Parse(base.With("status", "archived"))
	verr, ok := schema.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []schema.FieldError{{Field: "status", Message: "Status must be pending, sent, failed or read"}}, verr.Errors)

	r, err := schema.Decode[Recipient](RecipientSchema, base)
	require.NoError(t, err)
	assert.Equal(t, types.RecipientStatusPending, r.Status)
}

func TestRecipientStatusSchemaRequiresStatus(t *testing.T) {
	_, err := RecipientStatusSchema.Parse(schema.Input{})
	assert.Error(t, err)
}

func TestMarkStatus(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	r := &Recipient{Status: types.RecipientStatusSent}

	r.MarkStatus(types.RecipientStatusRead, now)
	require.NotNil(t, r.ReadAt)
	assert.Equal(t, now, *r.ReadAt)

	r.MarkStatus(types.RecipientStatusRead, now.Add(time.Hour))
	assert.Equal(t, now, *r.ReadAt, "read_at is stamped once")
}
