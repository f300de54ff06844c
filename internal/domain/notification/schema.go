package notification

import (
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
)

var (
	Schema = schema.New("push_notification",
		schema.Key(schema.FieldID, schema.OptionalString()),
		schema.Key("organization_id", schema.RequiredString("Organization is required")),
		schema.Key("title", schema.RequiredString("Title is required")),
		schema.Key("body", schema.RequiredString("Body is required")),
		schema.Key("data", schema.JSON("Data must be a JSON object")),
		schema.Key("status", schema.EnumDefault(
			string(types.PushNotificationStatusDraft),
			"Status must be draft, scheduled or sent",
			types.PushNotificationStatusValues()...,
		)),
		schema.Key("scheduled_at", schema.OptionalTime("Scheduled date is not valid")),
	).WithCheck(scheduledNeedsDate)

	EditSchema = Schema.RequireID("Notification id is required")

	RecipientSchema = schema.New("notification_recipient",
		schema.Key(schema.FieldID, schema.OptionalString()),
		schema.Key("push_notification_id", schema.RequiredString("Notification is required")),
		schema.Key("app_user_id", schema.RequiredString("User is required")),
		schema.Key("status", schema.EnumDefault(
			string(types.RecipientStatusPending),
			"Status must be pending, sent, failed or read",
			types.RecipientStatusValues()...,
		)),
		schema.Key("read_at", schema.OptionalTime("Read date is not valid")),
	)

	// RecipientStatusSchema validates a status change on an existing recipient
	RecipientStatusSchema = schema.New("notification_recipient_status",
		schema.Key("status", schema.Enum(
			"Status must be pending, sent, failed or read",
			types.RecipientStatusValues()...,
		)),
	)
)

func scheduledNeedsDate(rec schema.Record) []schema.FieldError {
	if rec["status"] != string(types.PushNotificationStatusScheduled) {
		return nil
	}
	if _, ok := rec["scheduled_at"]; ok {
		return nil
	}
	return []schema.FieldError{{Field: "scheduled_at", Message: "Scheduled notifications need a date"}}
}
