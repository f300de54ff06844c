package membership

import "github.com/pointsclub/clubadmin/internal/schema"

var (
	Schema = schema.New("membership",
		schema.Key(schema.FieldID, schema.OptionalString()),
		schema.Key("app_user_id", schema.RequiredString("User is required")),
		schema.Key("organization_id", schema.RequiredString("Organization is required")),
		schema.Key("points_balance", schema.OptionalInt(0)),
		schema.Key("is_active", schema.Bool(true)),
	)

	EditSchema = Schema.RequireID("Membership id is required")
)
