package appuser

import "github.com/pointsclub/clubadmin/internal/schema"

var (
	Schema = schema.New("app_user",
		schema.Key(schema.FieldID, schema.OptionalString()),
		schema.Key("full_name", schema.RequiredString("Full name is required")),
		schema.Key("email", schema.Email("Email is required", "Email is not valid")),
		schema.Key("phone", schema.NullableText()),
		schema.Key("is_active", schema.Bool(true)),
	)

	EditSchema = Schema.RequireID("User id is required")
)
