package organization

import "github.com/pointsclub/clubadmin/internal/schema"

var (
	Schema = schema.New("organization",
		schema.Key(schema.FieldID, schema.OptionalString()),
		schema.Key("name", schema.RequiredString("Name is required")),
		schema.Key("slug", schema.OptionalString()),
		schema.Key("description", schema.NullableText()),
		schema.Key("logo_url", schema.NullableText()),
		schema.Key("settings", schema.JSON("Settings must be a JSON object")),
		schema.Key("is_active", schema.Bool(true)),
	)

	EditSchema = Schema.RequireID("Organization id is required")
)
