package branch

import "github.com/pointsclub/clubadmin/internal/schema"

var (
	Schema = schema.New("branch",
		schema.Key(schema.FieldID, schema.OptionalString()),
		schema.Key("organization_id", schema.RequiredString("Organization is required")),
		schema.Key("name", schema.RequiredString("Name is required")),
		schema.Key("address", schema.NullableText()),
		schema.Key("phone", schema.NullableText()),
		schema.Key("is_active", schema.Bool(true)),
	)

	EditSchema = Schema.RequireID("Branch id is required")
)
