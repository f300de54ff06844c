package product

import "github.com/pointsclub/clubadmin/internal/schema"

var (
	Schema = schema.New("product",
		schema.Key(schema.FieldID, schema.OptionalString()),
		schema.Key("organization_id", schema.RequiredString("Organization is required")),
		schema.Key("name", schema.RequiredString("Name is required")),
		schema.Key("description", schema.NullableText()),
		schema.Key("points_cost", schema.Int("Points cost is required", 0)),
		schema.Key("price", schema.OptionalDecimal("Price must be a positive amount")),
		schema.Key("image_url", schema.NullableText()),
		schema.Key("stock", schema.OptionalInt(0)),
		schema.Key("is_active", schema.Bool(true)),
		schema.Key("is_featured", schema.OptionalBool()),
	)

	EditSchema = Schema.RequireID("Product id is required")
)
