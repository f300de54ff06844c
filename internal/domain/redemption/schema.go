package redemption

import (
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
)

var (
	Schema = schema.New("redemption",
		schema.Key(schema.FieldID, schema.OptionalString()),
		schema.Key("organization_id", schema.RequiredString("Organization is required")),
		schema.Key("beneficiary_id", schema.RequiredString("Beneficiary is required")),
		schema.Key("product_id", schema.RequiredString("Product is required")),
		schema.Key("branch_id", schema.NullableText()),
		schema.Key("points", schema.Int("Points are required", 0)),
		schema.Key("status", schema.EnumDefault(
			string(types.RedemptionStatusPending),
			"Status must be pending, completed or cancelled",
			types.RedemptionStatusValues()...,
		)),
		schema.Key("notes", schema.NullableText()),
	)

	EditSchema = Schema.RequireID("Redemption id is required")
)
