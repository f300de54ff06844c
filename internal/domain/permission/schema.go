package permission

import (
	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
)

var (
	Schema = schema.New("permission",
		schema.Key(schema.FieldID, schema.OptionalString()),
		schema.Key("user_id", schema.RequiredString("User is required")),
		schema.Key("organization_id", schema.RequiredString("Organization is required")),
		schema.Key("role", schema.Enum("Role must be owner, admin or staff", types.RoleValues()...)),
		schema.Key("is_active", schema.Bool(true)),
	)

	EditSchema = Schema.RequireID("Permission id is required")
)
