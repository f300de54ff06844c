package permission

import (
	"testing"

	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaRoles(t *testing.T) {
	base := schema.Input{"user_id": "user_1", "organization_id": "o1"}

	for _, role := range types.RoleValues() {
		p, err := schema.Decode[Permission](Schema, base.With("role", role))
		require.NoError(t, err, role)
		assert.Equal(t, types.Role(role), p.Role)
		assert.True(t, p.IsActive)
	}

	for _, role := range []any{"superuser", "", nil} {
		_, err := Schema.Parse(base.With("role", role))
		verr, ok := schema.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, []schema.FieldError{{Field: "role", Message: "Role must be owner, admin or staff"}}, verr.Errors)
	}
}
