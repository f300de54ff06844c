package membership

import (
	"testing"

	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaDefaultsActive(t *testing.T) {
	rec, err := Schema.Parse(schema.Input{"app_user_id": "u1", "organization_id": "o1"})
	require.NoError(t, err)

	assert.Equal(t, true, rec["is_active"])
	assert.Equal(t, "u1", rec["app_user_id"])
	assert.Equal(t, "o1", rec["organization_id"])
	assert.NotContains(t, rec, "points_balance")
}

func TestSchemaRequiresUser(t *testing.T) {
	_, err := Schema.Parse(schema.Input{"app_user_id": "", "organization_id": "o1"})

	verr, ok := schema.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []schema.FieldError{{Field: "app_user_id", Message: "User is required"}}, verr.Errors)
}

func TestSchemaDecodesBalance(t *testing.T) {
	m, err := schema.Decode[Membership](Schema, schema.Input{
		"app_user_id":     "u1",
		"organization_id": "o1",
		"points_balance":  "120",
		"is_active":       "on",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(120), m.PointsBalance)
	assert.True(t, m.IsActive)

	_, err = Schema.Parse(schema.Input{"app_user_id": "u1", "organization_id": "o1", "points_balance": "-5"})
	verr, ok := schema.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Must be at least 0", verr.Fields()["points_balance"][0])
}
