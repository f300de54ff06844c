package appuser

import (
	"testing"

	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	user, err := schema.Decode[AppUser](Schema, schema.Input{
		"full_name": "Ana Silva",
		"email":     "Ana@Example.com",
		"phone":     "",
		"is_active": "false",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Silva", user.FullName)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Nil(t, user.Phone)
	assert.False(t, user.IsActive)
}

func TestSchemaFailures(t *testing.T) {
	_, err := Schema.Parse(schema.Input{"full_name": "", "email": "not-an-email"})

	verr, ok := schema.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []schema.FieldError{
		{Field: "full_name", Message: "Full name is required"},
		{Field: "email", Message: "Email is not valid"},
	}, verr.Errors)
}
