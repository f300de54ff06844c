package branch

import (
	"testing"

	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaBooleanCoercion(t *testing.T) {
	tests := []struct {
		raw  any
		want bool
	}{
		{true, true},
		{"true", true},
		{"on", true},
		{false, false},
		{"false", false},
		{"", false},
	}

	for _, tt := range tests {
		b, err := schema.Decode[Branch](Schema, schema.Input{
			"organization_id": "o1",
			"name":            "Downtown",
			"is_active":       tt.raw,
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, b.IsActive, "is_active=%#v", tt.raw)
	}
}

func TestSchemaNullableText(t *testing.T) {
	for _, raw := range []any{"", nil} {
		rec, err := Schema.Parse(schema.Input{
			"organization_id": "o1",
			"name":            "Downtown",
			"address":         raw,
			"phone":           raw,
		})
		require.NoError(t, err)
		assert.Nil(t, rec["address"])
		assert.Nil(t, rec["phone"])
		assert.Contains(t, rec, "address")
	}
}

func TestSchemaRequiredStrings(t *testing.T) {
	for _, in := range []schema.Input{
		{},
		{"organization_id": "", "name": ""},
		{"organization_id": nil, "name": nil},
	} {
		_, err := Schema.Parse(in)
		verr, ok := schema.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, map[string][]string{
			"organization_id": {"Organization is required"},
			"name":            {"Name is required"},
		}, verr.Fields())
	}
}
