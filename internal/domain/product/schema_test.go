package product

import (
	"testing"

	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	p, err := schema.Decode[Product](Schema, schema.Input{
		"organization_id": "o1",
		"name":            "Free coffee",
		"description":     "",
		"points_cost":     "150",
		"price":           "3.50",
		"stock":           "20",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(150), p.PointsCost)
	require.NotNil(t, p.Price)
	assert.True(t, decimal.RequireFromString("3.5").Equal(*p.Price))
	require.NotNil(t, p.Stock)
	assert.Equal(t, int64(20), *p.Stock)
	assert.Nil(t, p.Description)
	assert.True(t, p.IsActive)
	assert.False(t, p.IsFeatured)
}

func TestSchemaFeaturedIsOptional(t *testing.T) {
	in := schema.Input{"organization_id": "o1", "name": "Free coffee", "points_cost": 150}

	rec, err := Schema.Parse(in)
	require.NoError(t, err)
	assert.NotContains(t, rec, "is_featured")

	rec, err = Schema.Parse(in.With("is_featured", "on"))
	require.NoError(t, err)
	assert.Equal(t, true, rec["is_featured"])
}

func TestSchemaFailures(t *testing.T) {
	_, err := Schema.Parse(schema.Input{
		"organization_id": "o1",
		"name":            "Free coffee",
		"points_cost":     "",
		"price":           "-2",
	})

	verr, ok := schema.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []schema.FieldError{
		{Field: "points_cost", Message: "Points cost is required"},
		{Field: "price", Message: "Price must be a positive amount"},
	}, verr.Errors)
}

func TestInStock(t *testing.T) {
	unlimited := &Product{}
	assert.True(t, unlimited.InStock(1000))

	stock := int64(2)
	limited := &Product{Stock: &stock}
	assert.True(t, limited.InStock(2))
	assert.False(t, limited.InStock(3))
}
