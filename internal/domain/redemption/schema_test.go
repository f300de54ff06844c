package redemption

import (
	"testing"

	"github.com/pointsclub/clubadmin/internal/schema"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() schema.Input {
	return schema.Input{
		"organization_id": "o1",
		"beneficiary_id":  "member_1",
		"product_id":      "prod_1",
		"points":          "150",
	}
}

func TestSchemaDefaults(t *testing.T) {
	r, err := schema.Decode[Redemption](Schema, validInput().With("branch_id", ""))
	require.NoError(t, err)

	assert.Equal(t, types.RedemptionStatusPending, r.Status)
	assert.Nil(t, r.BranchID)
	assert.Equal(t, int64(150), r.Points)
}

func TestSchemaStatus(t *testing.T) {
	for _, status := range types.RedemptionStatusValues() {
		_, err := Schema.Parse(validInput().With("status", status))
		assert.NoError(t, err, status)
	}

	_, err := Schema.Parse(validInput().With("status", "refunded"))
	verr, ok := schema.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Status must be pending, completed or cancelled", verr.Fields()["status"][0])
}

func TestSchemaRequiresBeneficiary(t *testing.T) {
	_, err := Schema.Parse(validInput().With("beneficiary_id", ""))

	verr, ok := schema.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []schema.FieldError{{Field: "beneficiary_id", Message: "Beneficiary is required"}}, verr.Errors)
}
