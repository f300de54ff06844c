package redemption

import (
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/types"
)

// Redemption records a member spending points on a product
type Redemption struct {
	ID             string                 `db:"id" json:"id"`
	OrganizationID string                 `db:"organization_id" json:"organization_id"`
	BeneficiaryID  string                 `db:"beneficiary_id" json:"beneficiary_id"`
	ProductID      string                 `db:"product_id" json:"product_id"`
	BranchID       *string                `db:"branch_id" json:"branch_id"`
	Points         int64                  `db:"points" json:"points"`
	Status         types.RedemptionStatus `db:"status" json:"status"`
	Notes          *string                `db:"notes" json:"notes"`
	Code           string                 `db:"code" json:"code"`

	domain.BaseModel
}
