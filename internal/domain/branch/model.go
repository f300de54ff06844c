package branch

import (
	"github.com/pointsclub/clubadmin/internal/domain"
)

// Branch is a physical location where members redeem points
type Branch struct {
	ID             string  `db:"id" json:"id"`
	OrganizationID string  `db:"organization_id" json:"organization_id"`
	Name           string  `db:"name" json:"name"`
	Address        *string `db:"address" json:"address"`
	Phone          *string `db:"phone" json:"phone"`
	IsActive       bool    `db:"is_active" json:"is_active"`

	domain.BaseModel
}
