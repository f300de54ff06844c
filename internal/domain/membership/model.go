package membership

import (
	"github.com/pointsclub/clubadmin/internal/domain"
)

// Membership enrolls an app user in an organization's points program
type Membership struct {
	ID             string `db:"id" json:"id"`
	AppUserID      string `db:"app_user_id" json:"app_user_id"`
	OrganizationID string `db:"organization_id" json:"organization_id"`
	PointsBalance  int64  `db:"points_balance" json:"points_balance"`
	IsActive       bool   `db:"is_active" json:"is_active"`

	domain.BaseModel
}
