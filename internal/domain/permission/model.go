package permission

import (
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/types"
)

// Permission grants a dashboard user a role within an organization
type Permission struct {
	ID             string     `db:"id" json:"id"`
	UserID         string     `db:"user_id" json:"user_id"`
	OrganizationID string     `db:"organization_id" json:"organization_id"`
	Role           types.Role `db:"role" json:"role"`
	IsActive       bool       `db:"is_active" json:"is_active"`

	domain.BaseModel
}
