package appuser

import (
	"github.com/pointsclub/clubadmin/internal/domain"
)

// AppUser is a member of the loyalty app, shared across organizations
type AppUser struct {
	ID       string  `db:"id" json:"id"`
	FullName string  `db:"full_name" json:"full_name"`
	Email    string  `db:"email" json:"email"`
	Phone    *string `db:"phone" json:"phone"`
	IsActive bool    `db:"is_active" json:"is_active"`

	domain.BaseModel
}
