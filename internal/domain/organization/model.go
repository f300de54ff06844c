package organization

import (
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/pointsclub/clubadmin/internal/types"
)

// Organization is a club running its own points program
type Organization struct {
	ID          string         `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	Description *string        `db:"description" json:"description"`
	LogoURL     *string        `db:"logo_url" json:"logo_url"`
	Settings    types.Metadata `db:"settings" json:"settings"`
	IsActive    bool           `db:"is_active" json:"is_active"`

	domain.BaseModel
}
