package product

import (
	"github.com/pointsclub/clubadmin/internal/domain"
	"github.com/shopspring/decimal"
)

// Product is a reward members can redeem with points
type Product struct {
	ID             string           `db:"id" json:"id"`
	OrganizationID string           `db:"organization_id" json:"organization_id"`
	Name           string           `db:"name" json:"name"`
	Description    *string          `db:"description" json:"description"`
	PointsCost     int64            `db:"points_cost" json:"points_cost"`
	Price          *decimal.Decimal `db:"price" json:"price"`
	ImageURL       *string          `db:"image_url" json:"image_url"`
	Stock          *int64           `db:"stock" json:"stock"`
	IsActive       bool             `db:"is_active" json:"is_active"`
	IsFeatured     bool             `db:"is_featured" json:"is_featured"`

	domain.BaseModel
}

// InStock reports whether the product can be redeemed n more times.
// A nil stock is unlimited.
func (p *Product) InStock(n int64) bool {
	return p.Stock == nil || *p.Stock >= n
}
