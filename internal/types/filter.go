package types

import (
	"fmt"

	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/samber/lo"
)

const (
	FILTER_DEFAULT_LIMIT = 50
	FILTER_MAX_LIMIT     = 500
	FILTER_DEFAULT_SORT  = "created_at"
	FILTER_DEFAULT_ORDER = "desc"

	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// sortable columns shared by every list view
var allowedSortFields = []string{"created_at", "updated_at"}

// QueryFilter represents the list view query used by every entity
type QueryFilter struct {
	Limit    *int    `json:"limit,omitempty" form:"limit"`
	Offset   *int    `json:"offset,omitempty" form:"offset"`
	Sort     *string `json:"sort,omitempty" form:"sort"`
	Order    *string `json:"order,omitempty" form:"order"`
	IsActive *bool   `json:"is_active,omitempty" form:"is_active"`
}

// NewDefaultQueryFilter returns a filter with the default pagination and sort
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(FILTER_DEFAULT_LIMIT),
		Offset: lo.ToPtr(0),
		Sort:   lo.ToPtr(FILTER_DEFAULT_SORT),
		Order:  lo.ToPtr(FILTER_DEFAULT_ORDER),
	}
}

// GetLimit returns the limit value or default if not set
func (f *QueryFilter) GetLimit() int {
	if f == nil || f.Limit == nil {
		return FILTER_DEFAULT_LIMIT
	}
	return *f.Limit
}

// GetOffset returns the offset value or default if not set
func (f *QueryFilter) GetOffset() int {
	if f == nil || f.Offset == nil {
		return 0
	}
	return *f.Offset
}

// GetSort returns the sort value or default if not set
func (f *QueryFilter) GetSort() string {
	if f == nil || f.Sort == nil {
		return FILTER_DEFAULT_SORT
	}
	return *f.Sort
}

// GetOrder returns the order value or default if not set
func (f *QueryFilter) GetOrder() string {
	if f == nil || f.Order == nil {
		return FILTER_DEFAULT_ORDER
	}
	return *f.Order
}

func (f *QueryFilter) Validate() error {
	if f == nil {
		return nil
	}

	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > FILTER_MAX_LIMIT) {
		return ierr.NewErrorf("invalid limit: %d", *f.Limit).
			WithHintf("Limit must be between 1 and %d", FILTER_MAX_LIMIT).
			Mark(ierr.ErrValidation)
	}

	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewErrorf("invalid offset: %d", *f.Offset).
			WithHint("Offset cannot be negative").
			Mark(ierr.ErrValidation)
	}

	if f.Sort != nil && !lo.Contains(allowedSortFields, *f.Sort) {
		return ierr.NewErrorf("invalid sort field: %s", *f.Sort).
			WithHint(fmt.Sprintf("Sort must be one of %v", allowedSortFields)).
			Mark(ierr.ErrValidation)
	}

	if f.Order != nil && *f.Order != OrderAsc && *f.Order != OrderDesc {
		return ierr.NewErrorf("invalid order: %s", *f.Order).
			WithHint("Order must be asc or desc").
			Mark(ierr.ErrValidation)
	}

	return nil
}
