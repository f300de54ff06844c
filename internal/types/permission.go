package types

import (
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/samber/lo"
)

// Role is a dashboard user's role within one organization
type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func RoleValues() []string {
	return []string{
		string(RoleOwner),
		string(RoleAdmin),
		string(RoleStaff),
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) Validate() error {
	if !lo.Contains(RoleValues(), string(r)) {
		return ierr.NewError("invalid role").
			WithHint("Role must be owner, admin or staff").
			Mark(ierr.ErrValidation)
	}
	return nil
}
