package testutil

import (
	ierr "github.com/pointsclub/clubadmin/internal/errors"
)

func alreadyExists(entity string) error {
	return ierr.NewErrorf("%s already exists", entity).
		WithHintf("%s already exists", entity).
		Mark(ierr.ErrAlreadyExists)
}
