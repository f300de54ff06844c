package errors

import (
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

// Postgres error codes the repositories translate
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// FromPostgres translates a driver error into a marked error.
// entity is used for hints, e.g. "branch".
func FromPostgres(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return WithError(err).
			WithHintf("%s not found", entity).
			Mark(ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		details := map[string]any{
			"constraint": pqErr.Constraint,
			"table":      pqErr.Table,
		}
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return WithError(err).
				WithHintf("A %s with the same details already exists", entity).
				WithReportableDetails(details).
				Mark(ErrAlreadyExists)
		case pgForeignKeyViolation:
			return WithError(err).
				WithHintf("The %s references a record that does not exist", entity).
				WithReportableDetails(details).
				Mark(ErrInvalidOperation)
		case pgNotNullViolation, pgCheckViolation:
			return WithError(err).
				WithHintf("The %s was rejected by the database", entity).
				WithReportableDetails(details).
				Mark(ErrInvalidOperation)
		}
	}

	return WithError(err).
		WithHintf("Database error while processing %s", entity).
		Mark(ErrDatabase)
}
