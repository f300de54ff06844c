package postgres

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/appuser"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/postgres"
	"github.com/pointsclub/clubadmin/internal/types"
)

const appUserColumns = `u.id, u.full_name, u.email, u.phone, u.is_active, u.created_at, u.updated_at`

type appUserRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewAppUserRepository(db *postgres.DB, logger *logger.Logger) appuser.Repository {
	return &appUserRepository{db: db, logger: logger}
}

func (r *appUserRepository) Create(ctx context.Context, user *appuser.AppUser) error {
	query := `
	INSERT INTO app_users (id, full_name, email, phone, is_active, created_at, updated_at)
	VALUES (:id, :full_name, :email, :phone, :is_active, :created_at, :updated_at)
	`

	_, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, user)
	return ierr.FromPostgres(err, "app user")
}

func (r *appUserRepository) Get(ctx context.Context, id string) (*appuser.AppUser, error) {
	return r.getBy(ctx, "u.id", id)
}

func (r *appUserRepository) GetByEmail(ctx context.Context, email string) (*appuser.AppUser, error) {
	return r.getBy(ctx, "u.email", email)
}

func (r *appUserRepository) getBy(ctx context.Context, column, value string) (*appuser.AppUser, error) {
	query := `SELECT ` + appUserColumns + ` FROM app_users u WHERE ` + column + ` = $1`

	var user appuser.AppUser
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &user, query, value); err != nil {
		return nil, ierr.FromPostgres(err, "app user")
	}
	return &user, nil
}

func (r *appUserRepository) Update(ctx context.Context, user *appuser.AppUser) error {
	query := `
	UPDATE app_users
	SET full_name = :full_name, email = :email, phone = :phone, is_active = :is_active, updated_at = :updated_at
	WHERE id = :id
	`

	res, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, user)
	if err != nil {
		return ierr.FromPostgres(err, "app user")
	}
	return checkAffected(res, "app user")
}

// scope restricts the query to members of organizationID when one is given
func (r *appUserRepository) scope(organizationID string) (string, []interface{}) {
	if organizationID == "" {
		return `WHERE TRUE`, nil
	}
	return `WHERE EXISTS (
		SELECT 1 FROM organization_app_users m
		WHERE m.app_user_id = u.id AND m.organization_id = $1
	)`, []interface{}{organizationID}
}

func (r *appUserRepository) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*appuser.AppUser, error) {
	where, args := r.scope(organizationID)
	query, args := listQuery(`SELECT `+appUserColumns+` FROM app_users u `+where, args, filter, "u.")

	var users []*appuser.AppUser
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &users, query, args...); err != nil {
		return nil, ierr.FromPostgres(err, "app user")
	}
	return users, nil
}

func (r *appUserRepository) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	where, args := r.scope(organizationID)
	query, args := whereActive(`SELECT COUNT(*) FROM app_users u `+where, args, filter, "u.")

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.FromPostgres(err, "app user")
	}
	return count, nil
}
