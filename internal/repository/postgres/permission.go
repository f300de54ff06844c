package postgres

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/permission"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/postgres"
	"github.com/pointsclub/clubadmin/internal/types"
)

const permissionColumns = `id, user_id, organization_id, role, is_active, created_at, updated_at`

type permissionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPermissionRepository(db *postgres.DB, logger *logger.Logger) permission.Repository {
	return &permissionRepository{db: db, logger: logger}
}

func (r *permissionRepository) Create(ctx context.Context, p *permission.Permission) error {
	query := `
	INSERT INTO permissions (id, user_id, organization_id, role, is_active, created_at, updated_at)
	VALUES (:id, :user_id, :organization_id, :role, :is_active, :created_at, :updated_at)
	`

	_, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, p)
	return ierr.FromPostgres(err, "permission")
}

func (r *permissionRepository) Get(ctx context.Context, organizationID, id string) (*permission.Permission, error) {
	query := `SELECT ` + permissionColumns + ` FROM permissions WHERE id = $1 AND organization_id = $2`

	var p permission.Permission
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, id, organizationID); err != nil {
		return nil, ierr.FromPostgres(err, "permission")
	}
	return &p, nil
}

func (r *permissionRepository) GetByUserAndOrganization(ctx context.Context, userID, organizationID string) (*permission.Permission, error) {
	query := `SELECT ` + permissionColumns + ` FROM permissions WHERE user_id = $1 AND organization_id = $2 AND is_active`

	var p permission.Permission
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, userID, organizationID); err != nil {
		return nil, ierr.FromPostgres(err, "permission")
	}
	return &p, nil
}

func (r *permissionRepository) Update(ctx context.Context, p *permission.Permission) error {
	query := `
	UPDATE permissions
	SET user_id = :user_id, role = :role, is_active = :is_active, updated_at = :updated_at
	WHERE id = :id AND organization_id = :organization_id
	`

	res, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, p)
	if err != nil {
		return ierr.FromPostgres(err, "permission")
	}
	return checkAffected(res, "permission")
}

func (r *permissionRepository) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*permission.Permission, error) {
	query := `SELECT ` + permissionColumns + ` FROM permissions WHERE organization_id = $1`
	query, args := listQuery(query, []interface{}{organizationID}, filter, "")

	var items []*permission.Permission
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, ierr.FromPostgres(err, "permission")
	}
	return items, nil
}

func (r *permissionRepository) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	query, args := whereActive(`SELECT COUNT(*) FROM permissions WHERE organization_id = $1`,
		[]interface{}{organizationID}, filter, "")

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.FromPostgres(err, "permission")
	}
	return count, nil
}
