package postgres

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/branch"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/postgres"
	"github.com/pointsclub/clubadmin/internal/types"
)

const branchColumns = `id, organization_id, name, address, phone, is_active, created_at, updated_at`

type branchRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewBranchRepository(db *postgres.DB, logger *logger.Logger) branch.Repository {
	return &branchRepository{db: db, logger: logger}
}

func (r *branchRepository) Create(ctx context.Context, b *branch.Branch) error {
	query := `
	INSERT INTO branches (id, organization_id, name, address, phone, is_active, created_at, updated_at)
	VALUES (:id, :organization_id, :name, :address, :phone, :is_active, :created_at, :updated_at)
	`

	_, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, b)
	return ierr.FromPostgres(err, "branch")
}

func (r *branchRepository) Get(ctx context.Context, organizationID, id string) (*branch.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE id = $1 AND organization_id = $2`

	var b branch.Branch
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &b, query, id, organizationID); err != nil {
		return nil, ierr.FromPostgres(err, "branch")
	}
	return &b, nil
}

func (r *branchRepository) Update(ctx context.Context, b *branch.Branch) error {
	query := `
	UPDATE branches
	SET name = :name, address = :address, phone = :phone, is_active = :is_active, updated_at = :updated_at
	WHERE id = :id AND organization_id = :organization_id
	`

	res, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, b)
	if err != nil {
		return ierr.FromPostgres(err, "branch")
	}
	return checkAffected(res, "branch")
}

func (r *branchRepository) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*branch.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE organization_id = $1`
	query, args := listQuery(query, []interface{}{organizationID}, filter, "")

	var items []*branch.Branch
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, ierr.FromPostgres(err, "branch")
	}
	return items, nil
}

func (r *branchRepository) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	query, args := whereActive(`SELECT COUNT(*) FROM branches WHERE organization_id = $1`,
		[]interface{}{organizationID}, filter, "")

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.FromPostgres(err, "branch")
	}
	return count, nil
}
