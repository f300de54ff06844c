package postgres

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/redemption"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/postgres"
	"github.com/pointsclub/clubadmin/internal/types"
)

const redemptionColumns = `id, organization_id, beneficiary_id, product_id, branch_id, points, status, notes, code, created_at, updated_at`

type redemptionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewRedemptionRepository(db *postgres.DB, logger *logger.Logger) redemption.Repository {
	return &redemptionRepository{db: db, logger: logger}
}

func (r *redemptionRepository) Create(ctx context.Context, rd *redemption.Redemption) error {
	query := `
	INSERT INTO redemptions (id, organization_id, beneficiary_id, product_id, branch_id, points, status, notes, code, created_at, updated_at)
	VALUES (:id, :organization_id, :beneficiary_id, :product_id, :branch_id, :points, :status, :notes, :code, :created_at, :updated_at)
	`

	_, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, rd)
	return ierr.FromPostgres(err, "redemption")
}

func (r *redemptionRepository) Get(ctx context.Context, organizationID, id string) (*redemption.Redemption, error) {
	return r.getBy(ctx, organizationID, "id", id)
}

func (r *redemptionRepository) GetByCode(ctx context.Context, organizationID, code string) (*redemption.Redemption, error) {
	return r.getBy(ctx, organizationID, "code", code)
}

func (r *redemptionRepository) getBy(ctx context.Context, organizationID, column, value string) (*redemption.Redemption, error) {
	query := `SELECT ` + redemptionColumns + ` FROM redemptions WHERE ` + column + ` = $1 AND organization_id = $2`

	var rd redemption.Redemption
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &rd, query, value, organizationID); err != nil {
		return nil, ierr.FromPostgres(err, "redemption")
	}
	return &rd, nil
}

func (r *redemptionRepository) Update(ctx context.Context, rd *redemption.Redemption) error {
	query := `
	UPDATE redemptions
	SET beneficiary_id = :beneficiary_id, product_id = :product_id, branch_id = :branch_id, points = :points,
		status = :status, notes = :notes, updated_at = :updated_at
	WHERE id = :id AND organization_id = :organization_id
	`

	res, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, rd)
	if err != nil {
		return ierr.FromPostgres(err, "redemption")
	}
	return checkAffected(res, "redemption")
}

func (r *redemptionRepository) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*redemption.Redemption, error) {
	query := `SELECT ` + redemptionColumns + ` FROM redemptions WHERE organization_id = $1`
	// redemptions have no is_active column
	query, args := listQuery(query, []interface{}{organizationID}, withoutActive(filter), "")

	var items []*redemption.Redemption
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, ierr.FromPostgres(err, "redemption")
	}
	return items, nil
}

func (r *redemptionRepository) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	query := `SELECT COUNT(*) FROM redemptions WHERE organization_id = $1`

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, organizationID); err != nil {
		return 0, ierr.FromPostgres(err, "redemption")
	}
	return count, nil
}
