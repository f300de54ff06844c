package postgres

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/membership"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/postgres"
	"github.com/pointsclub/clubadmin/internal/types"
)

const membershipColumns = `id, app_user_id, organization_id, points_balance, is_active, created_at, updated_at`

type membershipRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewMembershipRepository(db *postgres.DB, logger *logger.Logger) membership.Repository {
	return &membershipRepository{db: db, logger: logger}
}

func (r *membershipRepository) Create(ctx context.Context, m *membership.Membership) error {
	query := `
	INSERT INTO organization_app_users (id, app_user_id, organization_id, points_balance, is_active, created_at, updated_at)
	VALUES (:id, :app_user_id, :organization_id, :points_balance, :is_active, :created_at, :updated_at)
	`

	_, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, m)
	return ierr.FromPostgres(err, "membership")
}

func (r *membershipRepository) Get(ctx context.Context, organizationID, id string) (*membership.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM organization_app_users WHERE id = $1 AND organization_id = $2`

	var m membership.Membership
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &m, query, id, organizationID); err != nil {
		return nil, ierr.FromPostgres(err, "membership")
	}
	return &m, nil
}

func (r *membershipRepository) Update(ctx context.Context, m *membership.Membership) error {
	query := `
	UPDATE organization_app_users
	SET app_user_id = :app_user_id, points_balance = :points_balance, is_active = :is_active, updated_at = :updated_at
	WHERE id = :id AND organization_id = :organization_id
	`

	res, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, m)
	if err != nil {
		return ierr.FromPostgres(err, "membership")
	}
	return checkAffected(res, "membership")
}

func (r *membershipRepository) DebitPoints(ctx context.Context, organizationID, id string, points int64) error {
	query := `
	UPDATE organization_app_users
	SET points_balance = points_balance - $1, updated_at = now()
	WHERE id = $2 AND organization_id = $3 AND is_active AND points_balance >= $1
	`

	res, err := r.db.GetQuerier(ctx).ExecContext(ctx, query, points, id, organizationID)
	if err != nil {
		return ierr.FromPostgres(err, "membership")
	}
	if affected, err := res.RowsAffected(); err != nil || affected == 0 {
		return ierr.NewErrorf("cannot debit %d points", points).
			WithHint("The member does not have enough points").
			WithReportableDetails(map[string]any{"membership_id": id, "requested": points}).
			Mark(ierr.ErrInvalidOperation)
	}
	return nil
}

func (r *membershipRepository) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*membership.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM organization_app_users WHERE organization_id = $1`
	query, args := listQuery(query, []interface{}{organizationID}, filter, "")

	var items []*membership.Membership
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, ierr.FromPostgres(err, "membership")
	}
	return items, nil
}

func (r *membershipRepository) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	query, args := whereActive(`SELECT COUNT(*) FROM organization_app_users WHERE organization_id = $1`,
		[]interface{}{organizationID}, filter, "")

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.FromPostgres(err, "membership")
	}
	return count, nil
}
