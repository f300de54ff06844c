package postgres

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/organization"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/postgres"
	"github.com/pointsclub/clubadmin/internal/types"
)

const organizationColumns = `o.id, o.name, o.slug, o.description, o.logo_url, o.settings, o.is_active, o.created_at, o.updated_at`

type organizationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewOrganizationRepository(db *postgres.DB, logger *logger.Logger) organization.Repository {
	return &organizationRepository{db: db, logger: logger}
}

func (r *organizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	query := `
	INSERT INTO organizations (id, name, slug, description, logo_url, settings, is_active, created_at, updated_at)
	VALUES (:id, :name, :slug, :description, :logo_url, :settings, :is_active, :created_at, :updated_at)
	`

	_, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, org)
	return ierr.FromPostgres(err, "organization")
}

func (r *organizationRepository) Get(ctx context.Context, id string) (*organization.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations o WHERE o.id = $1`

	var org organization.Organization
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &org, query, id); err != nil {
		return nil, ierr.FromPostgres(err, "organization")
	}
	return &org, nil
}

func (r *organizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	query := `
	UPDATE organizations
	SET name = :name, slug = :slug, description = :description, logo_url = :logo_url,
		settings = :settings, is_active = :is_active, updated_at = :updated_at
	WHERE id = :id
	`

	res, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, org)
	if err != nil {
		return ierr.FromPostgres(err, "organization")
	}
	return checkAffected(res, "organization")
}

func (r *organizationRepository) ListByUser(ctx context.Context, userID string, filter *types.QueryFilter) ([]*organization.Organization, error) {
	query := `
	SELECT ` + organizationColumns + `
	FROM organizations o
	JOIN permissions p ON p.organization_id = o.id
	WHERE p.user_id = $1 AND p.is_active`
	query, args := listQuery(query, []interface{}{userID}, filter, "o.")

	var orgs []*organization.Organization
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &orgs, query, args...); err != nil {
		return nil, ierr.FromPostgres(err, "organization")
	}
	return orgs, nil
}

func (r *organizationRepository) CountByUser(ctx context.Context, userID string, filter *types.QueryFilter) (int, error) {
	query := `
	SELECT COUNT(*)
	FROM organizations o
	JOIN permissions p ON p.organization_id = o.id
	WHERE p.user_id = $1 AND p.is_active`
	query, args := whereActive(query, []interface{}{userID}, filter, "o.")

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.FromPostgres(err, "organization")
	}
	return count, nil
}
