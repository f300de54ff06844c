package postgres

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/product"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/postgres"
	"github.com/pointsclub/clubadmin/internal/types"
)

const productColumns = `id, organization_id, name, description, points_cost, price, image_url, stock, is_active, is_featured, created_at, updated_at`

type productRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewProductRepository(db *postgres.DB, logger *logger.Logger) product.Repository {
	return &productRepository{db: db, logger: logger}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
	INSERT INTO products (id, organization_id, name, description, points_cost, price, image_url, stock, is_active, is_featured, created_at, updated_at)
	VALUES (:id, :organization_id, :name, :description, :points_cost, :price, :image_url, :stock, :is_active, :is_featured, :created_at, :updated_at)
	`

	_, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, p)
	return ierr.FromPostgres(err, "product")
}

func (r *productRepository) Get(ctx context.Context, organizationID, id string) (*product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND organization_id = $2`

	var p product.Product
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, id, organizationID); err != nil {
		return nil, ierr.FromPostgres(err, "product")
	}
	return &p, nil
}

func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
	UPDATE products
	SET name = :name, description = :description, points_cost = :points_cost, price = :price,
		image_url = :image_url, stock = :stock, is_active = :is_active, is_featured = :is_featured,
		updated_at = :updated_at
	WHERE id = :id AND organization_id = :organization_id
	`

	res, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, p)
	if err != nil {
		return ierr.FromPostgres(err, "product")
	}
	return checkAffected(res, "product")
}

func (r *productRepository) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE organization_id = $1`
	query, args := listQuery(query, []interface{}{organizationID}, filter, "")

	var items []*product.Product
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, ierr.FromPostgres(err, "product")
	}
	return items, nil
}

func (r *productRepository) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	query, args := whereActive(`SELECT COUNT(*) FROM products WHERE organization_id = $1`,
		[]interface{}{organizationID}, filter, "")

	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.FromPostgres(err, "product")
	}
	return count, nil
}

func (r *productRepository) DecrementStock(ctx context.Context, organizationID, id string, n int64) error {
	query := `
	UPDATE products
	SET stock = stock - $1, updated_at = now()
	WHERE id = $2 AND organization_id = $3 AND (stock IS NULL OR stock >= $1)
	`

	res, err := r.db.GetQuerier(ctx).ExecContext(ctx, query, n, id, organizationID)
	if err != nil {
		return ierr.FromPostgres(err, "product")
	}
	if affected, err := res.RowsAffected(); err != nil || affected == 0 {
		return ierr.NewError("insufficient stock").
			WithHint("The product is out of stock").
			WithReportableDetails(map[string]any{"product_id": id, "requested": n}).
			Mark(ierr.ErrInvalidOperation)
	}
	return nil
}
