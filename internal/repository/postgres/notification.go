package postgres

import (
	"context"

	"github.com/pointsclub/clubadmin/internal/domain/notification"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/postgres"
	"github.com/pointsclub/clubadmin/internal/types"
)

const (
	notificationColumns = `id, organization_id, title, body, data, status, scheduled_at, created_at, updated_at`
	recipientColumns    = `id, push_notification_id, app_user_id, status, read_at, created_at, updated_at`
)

type notificationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewNotificationRepository(db *postgres.DB, logger *logger.Logger) notification.Repository {
	return &notificationRepository{db: db, logger: logger}
}

func (r *notificationRepository) Create(ctx context.Context, n *notification.PushNotification) error {
	query := `
	INSERT INTO push_notifications (id, organization_id, title, body, data, status, scheduled_at, created_at, updated_at)
	VALUES (:id, :organization_id, :title, :body, :data, :status, :scheduled_at, :created_at, :updated_at)
	`

	_, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, n)
	return ierr.FromPostgres(err, "notification")
}

func (r *notificationRepository) Get(ctx context.Context, organizationID, id string) (*notification.PushNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM push_notifications WHERE id = $1 AND organization_id = $2`

	var n notification.PushNotification
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &n, query, id, organizationID); err != nil {
		return nil, ierr.FromPostgres(err, "notification")
	}
	return &n, nil
}

func (r *notificationRepository) Update(ctx context.Context, n *notification.PushNotification) error {
	query := `
	UPDATE push_notifications
	SET title = :title, body = :body, data = :data, status = :status, scheduled_at = :scheduled_at, updated_at = :updated_at
	WHERE id = :id AND organization_id = :organization_id
	`

	res, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, n)
	if err != nil {
		return ierr.FromPostgres(err, "notification")
	}
	return checkAffected(res, "notification")
}

func (r *notificationRepository) List(ctx context.Context, organizationID string, filter *types.QueryFilter) ([]*notification.PushNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM push_notifications WHERE organization_id = $1`
	query, args := listQuery(query, []interface{}{organizationID}, withoutActive(filter), "")

	var items []*notification.PushNotification
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, ierr.FromPostgres(err, "notification")
	}
	return items, nil
}

func (r *notificationRepository) Count(ctx context.Context, organizationID string, filter *types.QueryFilter) (int, error) {
	var count int
	err := r.db.GetQuerier(ctx).GetContext(ctx, &count,
		`SELECT COUNT(*) FROM push_notifications WHERE organization_id = $1`, organizationID)
	if err != nil {
		return 0, ierr.FromPostgres(err, "notification")
	}
	return count, nil
}

type recipientRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewRecipientRepository(db *postgres.DB, logger *logger.Logger) notification.RecipientRepository {
	return &recipientRepository{db: db, logger: logger}
}

func (r *recipientRepository) Create(ctx context.Context, rc *notification.Recipient) error {
	query := `
	INSERT INTO push_notification_recipients (id, push_notification_id, app_user_id, status, read_at, created_at, updated_at)
	VALUES (:id, :push_notification_id, :app_user_id, :status, :read_at, :created_at, :updated_at)
	`

	_, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, rc)
	return ierr.FromPostgres(err, "recipient")
}

func (r *recipientRepository) Get(ctx context.Context, notificationID, id string) (*notification.Recipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM push_notification_recipients WHERE id = $1 AND push_notification_id = $2`

	var rc notification.Recipient
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &rc, query, id, notificationID); err != nil {
		return nil, ierr.FromPostgres(err, "recipient")
	}
	return &rc, nil
}

func (r *recipientRepository) Update(ctx context.Context, rc *notification.Recipient) error {
	query := `
	UPDATE push_notification_recipients
	SET status = :status, read_at = :read_at, updated_at = :updated_at
	WHERE id = :id AND push_notification_id = :push_notification_id
	`

	res, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, rc)
	if err != nil {
		return ierr.FromPostgres(err, "recipient")
	}
	return checkAffected(res, "recipient")
}

func (r *recipientRepository) List(ctx context.Context, notificationID string, filter *types.QueryFilter) ([]*notification.Recipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM push_notification_recipients WHERE push_notification_id = $1`
	query, args := listQuery(query, []interface{}{notificationID}, withoutActive(filter), "")

	var items []*notification.Recipient
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, ierr.FromPostgres(err, "recipient")
	}
	return items, nil
}

func (r *recipientRepository) Count(ctx context.Context, notificationID string, filter *types.QueryFilter) (int, error) {
	var count int
	err := r.db.GetQuerier(ctx).GetContext(ctx, &count,
		`SELECT COUNT(*) FROM push_notification_recipients WHERE push_notification_id = $1`, notificationID)
	if err != nil {
		return 0, ierr.FromPostgres(err, "recipient")
	}
	return count, nil
}
