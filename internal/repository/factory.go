package repository

import (
	"github.com/pointsclub/clubadmin/internal/domain/appuser"
	"github.com/pointsclub/clubadmin/internal/domain/branch"
	"github.com/pointsclub/clubadmin/internal/domain/membership"
	"github.com/pointsclub/clubadmin/internal/domain/notification"
	"github.com/pointsclub/clubadmin/internal/domain/organization"
	"github.com/pointsclub/clubadmin/internal/domain/permission"
	"github.com/pointsclub/clubadmin/internal/domain/product"
	"github.com/pointsclub/clubadmin/internal/domain/redemption"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/postgres"
	postgresRepo "github.com/pointsclub/clubadmin/internal/repository/postgres"
	"go.uber.org/fx"
)

// Module provides every repository backed by the postgres connection
var Module = fx.Options(
	fx.Provide(
		NewOrganizationRepository,
		NewAppUserRepository,
		NewMembershipRepository,
		NewBranchRepository,
		NewProductRepository,
		NewRedemptionRepository,
		NewNotificationRepository,
		NewRecipientRepository,
		NewPermissionRepository,
	),
)

func NewOrganizationRepository(db *postgres.DB, logger *logger.Logger) organization.Repository {
	return postgresRepo.NewOrganizationRepository(db, logger)
}

func NewAppUserRepository(db *postgres.DB, logger *logger.Logger) appuser.Repository {
	return postgresRepo.NewAppUserRepository(db, logger)
}

func NewMembershipRepository(db *postgres.DB, logger *logger.Logger) membership.Repository {
	return postgresRepo.NewMembershipRepository(db, logger)
}

func NewBranchRepository(db *postgres.DB, logger *logger.Logger) branch.Repository {
	return postgresRepo.NewBranchRepository(db, logger)
}

func NewProductRepository(db *postgres.DB, logger *logger.Logger) product.Repository {
	return postgresRepo.NewProductRepository(db, logger)
}

func NewRedemptionRepository(db *postgres.DB, logger *logger.Logger) redemption.Repository {
	return postgresRepo.NewRedemptionRepository(db, logger)
}

func NewNotificationRepository(db *postgres.DB, logger *logger.Logger) notification.Repository {
	return postgresRepo.NewNotificationRepository(db, logger)
}

func NewRecipientRepository(db *postgres.DB, logger *logger.Logger) notification.RecipientRepository {
	return postgresRepo.NewRecipientRepository(db, logger)
}

func NewPermissionRepository(db *postgres.DB, logger *logger.Logger) permission.Repository {
	return postgresRepo.NewPermissionRepository(db, logger)
}
