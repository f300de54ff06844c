package service

import (
	"github.com/pointsclub/clubadmin/internal/auth"
	"github.com/pointsclub/clubadmin/internal/cache"
	"github.com/pointsclub/clubadmin/internal/config"
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
	"github.com/pointsclub/clubadmin/internal/s3"
	"github.com/pointsclub/clubadmin/internal/sentry"
	"go.uber.org/fx"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.Transactor
	Sentry *sentry.Service
	Cache  cache.Cache
	S3     s3.Service
	Auth   auth.Provider

	// Repositories
	OrganizationRepo organization.Repository
	AppUserRepo      appuser.Repository
	MembershipRepo   membership.Repository
	BranchRepo       branch.Repository
	ProductRepo      product.Repository
	RedemptionRepo   redemption.Repository
	NotificationRepo notification.Repository
	RecipientRepo    notification.RecipientRepository
	PermissionRepo   permission.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db *postgres.DB,
	sentry *sentry.Service,
	cache cache.Cache,
	s3 s3.Service,
	authProvider auth.Provider,
	organizationRepo organization.Repository,
	appUserRepo appuser.Repository,
	membershipRepo membership.Repository,
	branchRepo branch.Repository,
	productRepo product.Repository,
	redemptionRepo redemption.Repository,
	notificationRepo notification.Repository,
	recipientRepo notification.RecipientRepository,
	permissionRepo permission.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:           logger,
		Config:           config,
		DB:               db,
		Sentry:           sentry,
		Cache:            cache,
		S3:               s3,
		Auth:             authProvider,
		OrganizationRepo: organizationRepo,
		AppUserRepo:      appUserRepo,
		MembershipRepo:   membershipRepo,
		BranchRepo:       branchRepo,
		ProductRepo:      productRepo,
		RedemptionRepo:   redemptionRepo,
		NotificationRepo: notificationRepo,
		RecipientRepo:    recipientRepo,
		PermissionRepo:   permissionRepo,
	}
}

// Module provides the service params and every service built on them
var Module = fx.Options(
	fx.Provide(
		NewServiceParams,
		NewAuthService,
		NewOrganizationService,
		NewAppUserService,
		NewMembershipService,
		NewBranchService,
		NewProductService,
		NewRedemptionService,
		NewNotificationService,
		NewPermissionService,
	),
)
