package main

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/api"
	v1 "github.com/pointsclub/clubadmin/internal/api/v1"
	"github.com/pointsclub/clubadmin/internal/auth"
	"github.com/pointsclub/clubadmin/internal/cache"
	"github.com/pointsclub/clubadmin/internal/config"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/postgres"
	"github.com/pointsclub/clubadmin/internal/profiling"
	"github.com/pointsclub/clubadmin/internal/repository"
	"github.com/pointsclub/clubadmin/internal/rest/middleware"
	"github.com/pointsclub/clubadmin/internal/s3"
	"github.com/pointsclub/clubadmin/internal/sentry"
	"github.com/pointsclub/clubadmin/internal/service"
	"github.com/pointsclub/clubadmin/internal/session"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/pointsclub/clubadmin/internal/validator"
	"go.uber.org/fx"
)

// @title Club Admin API
// @version 1.0
// @description Back office API for loyalty clubs
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func init() {
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			validator.NewValidator,
			config.NewConfig,
			logger.NewLogger,
			postgres.NewDB,
			cache.NewInMemoryCache,
			s3.NewService,
			auth.NewProvider,
			session.NewManager,
			middleware.NewLoginRateLimiter,
		),
		sentry.Module(),
		profiling.Module(),
		repository.Module,
		service.Module,
	)

	opts = append(opts,
		fx.Provide(
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(
			closeDB,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	db *postgres.DB,
	logger *logger.Logger,
	sessions *session.Manager,
	authService service.AuthService,
	organizationService service.OrganizationService,
	appUserService service.AppUserService,
	membershipService service.MembershipService,
	branchService service.BranchService,
	productService service.ProductService,
	redemptionService service.RedemptionService,
	notificationService service.NotificationService,
	permissionService service.PermissionService,
) api.Handlers {
	return api.Handlers{
		Health:       v1.NewHealthHandler(db, logger),
		Auth:         v1.NewAuthHandler(authService, sessions, logger),
		Organization: v1.NewOrganizationHandler(organizationService, sessions, logger),
		AppUser:      v1.NewAppUserHandler(appUserService, logger),
		Membership:   v1.NewMembershipHandler(membershipService, logger),
		Branch:       v1.NewBranchHandler(branchService, logger),
		Product:      v1.NewProductHandler(productService, logger),
		Redemption:   v1.NewRedemptionHandler(redemptionService, logger),
		Notification: v1.NewNotificationHandler(notificationService, logger),
		Permission:   v1.NewPermissionHandler(permissionService, logger),
	}
}

func closeDB(lc fx.Lifecycle, db *postgres.DB, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("Closing database connection")
			db.Close()
			return nil
		},
	})
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal:
		runMigrations(lc, db, log)
		startAPIServer(lc, r, cfg, log)
	case types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	case types.ModeAWSLambdaAPI:
		startAWSLambdaAPI(r)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

// runMigrations brings a local database up to date before serving
func runMigrations(lc fx.Lifecycle, db *postgres.DB, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			migrator, err := postgres.NewMigrator(db, log)
			if err != nil {
				return err
			}
			return migrator.Up()
		},
	})
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}

func startAWSLambdaAPI(r *gin.Engine) {
	ginLambda := ginadapter.New(r)
	lambda.Start(ginLambda.ProxyWithContext)
}
