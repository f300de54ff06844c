package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/pointsclub/clubadmin/internal/api/v1"
	"github.com/pointsclub/clubadmin/internal/auth"
	"github.com/pointsclub/clubadmin/internal/config"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/rest/middleware"
	"github.com/pointsclub/clubadmin/internal/service"
	"github.com/pointsclub/clubadmin/internal/session"
)

type Handlers struct {
	Health       *v1.HealthHandler
	Auth         *v1.AuthHandler
	Organization *v1.OrganizationHandler
	AppUser      *v1.AppUserHandler
	Membership   *v1.MembershipHandler
	Branch       *v1.BranchHandler
	Product      *v1.ProductHandler
	Redemption   *v1.RedemptionHandler
	Notification *v1.NotificationHandler
	Permission   *v1.PermissionHandler
}

func NewRouter(
	handlers Handlers,
	cfg *config.Configuration,
	logger *logger.Logger,
	authProvider auth.Provider,
	sessions *session.Manager,
	organizations service.OrganizationService,
	loginLimiter *middleware.LoginRateLimiter,
) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware(cfg),
		middleware.SentryMiddleware(cfg),
		middleware.ErrorHandler(logger),
	)

	router.GET("/health", handlers.Health.Health)

	public := router.Group("/v1")
	public.POST("/auth/login", loginLimiter.Middleware(), handlers.Auth.Login)

	private := router.Group("/v1")
	private.Use(middleware.AuthenticateMiddleware(authProvider, logger), middleware.SentryScopeMiddleware)
	private.GET("/auth/me", handlers.Auth.Me)

	organizationRoutes := private.Group("/organizations")
	{
		organizationRoutes.POST("", handlers.Organization.CreateOrganization)
		organizationRoutes.GET("", handlers.Organization.ListOrganizations)
		organizationRoutes.POST("/select", handlers.Organization.SelectOrganization)
		organizationRoutes.DELETE("/active", handlers.Organization.ClearActiveOrganization)
		organizationRoutes.GET("/:id", handlers.Organization.GetOrganization)
		organizationRoutes.PUT("/:id", handlers.Organization.UpdateOrganization)
		organizationRoutes.POST("/:id/logo", handlers.Organization.UploadLogo)
	}

	// everything below works inside the organization selected in the session
	scoped := private.Group("")
	scoped.Use(middleware.ActiveOrganizationMiddleware(sessions, organizations, logger))
	registerScopedRoutes(scoped, handlers)

	return router
}

func registerScopedRoutes(router *gin.RouterGroup, handlers Handlers) {
	router.GET("/organizations/active", handlers.Organization.GetActiveOrganization)

	appUsers := router.Group("/app-users")
	{
		appUsers.POST("", handlers.AppUser.CreateAppUser)
		appUsers.GET("", handlers.AppUser.ListAppUsers)
		appUsers.GET("/:id", handlers.AppUser.GetAppUser)
		appUsers.PUT("/:id", handlers.AppUser.UpdateAppUser)
	}

	memberships := router.Group("/memberships")
	{
		memberships.POST("", handlers.Membership.CreateMembership)
		memberships.GET("", handlers.Membership.ListMemberships)
		memberships.GET("/:id", handlers.Membership.GetMembership)
		memberships.PUT("/:id", handlers.Membership.UpdateMembership)
	}

	branches := router.Group("/branches")
	{
		branches.POST("", handlers.Branch.CreateBranch)
		branches.GET("", handlers.Branch.ListBranches)
		branches.GET("/:id", handlers.Branch.GetBranch)
		branches.PUT("/:id", handlers.Branch.UpdateBranch)
	}

	products := router.Group("/products")
	{
		products.POST("", handlers.Product.CreateProduct)
		products.GET("", handlers.Product.ListProducts)
		products.GET("/:id", handlers.Product.GetProduct)
		products.PUT("/:id", handlers.Product.UpdateProduct)
		products.POST("/:id/image", handlers.Product.UploadImage)
	}

	redemptions := router.Group("/redemptions")
	{
		redemptions.POST("", handlers.Redemption.CreateRedemption)
		redemptions.GET("", handlers.Redemption.ListRedemptions)
		redemptions.GET("/code/:code", handlers.Redemption.GetRedemptionByCode)
		redemptions.GET("/:id", handlers.Redemption.GetRedemption)
		redemptions.PUT("/:id", handlers.Redemption.UpdateRedemption)
	}

	notifications := router.Group("/notifications")
	{
		notifications.POST("", handlers.Notification.CreateNotification)
		notifications.GET("", handlers.Notification.ListNotifications)
		notifications.GET("/:id", handlers.Notification.GetNotification)
		notifications.PUT("/:id", handlers.Notification.UpdateNotification)
		notifications.POST("/:id/recipients", handlers.Notification.AddRecipient)
		notifications.GET("/:id/recipients", handlers.Notification.ListRecipients)
		notifications.PUT("/:id/recipients/:recipient_id", handlers.Notification.UpdateRecipientStatus)
	}

	permissions := router.Group("/permissions")
	{
		permissions.POST("", handlers.Permission.CreatePermission)
		permissions.GET("", handlers.Permission.ListPermissions)
		permissions.GET("/:id", handlers.Permission.GetPermission)
		permissions.PUT("/:id", handlers.Permission.UpdatePermission)
	}
}
