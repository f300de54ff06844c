package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/domain/organization"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/service"
	"github.com/pointsclub/clubadmin/internal/session"
	"github.com/pointsclub/clubadmin/internal/types"
)

const activeOrganizationKey = "active_organization"

// ActiveOrganizationMiddleware resolves the organization selected in the
// session cookie and checks the caller still has access to it. Handlers read
// it with OrganizationID and pass it on explicitly.
func ActiveOrganizationMiddleware(sessions *session.Manager, organizations service.OrganizationService, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := types.GetUserID(ctx)

		orgID, err := sessions.ActiveOrganization(c, userID)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		org, err := organizations.ResolveActive(ctx, userID, orgID)
		if err != nil {
			if ierr.IsNotFound(err) || ierr.IsPermissionDenied(err) {
				logger.Infow("dropping stale organization selection",
					"user_id", userID,
					"organization_id", orgID,
					"error", err,
				)
				sessions.Clear(c)
				err = ierr.Handled(err).
					WithHint("Select an organization first").
					Mark(ierr.ErrPermissionDenied)
			}
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(activeOrganizationKey, org)
		c.Next()
	}
}

// ActiveOrganization returns the organization resolved for this request
func ActiveOrganization(c *gin.Context) *organization.Organization {
	if v, ok := c.Get(activeOrganizationKey); ok {
		if org, ok := v.(*organization.Organization); ok {
			return org
		}
	}
	return nil
}

// OrganizationID returns the id of the active organization, or ""
func OrganizationID(c *gin.Context) string {
	if org := ActiveOrganization(c); org != nil {
		return org.ID
	}
	return ""
}
