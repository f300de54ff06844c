package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/auth"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/types"
)

func unauthorized(c *gin.Context, msg, hint string) {
	_ = c.Error(ierr.NewError(msg).
		WithHint(hint).
		Mark(ierr.ErrUnauthorized))
	c.Abort()
}

// AuthenticateMiddleware validates the bearer token and puts the caller's
// user id and email in the request context
func AuthenticateMiddleware(provider auth.Provider, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(types.HeaderAuthorization)
		if authHeader == "" {
			unauthorized(c, "missing authorization header", "Unauthorized")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "malformed authorization header", "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := provider.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Debugw("failed to validate token", "error", err)
			unauthorized(c, "invalid token", "Invalid token")
			return
		}

		if claims == nil || claims.UserID == "" {
			unauthorized(c, "token without subject", "Invalid token claims")
			return
		}

		ctx := types.SetUserID(c.Request.Context(), claims.UserID)
		ctx = types.SetUserEmail(ctx, claims.Email)
		ctx = context.WithValue(ctx, types.CtxJWT, tokenString)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
