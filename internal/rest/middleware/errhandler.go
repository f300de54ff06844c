package middleware

import (
	"github.com/gin-gonic/gin"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/types"
)

// ErrorHandler renders the last error a handler attached to the context.
// The hint becomes the message; the status comes from the error's marker.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		ctx := c.Request.Context()
		if !ierr.IsKnown(err) {
			log.Errorw("unhandled request error",
				"error", err,
				"path", c.FullPath(),
				"request_id", types.GetRequestID(ctx),
			)
		}

		c.JSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err, types.GetRequestID(ctx)))
	}
}
