package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pointsclub/clubadmin/internal/types"
)

const maxRequestIDLength = 64

// RequestIDMiddleware keeps a caller supplied X-Request-ID when it is short
// and printable, otherwise assigns a new one. The id is echoed back.
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(types.HeaderRequestID)
	if !validRequestID(requestID) {
		requestID = uuid.NewString()
	}

	c.Request = c.Request.WithContext(types.SetRequestID(c.Request.Context(), requestID))
	c.Header(types.HeaderRequestID, requestID)
	c.Next()
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}
	return true
}
