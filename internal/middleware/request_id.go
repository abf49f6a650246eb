package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hardware-inventory/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id that log lines written from its context carry.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
