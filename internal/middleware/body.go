package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-inventory/pkg/response"
)

// LimitBody caps every request body at limit bytes. A declared length over the cap is
// refused before anything is read; otherwise reads past the cap fail with *http.MaxBytesError.
// It must run before any handler that parses forms, AdminAuth included.
func (m Middleware) LimitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 || c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}
		if c.Request.ContentLength > limit {
			m.l.Warnf(c.Request.Context(), "middleware.LimitBody: %s %s declared %d bytes, limit %d",
				c.Request.Method, c.Request.URL.Path, c.Request.ContentLength, limit)
			response.RequestTooLarge(c)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
