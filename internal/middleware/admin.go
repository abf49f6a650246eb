package middleware

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"hardware-inventory/pkg/response"
)

const (
	// PasswordHeader carries the admin password for clients that do not send a form.
	PasswordHeader = "X-Admin-Password"
	// PasswordField is the form field checked when the header is absent.
	PasswordField = "password"
)

// AdminAuth gates mutating routes behind the shared admin password.
// Attempts are rate limited per client address whether or not they succeed.
func (m Middleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		// ClientIP only honours forwarding headers from the engine's trusted proxies.
		ip := c.ClientIP()

		if !m.limiter.allow(ip) {
			m.l.Warnf(ctx, "middleware.AdminAuth: rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}

		supplied := c.GetHeader(PasswordHeader)
		if supplied == "" {
			supplied = c.PostForm(PasswordField)
		}
		if supplied == "" || !m.passwordMatches(supplied) {
			m.l.Warnf(ctx, "middleware.AdminAuth: rejected %s %s from %s", c.Request.Method, c.Request.URL.Path, ip)
			response.Unauthorized(c)
			return
		}

		c.Next()
	}
}

// passwordMatches compares digests so neither content nor length leaks through timing.
func (m Middleware) passwordMatches(supplied string) bool {
	want := sha256.Sum256([]byte(m.password))
	got := sha256.Sum256([]byte(supplied))
	return subtle.ConstantTimeCompare(want[:], got[:]) == 1
}
