package middleware

import (
	"hardware-inventory/config"
	"hardware-inventory/pkg/log"
)

type Middleware struct {
	l        log.Logger
	password string
	limiter  *rateLimiter
}

func New(l log.Logger, cfg config.AdminConfig) Middleware {
	return Middleware{
		l:        l,
		password: cfg.Password,
		limiter:  newRateLimiter(cfg.RateLimitPerMin),
	}
}
