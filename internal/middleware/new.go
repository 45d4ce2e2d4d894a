package middleware

import (
	"remodel-checklist/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(rateLimitPerMin),
	}
}
