package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"

	corsMaxAge = 12 * time.Hour

	rateLimiterMaxKeys = 1000
	rateLimiterTTL     = 5 * time.Minute
)
