package restapi

import (
	"net/http"
	"time"

	"wayfinder.gobus.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// RateLimiter exposes the per-API-key rate limiting middleware for the outer
// handler chain.
func (api *RestAPI) RateLimiter() func(http.Handler) http.Handler {
	return api.rateLimiter
}
