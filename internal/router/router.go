// Package router wires handlers and middleware to URL paths.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/sajidhasan/resort-booking/internal/config"
	"github.com/sajidhasan/resort-booking/internal/handler"
	"github.com/sajidhasan/resort-booking/internal/middleware"
	"github.com/sajidhasan/resort-booking/internal/model"
)

// RegisterRoutes registers routes that need no authentication and no
// repositories: currently just the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the auth endpoints. Register, login, refresh
// and logout live under /v1/auth without middleware; /v1/me requires a
// valid token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout is not behind JWTAuth: a session whose access token has
	// already expired must still be able to revoke its refresh token.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated browse and booking
// endpoints. Read endpoints sit behind the response cache; the booking
// submission does not, since it writes.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, b *handler.BookingHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cached := middleware.NewRedisCache(cacheCfg, rdb)

	e.GET("/v1/services", p.GetServices, cached)
	e.GET("/v1/services/filter-options", p.GetFilterOptions, cached)
	e.GET("/v1/services/:id", p.GetService, cached)
	e.GET("/v1/services/:id/quote", p.GetQuote)
	e.GET("/v1/search/services", p.SearchServices, cached)

	e.POST("/v1/bookings", b.Create)
}

// RegisterCustomer registers customer-scoped endpoints under /v1/my.
// Admins hold a customer account too, so both roles are accepted.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group(
		"/v1/my",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer, model.RoleAdmin),
	)
	g.GET("/bookings", h.MyBookings)
}
