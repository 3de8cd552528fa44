package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-property-management/internal/handler"
    "github.com/iliyamo/hotel-property-management/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication
// on the provided Echo instance.  Currently it exposes only a health
// check, used by load balancers to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    g.POST("/refresh", a.Refresh)
    g.POST("/logout", a.Logout)

    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.GET("/me", a.Me)
}

// Engine bundles the handlers behind the allocation endpoints so the
// registration call stays readable.
type Engine struct {
    Availability *handler.AvailabilityHandler
    Blocks       *handler.BlockHandler
    Calendar     *handler.CalendarHandler
    Reservations *handler.ReservationHandler
}

// RegisterEngine registers the allocation endpoints.  Everything here
// requires a staff token; both MANAGER and RECEPTION may read and
// write, matching front-desk practice where receptionists place blocks
// and run merges.  The extra limiter guards the write endpoints, which
// lock room rows and are the expensive path.
func RegisterEngine(e *echo.Echo, eng Engine, jwtSecret string, limiter echo.MiddlewareFunc) {
    g := e.Group("/v1")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireRole("MANAGER", "RECEPTION"))

    g.GET("/hotels/:id/availability", eng.Availability.Get)
    g.GET("/reservations/:id/overlaps", eng.Reservations.GetOverlaps)
    g.GET("/reservations/:id/merge-candidates", eng.Reservations.GetMergeCandidates)

    g.POST("/hotels/:id/blocks", eng.Blocks.Create, limiter)
    g.POST("/calendar/blocks", eng.Calendar.Block, limiter)
    g.POST("/reservations/:id/merge", eng.Reservations.DoMerge, limiter)
}
