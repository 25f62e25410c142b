package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/bloodbanker/bloodbanker-server/internal/handler"
	"github.com/bloodbanker/bloodbanker-server/internal/middleware"
)

// Guards bundles the authentication and authorization middleware shared by
// every route file.  Verify checks the credential; Gate checks stored roles.
type Guards struct {
	Verify echo.MiddlewareFunc
	Gate   *middleware.RoleGate
}

// staff admits Admin and volunteer users.
func (g Guards) staff() echo.MiddlewareFunc {
	return g.Gate.Require("Admin", "volunteer")
}

// RegisterRoutes registers the routes that need no credential.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers credential issuance and the caller's claims.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, g Guards) {
	e.POST("/jwt", a.IssueToken)
	e.GET("/me", a.Me, g.Verify)
}

// RegisterLocations registers the district/upazila lookups.  Reads are
// public and cached; writes are admin only.
func RegisterLocations(e *echo.Echo, h *handler.LocationHandler, g Guards, cache echo.MiddlewareFunc) {
	e.GET("/district", h.Districts, cache)
	e.GET("/upazila", h.Upazilas, cache)
	e.POST("/district", h.AddDistrict, g.Verify, g.Gate.Admin())
	e.POST("/upazila", h.AddUpazila, g.Verify, g.Gate.Admin())
}

// RegisterStats registers the dashboard counters.
func RegisterStats(e *echo.Echo, h *handler.StatsHandler, g Guards) {
	e.GET("/states", h.States, g.Verify, g.staff())
}

// Handlers collects every handler the API serves.
type Handlers struct {
	Auth      *handler.AuthHandler
	Users     *handler.UserHandler
	Donations *handler.DonationHandler
	Blogs     *handler.BlogHandler
	Locations *handler.LocationHandler
	Stats     *handler.StatsHandler
}

// Setup registers the whole API on e.  cache wraps the public listings.
func Setup(e *echo.Echo, h Handlers, g Guards, cache echo.MiddlewareFunc) {
	if cache == nil {
		cache = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	RegisterRoutes(e)
	RegisterAuth(e, h.Auth, g)
	RegisterLocations(e, h.Locations, g, cache)
	RegisterUsers(e, h.Users, g)
	RegisterDonations(e, h.Donations, g, cache)
	RegisterBlog(e, h.Blogs, g, cache)
	RegisterStats(e, h.Stats, g)
}
