package router

import (
	"github.com/labstack/echo/v4"

	"github.com/bloodbanker/bloodbanker-server/internal/handler"
	"github.com/bloodbanker/bloodbanker-server/internal/middleware"
)

// RegisterDonations registers the donation request endpoints.  The public
// board of pending requests is cached; every other route needs a
// credential.  Blocked users cannot open new requests.
func RegisterDonations(e *echo.Echo, h *handler.DonationHandler, g Guards, cache echo.MiddlewareFunc) {
	e.GET("/donations", h.ListPending, cache)
	e.GET("/donations/all", h.ListAll, g.Verify, g.staff())
	e.GET("/donations/:email", h.ListMine, g.Verify, middleware.MatchEmailParam("email"))

	d := e.Group("/donation", g.Verify)
	d.GET("/:id", h.Get)
	d.POST("", h.Create, g.Gate.RequireActive())
	d.PUT("/:id", h.Update)
	d.PATCH("/status/:id", h.SetStatus)
	d.DELETE("/:id", h.Delete)
}
