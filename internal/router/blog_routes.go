package router

import (
	"github.com/labstack/echo/v4"

	"github.com/bloodbanker/bloodbanker-server/internal/handler"
)

// RegisterBlog registers the blog endpoints.  Anyone may read; admins and
// volunteers write drafts; only admins publish or delete.
func RegisterBlog(e *echo.Echo, h *handler.BlogHandler, g Guards, cache echo.MiddlewareFunc) {
	e.GET("/blog", h.List, cache)
	e.GET("/blog/:id", h.Get, cache)
	e.POST("/blog", h.Create, g.Verify, g.staff())
	e.PATCH("/blog/:id", h.SetStatus, g.Verify, g.Gate.Admin())
	e.DELETE("/blog/:id", h.Delete, g.Verify, g.Gate.Admin())
}
