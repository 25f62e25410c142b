package router

import (
	"github.com/labstack/echo/v4"

	"github.com/bloodbanker/bloodbanker-server/internal/handler"
	"github.com/bloodbanker/bloodbanker-server/internal/middleware"
	"github.com/bloodbanker/bloodbanker-server/internal/model"
)

// RegisterUsers registers registration, profile and user administration.
// Routes addressed by :email only answer for the caller's own email.
func RegisterUsers(e *echo.Echo, h *handler.UserHandler, g Guards) {
	self := middleware.MatchEmailParam("email")

	e.POST("/user", h.Create)
	e.PUT("/user/:id", h.UpdateProfile, g.Verify)

	e.GET("/users/admin/:email", h.HasRole("admin", model.RoleAdmin), g.Verify, self)
	e.GET("/users/volunteer/:email", h.HasRole("volunteer", model.RoleVolunteer), g.Verify, self)
	e.GET("/users/donor/:email", h.HasRole("donor", model.RoleDonor), g.Verify, self)
	e.GET("/users/:email", h.GetByEmail, g.Verify, self)

	admin := []echo.MiddlewareFunc{g.Verify, g.Gate.Admin()}
	e.GET("/users", h.List, admin...)
	e.PATCH("/user/status/:id", h.SetStatus, admin...)
	e.PATCH("/user/role/:id", h.SetRole, admin...)
}
