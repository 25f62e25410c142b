package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness probe used by load balancers.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root answers GET / with the service banner.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "BloodBanker Server!")
}
