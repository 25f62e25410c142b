package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bloodbanker/bloodbanker-server/internal/model"
)

// StatsHandler reports collection sizes for the dashboard.
type StatsHandler struct {
	Users, Donations, Blogs Counter
	Log                     *zap.Logger
}

func NewStatsHandler(users, donations, blogs Counter, log *zap.Logger) *StatsHandler {
	return &StatsHandler{Users: users, Donations: donations, Blogs: blogs, Log: log}
}

// States handles GET /states.  Counts are estimates.
func (h *StatsHandler) States(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()

	var out model.Stats
	for _, q := range []struct {
		src Counter
		dst *int64
	}{
		{h.Users, &out.Users},
		{h.Donations, &out.Donations},
		{h.Blogs, &out.Blogs},
	} {
		n, err := q.src.Count(ctx)
		if err != nil {
			return storeError(c, h.Log, "count", err)
		}
		*q.dst = n
	}
	return c.JSON(http.StatusOK, out)
}
