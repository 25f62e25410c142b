package handler // handler defines the HTTP handlers behind the routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bloodbanker/bloodbanker-server/internal/queue"
	"github.com/bloodbanker/bloodbanker-server/internal/repository"
)

// storeTimeout bounds every storage call made by a handler.
const storeTimeout = 5 * time.Second

// CacheInvalidator drops cached listings after a write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, routes ...string)
}

// EventPublisher delivers donation events to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.DonationEvent) error
}

// Counter is implemented by every store that can report its size.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg})
}

// storeError maps repository errors to responses and logs the unexpected ones.
func storeError(c echo.Context, log *zap.Logger, op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return message(c, http.StatusBadRequest, "invalid id")
	case errors.Is(err, repository.ErrNotFound):
		return message(c, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrNoFields):
		return message(c, http.StatusBadRequest, "nothing to update")
	}
	log.Error(op+" failed", zap.String("path", c.Path()), zap.Error(err))
	return message(c, http.StatusInternalServerError, op+" failed")
}

var errInvalidBody = errors.New("invalid body")

// bindValid binds the body into req and runs struct validation.  The
// returned error is meant for the client.
func bindValid(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errInvalidBody
	}
	return c.Validate(req)
}

// bindMap decodes an arbitrary JSON object from the body only.
func bindMap(c echo.Context) (map[string]interface{}, error) {
	body := map[string]interface{}{}
	if err := new(echo.DefaultBinder).BindBody(c, &body); err != nil {
		return nil, errInvalidBody
	}
	return body, nil
}

func queryLimit(c echo.Context) int64 {
	n, err := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func storeCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), storeTimeout)
}

// idString renders an inserted id for event payloads.
func idString(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
