package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bloodbanker/bloodbanker-server/internal/model"
	"github.com/bloodbanker/bloodbanker-server/internal/repository"
)

// UserLookup is the slice of the user store the gate needs.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// RoleGate authorizes verified requests against the role stored on the
// caller's user record.  It is built once at startup and handed to route
// registration.  Every gated request costs one lookup; nothing is cached,
// so a role change applies from the next request on.
type RoleGate struct {
	users   UserLookup
	log     *zap.Logger
	timeout time.Duration
}

func NewRoleGate(users UserLookup, log *zap.Logger) *RoleGate {
	if users == nil {
		panic("nil user store passed to NewRoleGate")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RoleGate{users: users, log: log, timeout: 5 * time.Second}
}

// Admin admits users whose role is exactly "Admin".
func (g *RoleGate) Admin() echo.MiddlewareFunc { return g.Require(model.RoleAdmin) }

// Volunteer admits users whose role is exactly "volunteer".
func (g *RoleGate) Volunteer() echo.MiddlewareFunc { return g.Require(model.RoleVolunteer) }

// Donor admits users whose role is exactly "donor".
func (g *RoleGate) Donor() echo.MiddlewareFunc { return g.Require(model.RoleDonor) }

// Require returns a middleware admitting callers whose stored role is one of
// roles.  Comparison is exact and case-sensitive.  It must run after
// VerifyToken; a request without an email claim is refused with 403.
func (g *RoleGate) Require(roles ...string) echo.MiddlewareFunc {
	return g.guard(func(u model.User) (int, string) {
		if !u.HasRole(roles...) {
			g.log.Debug("role gate refused",
				zap.String("email", u.Email),
				zap.String("role", u.Role),
				zap.Strings("required", roles))
			return http.StatusForbidden, ForbiddenMessage
		}
		return 0, ""
	})
}

// RequireActive refuses callers whose account has been blocked.
func (g *RoleGate) RequireActive() echo.MiddlewareFunc {
	return g.guard(func(u model.User) (int, string) {
		if u.Status == model.StatusInactive {
			return http.StatusForbidden, "account is blocked"
		}
		return 0, ""
	})
}

// guard loads the caller's user record and lets check decide.  A non-zero
// status from check ends the request with that status and message.
func (g *RoleGate) guard(check func(model.User) (int, string)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := ClaimedEmail(c)
			if email == "" {
				return deny(c, http.StatusForbidden)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), g.timeout)
			defer cancel()

			u, err := g.users.GetByEmail(ctx, email)
			if errors.Is(err, repository.ErrNotFound) {
				return deny(c, http.StatusForbidden)
			}
			if err != nil {
				g.log.Error("user lookup failed", zap.String("email", email), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, echo.Map{"message": "user lookup failed"})
			}
			if status, msg := check(u); status != 0 {
				return c.JSON(status, echo.Map{"message": msg})
			}
			return next(c)
		}
	}
}
