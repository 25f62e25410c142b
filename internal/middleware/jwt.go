package middleware // middleware provides the authentication and authorization chain

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bloodbanker/bloodbanker-server/internal/utils"
)

// VerifyToken returns a middleware that requires an Authorization header of
// the form "Bearer <credential>".  The header is split on whitespace and the
// second field is verified; a missing header or a failed verification ends
// the request with 401.  Decoded claims are stored under ClaimsKey for the
// remainder of this request only.
func VerifyToken(issuer *utils.TokenIssuer, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if auth == "" {
				return deny(c, http.StatusUnauthorized)
			}

			var raw string
			if fields := strings.Fields(auth); len(fields) > 1 {
				raw = fields[1]
			}
			claims, err := issuer.Verify(raw)
			if err != nil {
				log.Debug("credential rejected",
					zap.String("path", c.Path()),
					zap.Error(err))
				return deny(c, http.StatusUnauthorized)
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// MatchEmailParam rejects with 403 when the :param path segment differs from
// the verified email claim.  It must run after VerifyToken.
func MatchEmailParam(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := ClaimedEmail(c)
			if email == "" || PathParam(c, param) != email {
				return deny(c, http.StatusForbidden)
			}
			return next(c)
		}
	}
}

// PathParam returns the unescaped value of a path parameter.
func PathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
