package middleware

// identity.go holds the helpers that read verified claims back out of the
// echo context.  Claims are stored per request by VerifyToken.

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ClaimsKey is the echo context key holding the decoded jwt.MapClaims.
const ClaimsKey = "decoded"

// ForbiddenMessage is the body text of every 401/403 produced here.
const ForbiddenMessage = "forbidden access"

// Claims returns the verified claims for this request, if any.
func Claims(c echo.Context) (jwt.MapClaims, bool) {
	cl, ok := c.Get(ClaimsKey).(jwt.MapClaims)
	return cl, ok && cl != nil
}

// ClaimedEmail returns the email claim, or "" when absent.
func ClaimedEmail(c echo.Context) string {
	cl, ok := Claims(c)
	if !ok {
		return ""
	}
	email, _ := cl["email"].(string)
	return email
}

// userID identifies the caller for rate-limit keys; "guest" when
// unauthenticated.
func userID(c echo.Context) string {
	if email := ClaimedEmail(c); email != "" {
		return email
	}
	return "guest"
}

func deny(c echo.Context, status int) error {
	return c.JSON(status, echo.Map{"message": ForbiddenMessage})
}
