package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bloodbanker/bloodbanker-server/internal/middleware"
	"github.com/bloodbanker/bloodbanker-server/internal/utils"
)

// TokenIssuer signs a credential around an arbitrary payload.
type TokenIssuer interface {
	Issue(claims map[string]interface{}) (string, error)
}

// AuthHandler exchanges a claims payload for a signed credential.
type AuthHandler struct {
	Issuer TokenIssuer
	Log    *zap.Logger
}

func NewAuthHandler(issuer TokenIssuer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{Issuer: issuer, Log: log}
}

// IssueToken handles POST /jwt.  The JSON body is embedded in the
// credential as-is; the response is {"token": "..."}.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	claims, err := bindMap(c)
	if err != nil {
		return message(c, http.StatusBadRequest, err.Error())
	}
	token, err := h.Issuer.Issue(claims)
	if err != nil {
		if errors.Is(err, utils.ErrSigning) {
			h.Log.Error("credential signing failed", zap.Error(err))
		}
		return message(c, http.StatusInternalServerError, "issue token failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// Me handles GET /me and echoes the verified claims.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, _ := middleware.Claims(c)
	return c.JSON(http.StatusOK, claims)
}
