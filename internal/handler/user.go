package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bloodbanker/bloodbanker-server/internal/middleware"
	"github.com/bloodbanker/bloodbanker-server/internal/model"
	"github.com/bloodbanker/bloodbanker-server/internal/repository"
)

// UserStore is the user persistence used by UserHandler.
type UserStore interface {
	List(ctx context.Context, status string) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, u model.User) (model.InsertResult, error)
	UpdateProfile(ctx context.Context, id string, body map[string]interface{}) (model.UpdateResult, error)
	SetStatus(ctx context.Context, id, status string) (model.UpdateResult, error)
	SetRole(ctx context.Context, id, role string) (model.UpdateResult, error)
}

// UserHandler serves registration, profile and administration of users.
type UserHandler struct {
	Users UserStore
	Log   *zap.Logger
}

func NewUserHandler(users UserStore, log *zap.Logger) *UserHandler {
	if users == nil {
		panic("nil user store passed to NewUserHandler")
	}
	return &UserHandler{Users: users, Log: log}
}

type statusReq struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

type roleReq struct {
	Role string `json:"role" validate:"required,role"`
}

// List handles GET /users.  ?status= narrows the result.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	users, err := h.Users.List(ctx, c.QueryParam("status"))
	if err != nil {
		return storeError(c, h.Log, "list users", err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetByEmail handles GET /users/:email.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	u, err := h.Users.GetByEmail(ctx, middleware.PathParam(c, "email"))
	if err != nil {
		return storeError(c, h.Log, "get user", err)
	}
	return c.JSON(http.StatusOK, u)
}

// HasRole builds the GET /users/<key>/:email handlers answering
// {"<key>": bool}.  An unknown user is reported as false.
func (h *UserHandler) HasRole(key, role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := storeCtx(c)
		defer cancel()
		u, err := h.Users.GetByEmail(ctx, middleware.PathParam(c, "email"))
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return storeError(c, h.Log, "get user", err)
		}
		return c.JSON(http.StatusOK, echo.Map{key: err == nil && u.Role == role})
	}
}

// Create handles POST /user.  A second registration with the same email
// answers 200 with a message and stores nothing.
func (h *UserHandler) Create(c echo.Context) error {
	var u model.User
	if err := c.Bind(&u); err != nil {
		return message(c, http.StatusBadRequest, errInvalidBody.Error())
	}
	u.Email = strings.TrimSpace(u.Email)
	if u.Email == "" {
		return message(c, http.StatusBadRequest, "email required")
	}
	// Registration never grants privileges; roles are assigned by an admin.
	u.ID = primitive.NilObjectID
	u.Role, u.Status = "", ""

	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Users.Create(ctx, u)
	if errors.Is(err, repository.ErrEmailExists) {
		return message(c, http.StatusOK, "user already exist")
	}
	if err != nil {
		return storeError(c, h.Log, "create user", err)
	}
	return c.JSON(http.StatusOK, res)
}

// UpdateProfile handles PUT /user/:id.  Only repository.ProfileFields are
// written.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	body, err := bindMap(c)
	if err != nil {
		return message(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Users.UpdateProfile(ctx, c.Param("id"), body)
	if err != nil {
		return storeError(c, h.Log, "update user", err)
	}
	return c.JSON(http.StatusOK, res)
}

// SetStatus handles PATCH /user/status/:id.
func (h *UserHandler) SetStatus(c echo.Context) error {
	var req statusReq
	if err := bindValid(c, &req); err != nil {
		return message(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Users.SetStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return storeError(c, h.Log, "update user status", err)
	}
	return c.JSON(http.StatusOK, res)
}

// SetRole handles PATCH /user/role/:id.
func (h *UserHandler) SetRole(c echo.Context) error {
	var req roleReq
	if err := bindValid(c, &req); err != nil {
		return message(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Users.SetRole(ctx, c.Param("id"), req.Role)
	if err != nil {
		return storeError(c, h.Log, "update user role", err)
	}
	h.Log.Info("user role changed", zap.String("id", c.Param("id")), zap.String("role", req.Role))
	return c.JSON(http.StatusOK, res)
}
