package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bloodbanker/bloodbanker-server/internal/middleware"
	"github.com/bloodbanker/bloodbanker-server/internal/model"
)

type BlogStore interface {
	List(ctx context.Context, status string) ([]model.BlogPost, error)
	Get(ctx context.Context, id string) (model.BlogPost, error)
	Create(ctx context.Context, p model.BlogPost) (model.InsertResult, error)
	SetStatus(ctx context.Context, id, status string) (model.UpdateResult, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
}

type BlogHandler struct {
	Blogs BlogStore
	Cache CacheInvalidator
	Log   *zap.Logger
}

func NewBlogHandler(store BlogStore, cache CacheInvalidator, log *zap.Logger) *BlogHandler {
	if store == nil {
		panic("nil blog store passed to NewBlogHandler")
	}
	return &BlogHandler{Blogs: store, Cache: cache, Log: log}
}

type createBlogReq struct {
	Title     string `json:"title" validate:"required,max=200"`
	Thumbnail string `json:"thumbnail" validate:"omitempty,url"`
	Content   string `json:"content" validate:"required"`
}

type blogStatusReq struct {
	Status string `json:"status" validate:"required,oneof=draft published"`
}

func (h *BlogHandler) List(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	posts, err := h.Blogs.List(ctx, c.QueryParam("status"))
	if err != nil {
		return storeError(c, h.Log, "list blogs", err)
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) Get(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	p, err := h.Blogs.Get(ctx, c.Param("id"))
	if err != nil {
		return storeError(c, h.Log, "get blog", err)
	}
	return c.JSON(http.StatusOK, p)
}

// Create stores a draft authored by the caller.
func (h *BlogHandler) Create(c echo.Context) error {
	var req createBlogReq
	if err := bindValid(c, &req); err != nil {
		return message(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Blogs.Create(ctx, model.BlogPost{
		Title:       req.Title,
		Thumbnail:   req.Thumbnail,
		Content:     req.Content,
		AuthorEmail: middleware.ClaimedEmail(c),
	})
	if err != nil {
		return storeError(c, h.Log, "create blog", err)
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusOK, res)
}

// SetStatus publishes or unpublishes a post.
func (h *BlogHandler) SetStatus(c echo.Context) error {
	var req blogStatusReq
	if err := bindValid(c, &req); err != nil {
		return message(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Blogs.SetStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return storeError(c, h.Log, "update blog", err)
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusOK, res)
}

func (h *BlogHandler) Delete(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Blogs.Delete(ctx, c.Param("id"))
	if err != nil {
		return storeError(c, h.Log, "delete blog", err)
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusOK, res)
}

func (h *BlogHandler) invalidate(ctx context.Context) {
	if h.Cache != nil {
		h.Cache.Invalidate(ctx, "/blog", "/blog/:id")
	}
}
