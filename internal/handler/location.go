package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bloodbanker/bloodbanker-server/internal/model"
)

// LocationStore serves the district and upazila reference data.
type LocationStore interface {
	Districts(ctx context.Context) ([]model.District, error)
	Upazilas(ctx context.Context, districtID string) ([]model.Upazila, error)
	AddDistrict(ctx context.Context, d model.District) (model.InsertResult, error)
	AddUpazila(ctx context.Context, u model.Upazila) (model.InsertResult, error)
}

// LocationHandler exposes the geo lookups used by registration forms.
type LocationHandler struct {
	Locations LocationStore
	Cache     CacheInvalidator
	Log       *zap.Logger
}

func NewLocationHandler(store LocationStore, cache CacheInvalidator, log *zap.Logger) *LocationHandler {
	return &LocationHandler{Locations: store, Cache: cache, Log: log}
}

type districtReq struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	BnName string `json:"bn_name"`
	URL    string `json:"url"`
}

type upazilaReq struct {
	ID         string `json:"id" validate:"required"`
	DistrictID string `json:"district_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	BnName     string `json:"bn_name"`
	URL        string `json:"url"`
}

// Districts handles GET /district.
func (h *LocationHandler) Districts(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	out, err := h.Locations.Districts(ctx)
	if err != nil {
		return storeError(c, h.Log, "list districts", err)
	}
	return c.JSON(http.StatusOK, out)
}

// Upazilas handles GET /upazila; ?district_id= narrows to one district.
func (h *LocationHandler) Upazilas(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	out, err := h.Locations.Upazilas(ctx, c.QueryParam("district_id"))
	if err != nil {
		return storeError(c, h.Log, "list upazilas", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LocationHandler) AddDistrict(c echo.Context) error {
	var req districtReq
	if err := bindValid(c, &req); err != nil {
		return message(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Locations.AddDistrict(ctx, model.District{ID: req.ID, Name: req.Name, BnName: req.BnName, URL: req.URL})
	if err != nil {
		return storeError(c, h.Log, "add district", err)
	}
	h.invalidate(ctx, "/district")
	return c.JSON(http.StatusOK, res)
}

func (h *LocationHandler) AddUpazila(c echo.Context) error {
	var req upazilaReq
	if err := bindValid(c, &req); err != nil {
		return message(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Locations.AddUpazila(ctx, model.Upazila{
		ID:         req.ID,
		DistrictID: req.DistrictID,
		Name:       req.Name,
		BnName:     req.BnName,
		URL:        req.URL,
	})
	if err != nil {
		return storeError(c, h.Log, "add upazila", err)
	}
	h.invalidate(ctx, "/upazila")
	return c.JSON(http.StatusOK, res)
}

func (h *LocationHandler) invalidate(ctx context.Context, route string) {
	if h.Cache != nil {
		h.Cache.Invalidate(ctx, route)
	}
}
