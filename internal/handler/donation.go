package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bloodbanker/bloodbanker-server/internal/middleware"
	"github.com/bloodbanker/bloodbanker-server/internal/model"
	"github.com/bloodbanker/bloodbanker-server/internal/queue"
)

// DonationStore is the donation request persistence used by DonationHandler.
type DonationStore interface {
	List(ctx context.Context, status string) ([]model.DonationRequest, error)
	ListByRequester(ctx context.Context, email, status string, limit int64) ([]model.DonationRequest, error)
	Get(ctx context.Context, id string) (model.DonationRequest, error)
	Create(ctx context.Context, d model.DonationRequest) (model.InsertResult, error)
	Update(ctx context.Context, id string, body map[string]interface{}) (model.UpdateResult, error)
	SetStatus(ctx context.Context, id, status, donorName, donorEmail string) (model.UpdateResult, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
}

// DonationHandler serves donation requests.  Writes publish a DonationEvent
// and drop the cached public listing.
type DonationHandler struct {
	Donations DonationStore
	Events    EventPublisher
	Cache     CacheInvalidator
	Log       *zap.Logger
}

func NewDonationHandler(store DonationStore, events EventPublisher, cache CacheInvalidator, log *zap.Logger) *DonationHandler {
	if store == nil {
		panic("nil donation store passed to NewDonationHandler")
	}
	return &DonationHandler{Donations: store, Events: events, Cache: cache, Log: log}
}

type createDonationReq struct {
	RequesterName  string `json:"requesterName" validate:"required"`
	RecipientName  string `json:"recipientName" validate:"required"`
	District       string `json:"district" validate:"required"`
	Upazila        string `json:"upazila" validate:"required"`
	HospitalName   string `json:"hospitalName" validate:"required"`
	FullAddress    string `json:"fullAddress" validate:"required"`
	BloodGroup     string `json:"bloodGroup" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DonationDate   string `json:"donationDate" validate:"required"`
	DonationTime   string `json:"donationTime" validate:"required"`
	RequestMessage string `json:"requestMessage"`
}

type donationStatusReq struct {
	Status     string `json:"status" validate:"required,donation_status"`
	DonorName  string `json:"donorName"`
	DonorEmail string `json:"donorEmail" validate:"omitempty,email"`
}

// ListPending handles GET /donations, the public board of open requests.
func (h *DonationHandler) ListPending(c echo.Context) error {
	return h.list(c, model.DonationPending)
}

// ListAll handles GET /donations/all for staff.  ?status= narrows it.
func (h *DonationHandler) ListAll(c echo.Context) error {
	return h.list(c, c.QueryParam("status"))
}

func (h *DonationHandler) list(c echo.Context, status string) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	out, err := h.Donations.List(ctx, status)
	if err != nil {
		return storeError(c, h.Log, "list donations", err)
	}
	return c.JSON(http.StatusOK, out)
}

// ListMine handles GET /donations/:email.  ?status= and ?limit= are
// optional.
func (h *DonationHandler) ListMine(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	out, err := h.Donations.ListByRequester(ctx, middleware.PathParam(c, "email"), c.QueryParam("status"), queryLimit(c))
	if err != nil {
		return storeError(c, h.Log, "list donations", err)
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /donation/:id.
func (h *DonationHandler) Get(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	d, err := h.Donations.Get(ctx, c.Param("id"))
	if err != nil {
		return storeError(c, h.Log, "get donation", err)
	}
	return c.JSON(http.StatusOK, d)
}

// Create handles POST /donation.  The requester is always the caller.
func (h *DonationHandler) Create(c echo.Context) error {
	var req createDonationReq
	if err := bindValid(c, &req); err != nil {
		return message(c, http.StatusBadRequest, err.Error())
	}
	d := model.DonationRequest{
		RequesterName:  req.RequesterName,
		RequesterEmail: middleware.ClaimedEmail(c),
		RecipientName:  req.RecipientName,
		District:       req.District,
		Upazila:        req.Upazila,
		HospitalName:   req.HospitalName,
		FullAddress:    req.FullAddress,
		BloodGroup:     req.BloodGroup,
		DonationDate:   req.DonationDate,
		DonationTime:   req.DonationTime,
		RequestMessage: req.RequestMessage,
	}

	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Donations.Create(ctx, d)
	if err != nil {
		return storeError(c, h.Log, "create donation", err)
	}
	h.afterWrite(ctx, queue.DonationEvent{
		Type:           queue.DonationCreated,
		DonationID:     idString(res.InsertedID),
		RequesterEmail: d.RequesterEmail,
		BloodGroup:     d.BloodGroup,
		District:       d.District,
		Status:         model.DonationPending,
	})
	return c.JSON(http.StatusOK, res)
}

// Update handles PUT /donation/:id.  Only repository.DonationFields are
// written.
func (h *DonationHandler) Update(c echo.Context) error {
	body, err := bindMap(c)
	if err != nil {
		return message(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Donations.Update(ctx, c.Param("id"), body)
	if err != nil {
		return storeError(c, h.Log, "update donation", err)
	}
	h.invalidate(ctx)
	return c.JSON(http.StatusOK, res)
}

// SetStatus handles PATCH /donation/status/:id.
func (h *DonationHandler) SetStatus(c echo.Context) error {
	var req donationStatusReq
	if err := bindValid(c, &req); err != nil {
		return message(c, http.StatusBadRequest, err.Error())
	}
	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Donations.SetStatus(ctx, c.Param("id"), req.Status, req.DonorName, req.DonorEmail)
	if err != nil {
		return storeError(c, h.Log, "update donation status", err)
	}
	h.afterWrite(ctx, queue.DonationEvent{
		Type:       queue.DonationStatusChanged,
		DonationID: c.Param("id"),
		Status:     req.Status,
		DonorEmail: req.DonorEmail,
		ActorEmail: middleware.ClaimedEmail(c),
	})
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /donation/:id.
func (h *DonationHandler) Delete(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()
	res, err := h.Donations.Delete(ctx, c.Param("id"))
	if err != nil {
		return storeError(c, h.Log, "delete donation", err)
	}
	h.afterWrite(ctx, queue.DonationEvent{
		Type:       queue.DonationDeleted,
		DonationID: c.Param("id"),
		ActorEmail: middleware.ClaimedEmail(c),
	})
	return c.JSON(http.StatusOK, res)
}

func (h *DonationHandler) invalidate(ctx context.Context) {
	if h.Cache != nil {
		h.Cache.Invalidate(ctx, "/donations")
	}
}

// afterWrite drops the cached board and publishes ev without blocking the
// response.  Publishing failures are logged only.
func (h *DonationHandler) afterWrite(ctx context.Context, ev queue.DonationEvent) {
	h.invalidate(ctx)
	if h.Events == nil {
		return
	}
	ev.ID = uuid.NewString()
	ev.At = time.Now().UTC().Format(time.RFC3339)
	go func() {
		pctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.Events.Publish(pctx, ev); err != nil {
			h.Log.Warn("donation event not published", zap.String("type", ev.Type), zap.Error(err))
		}
	}()
}
