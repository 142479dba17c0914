package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Vinayak4780/Guard/internal/api/handlers/http/respond"
	"github.com/Vinayak4780/Guard/internal/auth"
	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/internal/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type QRLocations interface {
	CreateQRLocation(ctx context.Context, supervisor domain.Principal, label string) (domain.CreateQRLocationResponse, error)
	QRLocationForArea(ctx context.Context, areaID string) (*domain.QRLocation, error)
}

type ScanHistory interface {
	ListScans(ctx context.Context, f domain.ScanFilter) (domain.ListScansResponse, error)
}

type Dashboard interface {
	AreaDashboard(ctx context.Context, areaID string) (*domain.AreaDashboard, error)
}

type Guards interface {
	CreateGuard(ctx context.Context, supervisor domain.Principal, req domain.CreateGuardRequest) (*domain.Identity, error)
	ListGuards(ctx context.Context, supervisor domain.Principal, activeOnly bool, page, limit int) (domain.ListIdentitiesResponse, error)
}

type CreateQRRequest struct {
	Label string `json:"label" validate:"max=128"`
}

type Handler struct {
	logger  *slog.Logger
	QR      QRLocations
	History ScanHistory
	Stats   Dashboard
	Guards  Guards
}

func NewHandler(logger *slog.Logger, qr QRLocations, history ScanHistory, dashboard Dashboard, guards Guards) *Handler {
	return &Handler{
		logger:  logger,
		QR:      qr,
		History: history,
		Stats:   dashboard,
		Guards:  guards,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// principal returns the calling supervisor; supervisors without an area
// cannot use any of these endpoints.
func (h *Handler) principal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return p, false
	}
	if p.AreaID == "" {
		respond.Fail(w, http.StatusForbidden, "forbidden", "supervisor has no area assigned")
		return p, false
	}
	return p, true
}

func (h *Handler) CreateQR(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req CreateQRRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, middleware.ErrEmptyBody) {
		respond.Error(w, r, l, err)
		return
	}

	res, err := h.QR.CreateQRLocation(r.Context(), p, req.Label)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
		l.Info("qr location created", slog.String("qr_id", res.Location.ID), slog.String("area_id", p.AreaID))
	}
	respond.JSON(w, status, res)
}

func (h *Handler) GetQR(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	loc, err := h.QR.QRLocationForArea(r.Context(), p.AreaID)
	if err != nil {
		respond.Error(w, r, h.log(r), err)
		return
	}
	respond.JSON(w, http.StatusOK, loc)
}

func (h *Handler) AreaScans(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	page, limit := respond.Page(r)
	res, err := h.History.ListScans(r.Context(), domain.ScanFilter{AreaID: p.AreaID, Page: page, Limit: limit})
	if err != nil {
		respond.Error(w, r, h.log(r), err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	d, err := h.Stats.AreaDashboard(r.Context(), p.AreaID)
	if err != nil {
		respond.Error(w, r, h.log(r), err)
		return
	}
	respond.JSON(w, http.StatusOK, d)
}

func (h *Handler) CreateGuard(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req domain.CreateGuardRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, l, err)
		return
	}

	g, err := h.Guards.CreateGuard(r.Context(), p, req)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	l.Info("guard created", slog.String("id", g.ID.String()), slog.String("area_id", g.AreaID))
	respond.JSON(w, http.StatusCreated, g)
}

// ListGuards lists the caller's team; ?active_only=true hides deactivated guards.
func (h *Handler) ListGuards(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	activeOnly := false
	if v := r.URL.Query().Get("active_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respond.Fail(w, http.StatusBadRequest, "invalid_input", "active_only must be true or false")
			return
		}
		activeOnly = b
	}

	page, limit := respond.Page(r)
	res, err := h.Guards.ListGuards(r.Context(), p, activeOnly, page, limit)
	if err != nil {
		respond.Error(w, r, h.log(r), err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
