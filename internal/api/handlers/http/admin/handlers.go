package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Vinayak4780/Guard/internal/api/handlers/http/respond"
	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/internal/middleware"
	"github.com/Vinayak4780/Guard/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Identities interface {
	CreateIdentity(ctx context.Context, req domain.CreateIdentityRequest) (*domain.Identity, error)
	SetIdentityActive(ctx context.Context, id uuid.UUID, active bool) error
	ListIdentities(ctx context.Context, f domain.IdentityFilter) (domain.ListIdentitiesResponse, error)
}

// IdentityQuery is the query string accepted by the identity listings.
type IdentityQuery struct {
	Role       string `validate:"omitempty,role"`
	Supervisor string `validate:"omitempty,uuid"`
	Area       string `validate:"max=64"`
	Active     string `validate:"omitempty,oneof=true false"`
}

type QRLocations interface {
	ListQRLocations(ctx context.Context, page, limit int) ([]*domain.QRLocation, int64, error)
}

type ScanHistory interface {
	ListScans(ctx context.Context, f domain.ScanFilter) (domain.ListScansResponse, error)
}

type StatsGetter interface {
	SystemStats(ctx context.Context) (*domain.SystemStats, error)
}

type Handler struct {
	logger     *slog.Logger
	Identities Identities
	QR         QRLocations
	History    ScanHistory
	Stats      StatsGetter
}

func NewHandler(logger *slog.Logger, identities Identities, qr QRLocations, history ScanHistory, stats StatsGetter) *Handler {
	return &Handler{
		logger:     logger,
		Identities: identities,
		QR:         qr,
		History:    history,
		Stats:      stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) CreateIdentity(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("CreateIdentity", slog.String("remote", r.RemoteAddr))

	var req domain.CreateIdentityRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, l, err)
		return
	}

	id, err := h.Identities.CreateIdentity(r.Context(), req)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	l.Info("identity created",
		slog.String("id", id.ID.String()),
		slog.String("role", string(id.Role)),
		slog.String("area_id", id.AreaID),
	)
	respond.JSON(w, http.StatusCreated, id)
}

func (h *Handler) DeactivateIdentity(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *Handler) ReactivateIdentity(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		respond.Fail(w, http.StatusBadRequest, "invalid_input", "invalid id")
		return
	}

	if err := h.Identities.SetIdentityActive(r.Context(), id, active); err != nil {
		respond.Error(w, r, l, err)
		return
	}

	l.Info("identity active flag changed", slog.String("id", id.String()), slog.Bool("active", active))
	w.WriteHeader(http.StatusNoContent)
}

// ListIdentities filters by ?role=, ?supervisor=, ?area= and ?active=.
func (h *Handler) ListIdentities(w http.ResponseWriter, r *http.Request) {
	h.listIdentities(w, r, "")
}

func (h *Handler) ListSupervisors(w http.ResponseWriter, r *http.Request) {
	h.listIdentities(w, r, domain.RoleSupervisor)
}

func (h *Handler) ListGuards(w http.ResponseWriter, r *http.Request) {
	h.listIdentities(w, r, domain.RoleGuard)
}

func (h *Handler) listIdentities(w http.ResponseWriter, r *http.Request, role domain.Role) {
	l := h.log(r)
	l.Debug("ListIdentities", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	iq := IdentityQuery{
		Role:       strings.ToLower(q.Get("role")),
		Supervisor: q.Get("supervisor"),
		Area:       q.Get("area"),
		Active:     q.Get("active"),
	}
	if role != "" {
		iq.Role = string(role)
	}
	if err := validator.ValidateStruct(iq); err != nil {
		l.Warn("invalid identity query", slog.String("error", err.Error()))
		respond.Fail(w, http.StatusBadRequest, "invalid_input", "invalid role, supervisor, area or active filter")
		return
	}

	page, limit := respond.Page(r)
	f := domain.IdentityFilter{
		Role:   domain.Role(iq.Role),
		AreaID: iq.Area,
		Page:   page,
		Limit:  limit,
	}
	if iq.Supervisor != "" {
		f.SupervisorID = uuid.MustParse(iq.Supervisor)
	}
	if iq.Active != "" {
		active, _ := strconv.ParseBool(iq.Active)
		f.Active = &active
	}

	res, err := h.Identities.ListIdentities(r.Context(), f)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) ListQRLocations(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ListQRLocations", slog.String("query", r.URL.RawQuery))

	page, limit := respond.Page(r)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	locs, total, err := h.QR.ListQRLocations(r.Context(), page, limit)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	respond.JSON(w, http.StatusOK, domain.ListQRLocationsResponse{
		Locations: locs,
		Page:      page,
		Limit:     limit,
		Total:     total,
	})
}

// ListScans shows scans across all areas, or one area with ?area=.
func (h *Handler) ListScans(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	page, limit := respond.Page(r)
	f := domain.ScanFilter{
		AreaID: r.URL.Query().Get("area"),
		Page:   page,
		Limit:  limit,
	}
	if g := r.URL.Query().Get("guard"); g != "" {
		id, err := uuid.Parse(g)
		if err != nil {
			respond.Fail(w, http.StatusBadRequest, "invalid_input", "invalid guard id")
			return
		}
		f.GuardID = id
	}

	res, err := h.History.ListScans(r.Context(), f)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) SystemStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	stats, err := h.Stats.SystemStats(r.Context())
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	l.Info("stats success", slog.Int("areas", len(stats.Areas)))
	respond.JSON(w, http.StatusOK, stats)
}
