package guard

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Vinayak4780/Guard/internal/api/handlers/http/respond"
	"github.com/Vinayak4780/Guard/internal/auth"
	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/internal/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Scanner interface {
	Scan(ctx context.Context, req domain.ScanRequest) (domain.ScanResult, error)
	ValidateQR(ctx context.Context, req domain.ValidateRequest) (domain.ValidateResult, error)
}

type ScanHistory interface {
	ListScans(ctx context.Context, f domain.ScanFilter) (domain.ListScansResponse, error)
}

type Handler struct {
	logger  *slog.Logger
	Scanner Scanner
	History ScanHistory
}

func NewHandler(logger *slog.Logger, scanner Scanner, history ScanHistory) *Handler {
	return &Handler{
		logger:  logger,
		Scanner: scanner,
		History: history,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var req domain.ScanRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, l, err)
		return
	}

	if !strings.EqualFold(strings.TrimSpace(req.GuardEmail), p.Email) {
		l.Warn("guard email does not match token",
			slog.String("token_email", p.Email),
			slog.String("body_email", req.GuardEmail),
		)
		respond.Fail(w, http.StatusForbidden, "forbidden", "guard_email does not match the authenticated guard")
		return
	}

	res, err := h.Scanner.Scan(r.Context(), req)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	l.Info("scan handled", slog.String("qr_id", res.QRID), slog.String("outcome", string(res.Outcome)))
	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.ValidateRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, l, err)
		return
	}

	res, err := h.Scanner.ValidateQR(r.Context(), req)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

// MyScans lists the calling guard's own scan history.
func (h *Handler) MyScans(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	page, limit := respond.Page(r)
	res, err := h.History.ListScans(r.Context(), domain.ScanFilter{GuardID: p.ID, Page: page, Limit: limit})
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
