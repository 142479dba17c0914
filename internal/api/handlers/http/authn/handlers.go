// Package authn serves the login endpoint.
package authn

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Vinayak4780/Guard/internal/api/handlers/http/respond"
	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/internal/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type LoginService interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
}

type Handler struct {
	logger *slog.Logger
	Auth   LoginService
}

func NewHandler(logger *slog.Logger, svc LoginService) *Handler {
	return &Handler{logger: logger, Auth: svc}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	l := h.logger
	if reqID := chimw.GetReqID(r.Context()); reqID != "" {
		l = l.With(slog.String("request_id", reqID))
	}

	var req domain.LoginRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, l, err)
		return
	}

	res, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		respond.Error(w, r, l, err)
		return
	}

	l.Info("login", slog.String("role", string(res.Role)))
	respond.JSON(w, http.StatusOK, res)
}
