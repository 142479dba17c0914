package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Vinayak4780/Guard/internal/api/handlers/http/admin"
	"github.com/Vinayak4780/Guard/internal/api/handlers/http/authn"
	"github.com/Vinayak4780/Guard/internal/api/handlers/http/guard"
	"github.com/Vinayak4780/Guard/internal/api/handlers/http/supervisor"
	"github.com/Vinayak4780/Guard/internal/api/handlers/http/system"
	"github.com/Vinayak4780/Guard/internal/auth"
	"github.com/Vinayak4780/Guard/internal/config"
	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/internal/middleware"
	"github.com/Vinayak4780/Guard/internal/service"
)

type Handlers struct {
	Auth       *authn.Handler
	Guard      *guard.Handler
	Supervisor *supervisor.Handler
	Admin      *admin.Handler
	System     *system.Handler
	Metrics    http.Handler
}

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

// NewServer wires every handler to svc. ctx bounds the lifetime of the
// rate limiter sweepers.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, tokens *auth.Issuer, sys *system.Handler, metrics http.Handler) *Server {
	h := Handlers{
		Auth:       authn.NewHandler(logger, svc),
		Guard:      guard.NewHandler(logger, svc, svc),
		Supervisor: supervisor.NewHandler(logger, svc, svc, svc, svc),
		Admin:      admin.NewHandler(logger, svc, svc, svc, svc),
		System:     sys,
		Metrics:    metrics,
	}

	return &Server{
		logger: logger,
		router: InitRouter(ctx, cfg, h, tokens, logger),
		cfg:    *cfg,
	}
}

func InitRouter(ctx context.Context, cfg *config.Config, h Handlers, tokens *auth.Issuer, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/health", h.System.SystemHealth)

		api.With(middleware.Limit(ctx, cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst, 10*time.Minute, logger)).
			Post("/auth/login", h.Auth.Login)

		api.Group(func(pr chi.Router) {
			pr.Use(auth.Bearer(tokens, logger))

			// GUARD
			pr.Group(func(gr chi.Router) {
				gr.Use(auth.RequireRole(domain.RoleGuard))

				gr.Route("/scan", func(sr chi.Router) {
					sr.With(middleware.Limit(ctx, cfg.RateLimit.ScanRPS, cfg.RateLimit.ScanBurst, 5*time.Minute, logger)).
						Post("/", h.Guard.Scan)
					sr.Post("/validate", h.Guard.Validate)
				})
				gr.Get("/guard/scans", h.Guard.MyScans)
			})

			// SUPERVISOR
			pr.Route("/supervisor", func(sr chi.Router) {
				sr.Use(auth.RequireRole(domain.RoleSupervisor))

				sr.Post("/qr", h.Supervisor.CreateQR)
				sr.Get("/qr", h.Supervisor.GetQR)
				sr.Get("/scans", h.Supervisor.AreaScans)
				sr.Get("/dashboard", h.Supervisor.Dashboard)
				sr.Post("/guards", h.Supervisor.CreateGuard)
				sr.Get("/guards", h.Supervisor.ListGuards)
			})

			// ADMIN
			pr.Route("/admin", func(ar chi.Router) {
				ar.Use(auth.RequireRole(domain.RoleAdmin))

				ar.Post("/identities", h.Admin.CreateIdentity)
				ar.Get("/identities", h.Admin.ListIdentities)
				ar.Post("/identities/{id}/deactivate", h.Admin.DeactivateIdentity)
				ar.Post("/identities/{id}/reactivate", h.Admin.ReactivateIdentity)
				ar.Get("/supervisors", h.Admin.ListSupervisors)
				ar.Get("/guards", h.Admin.ListGuards)
				ar.Get("/qr", h.Admin.ListQRLocations)
				ar.Get("/scans", h.Admin.ListScans)
				ar.Get("/stats", h.Admin.SystemStats)
				ar.Get("/system/health", h.System.AdminSystemHealth)
			})
		})
	})

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
