package system

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/Vinayak4780/Guard/internal/api/handlers/http/respond"
)

//go:generate mockgen -source=health.go -destination=mocks/mock.go
type Pinger interface {
	Ping(ctx context.Context) error
}

type QueueDepth interface {
	Len(ctx context.Context) (int64, error)
}

// Info is static configuration echoed by the admin health report.
type Info struct {
	Env             string  `json:"env"`
	RadiusMeters    float64 `json:"radius_meters"`
	GeocodeEnabled  bool    `json:"geocode_enabled"`
	ExportEnabled   bool    `json:"export_enabled"`
	ExportWorkers   int     `json:"export_workers"`
	ScanRateLimitPS int     `json:"scan_rate_limit_rps"`
}

type Dependency struct {
	Name      string `json:"name"`
	Healthy   bool   `json:"healthy"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

type Report struct {
	Status       string       `json:"status"`
	Dependencies []Dependency `json:"dependencies"`
	ExportQueue  *int64       `json:"export_queue_depth,omitempty"`
	Info         Info         `json:"info"`
	CheckedAt    time.Time    `json:"checked_at"`
}

type Handler struct {
	logger *slog.Logger
	deps   map[string]Pinger
	queue  QueueDepth
	info   Info
}

func NewHandler(logger *slog.Logger, deps map[string]Pinger, queue QueueDepth, info Info) *Handler {
	return &Handler{logger: logger, deps: deps, queue: queue, info: info}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// AdminSystemHealth pings every dependency. Any failure turns the report
// "degraded" and the status 503.
func (h *Handler) AdminSystemHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.deps))
	for name := range h.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	rep := Report{Status: "ok", Info: h.info, CheckedAt: time.Now().UTC()}
	for _, name := range names {
		start := time.Now()
		err := h.deps[name].Ping(ctx)

		d := Dependency{Name: name, Healthy: err == nil, LatencyMS: time.Since(start).Milliseconds()}
		if err != nil {
			d.Error = err.Error()
			rep.Status = "degraded"
			h.logger.Warn("dependency unhealthy", slog.String("name", name), slog.Any("error", err))
		}
		rep.Dependencies = append(rep.Dependencies, d)
	}

	if h.queue != nil {
		if n, err := h.queue.Len(ctx); err == nil {
			rep.ExportQueue = &n
		}
	}

	status := http.StatusOK
	if rep.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	respond.JSON(w, status, rep)
}
