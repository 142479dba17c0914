package system_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Vinayak4780/Guard/internal/api/handlers/http/system"
	mock_system "github.com/Vinayak4780/Guard/internal/api/handlers/http/system/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSystemHealth(t *testing.T) {
	t.Parallel()

	h := system.NewHandler(newTestLogger(), nil, nil, system.Info{})
	rr := httptest.NewRecorder()
	h.SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("unexpected response %d %q", rr.Code, rr.Body.String())
	}
}

func TestAdminSystemHealth(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	db := mock_system.NewMockPinger(ctrl)
	cache := mock_system.NewMockPinger(ctrl)
	queue := mock_system.NewMockQueueDepth(ctrl)

	h := system.NewHandler(newTestLogger(),
		map[string]system.Pinger{"postgres": db, "redis": cache},
		queue,
		system.Info{Env: "test", RadiusMeters: 100, ExportEnabled: true},
	)

	db.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		cache.EXPECT().Ping(gomock.Any()).Return(nil),
		cache.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused")),
	)
	queue.EXPECT().Len(gomock.Any()).Return(int64(7), nil).Times(2)

	rr := httptest.NewRecorder()
	h.AdminSystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/system/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	var rep system.Report
	if err := json.Unmarshal(rr.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.Status != "ok" || len(rep.Dependencies) != 2 || rep.Dependencies[0].Name != "postgres" {
		t.Fatalf("unexpected report %+v", rep)
	}
	if rep.ExportQueue == nil || *rep.ExportQueue != 7 {
		t.Fatalf("expected queue depth 7, got %v", rep.ExportQueue)
	}

	rr = httptest.NewRecorder()
	h.AdminSystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/system/health", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rr.Code)
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &rep)
	if rep.Status != "degraded" || rep.Dependencies[1].Healthy {
		t.Fatalf("unexpected report %+v", rep)
	}
}
