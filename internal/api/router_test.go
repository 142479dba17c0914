package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Vinayak4780/Guard/internal/api"
	"github.com/Vinayak4780/Guard/internal/api/handlers/http/system"
	"github.com/Vinayak4780/Guard/internal/auth"
	"github.com/Vinayak4780/Guard/internal/config"
	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/internal/metrics"
	"github.com/Vinayak4780/Guard/internal/service"
	"github.com/Vinayak4780/Guard/internal/storage/memory"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type testServer struct {
	t   *testing.T
	srv *httptest.Server
	svc *service.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := newTestLogger()
	cfg := &config.Config{
		Http:      config.HttpConfig{Port: ":0"},
		Scan:      config.ScanConfig{RadiusMeters: 100},
		RateLimit: config.RateLimitConfig{ScanRPS: 100, ScanBurst: 100, AuthRPS: 100, AuthBurst: 100},
	}

	locations := memory.NewQRLocationStore()
	events := memory.NewScanEventStore()
	identities := memory.NewIdentityStore()
	tokens := auth.NewIssuer("test-secret", "guard-patrol", time.Hour)
	m := metrics.New()

	svc := service.NewService(
		service.NewScanService(service.ScanDeps{
			Locations: locations,
			Events:    events,
			Guards:    identities,
			Metrics:   m,
		}, service.ScanConfig{RadiusMeters: cfg.Scan.RadiusMeters}, logger),
		service.NewQRLocationService(locations, logger),
		service.NewHistoryService(events, logger),
		service.NewStatsService(service.StatsDeps{
			Stats:      events,
			Events:     events,
			Locations:  locations,
			Identities: identities,
		}, logger),
		service.NewIdentityService(identities, tokens, logger),
	)

	sys := system.NewHandler(logger, nil, nil, system.Info{Env: "test"})
	server := api.NewServer(ctx, cfg, logger, svc, tokens, sys, m.Handler())

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return &testServer{t: t, srv: ts, svc: svc}
}

func (s *testServer) do(method, path, token string, body any, out any) int {
	s.t.Helper()

	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req, _ := http.NewRequest(method, s.srv.URL+path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		s.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, out); err != nil {
			s.t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()

	var res domain.LoginResponse
	code := s.do(http.MethodPost, "/api/v1/auth/login", "", domain.LoginRequest{Email: email, Password: password}, &res)
	if code != http.StatusOK {
		s.t.Fatalf("login %s: status %d", email, code)
	}
	return res.AccessToken
}

func TestRouter_PatrolFlow(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	ctx := context.Background()

	if _, err := s.svc.BootstrapAdmin(ctx, "admin@example.com", "admin-pass"); err != nil {
		t.Fatalf("bootstrap admin: %v", err)
	}
	adminTok := s.login("admin@example.com", "admin-pass")

	var sup domain.Identity
	if code := s.do(http.MethodPost, "/api/v1/admin/identities", adminTok, domain.CreateIdentityRequest{
		Email: "sup@example.com", Name: "Sup", Password: "sup-password", Role: domain.RoleSupervisor, AreaID: "area-1",
	}, &sup); code != http.StatusCreated {
		t.Fatalf("create supervisor: %d", code)
	}
	if code := s.do(http.MethodPost, "/api/v1/admin/identities", adminTok, domain.CreateIdentityRequest{
		Email: "guard@example.com", Name: "Guard", Password: "guard-password", Role: domain.RoleGuard, SupervisorID: &sup.ID,
	}, nil); code != http.StatusCreated {
		t.Fatalf("create guard: %d", code)
	}

	supTok := s.login("sup@example.com", "sup-password")
	guardTok := s.login("guard@example.com", "guard-password")

	var created domain.CreateQRLocationResponse
	if code := s.do(http.MethodPost, "/api/v1/supervisor/qr", supTok, map[string]string{"label": "Main gate"}, &created); code != http.StatusCreated {
		t.Fatalf("create qr: %d", code)
	}
	qrID := created.Location.ID

	scan := func(content string, lat, lng float64) (int, domain.ScanResult) {
		var res domain.ScanResult
		code := s.do(http.MethodPost, "/api/v1/scan", guardTok, domain.ScanRequest{
			QRContent: content, GuardEmail: "guard@example.com", Lat: &lat, Lng: &lng,
		}, &res)
		return code, res
	}

	if code := s.do(http.MethodPost, "/api/v1/scan", guardTok, map[string]string{
		"qr_content": qrID, "guard_email": "guard@example.com",
	}, nil); code != http.StatusBadRequest {
		t.Fatalf("scan without coordinates: expected 400 got %d", code)
	}

	// the rejected scan above must not have bound the location
	code, res := scan(qrID, 12.9716, 77.5946)
	if code != http.StatusOK || res.Outcome != domain.ScanBound {
		t.Fatalf("first scan: %d %+v", code, res)
	}

	code, res = scan(fmt.Sprintf(`{"qr_id":%q}`, qrID), 12.9717, 77.5946)
	if code != http.StatusOK || res.Outcome != domain.ScanAccepted || !res.WithinRadius {
		t.Fatalf("nearby scan: %d %+v", code, res)
	}

	code, res = scan("https://patrol.example.com/scan/"+qrID, 12.9816, 77.5946)
	if code != http.StatusOK || res.Outcome != domain.ScanRejectedOutOfRange || res.WithinRadius {
		t.Fatalf("far scan: %d %+v", code, res)
	}

	if code, _ := scan("QR-DOESNOTEXIST", 12.9716, 77.5946); code != http.StatusNotFound {
		t.Fatalf("unknown qr: expected 404 got %d", code)
	}
	if code, _ := scan("hello world", 12.9716, 77.5946); code != http.StatusBadRequest {
		t.Fatalf("garbage content: expected 400 got %d", code)
	}

	var dash domain.AreaDashboard
	if code := s.do(http.MethodGet, "/api/v1/supervisor/dashboard", supTok, nil, &dash); code != http.StatusOK {
		t.Fatalf("dashboard: %d", code)
	}
	if dash.TotalScans != 3 || dash.AssignedGuards != 1 || !dash.HasQRLocation {
		t.Fatalf("unexpected dashboard %+v", dash)
	}

	var mine domain.ListScansResponse
	if code := s.do(http.MethodGet, "/api/v1/guard/scans", guardTok, nil, &mine); code != http.StatusOK || mine.Total != 3 {
		t.Fatalf("guard history: %d total=%d", code, mine.Total)
	}

	var stats domain.SystemStats
	if code := s.do(http.MethodGet, "/api/v1/admin/stats", adminTok, nil, &stats); code != http.StatusOK || stats.TotalScans != 3 {
		t.Fatalf("admin stats: %d %+v", code, stats)
	}

	resp, err := http.Get(s.srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `guard_scans_total{outcome="bound"} 1`) {
		t.Fatalf("metrics missing bound counter")
	}
}

func TestRouter_RoleBoundaries(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	if _, err := s.svc.BootstrapAdmin(context.Background(), "admin@example.com", "admin-pass"); err != nil {
		t.Fatalf("bootstrap admin: %v", err)
	}
	adminTok := s.login("admin@example.com", "admin-pass")

	if code := s.do(http.MethodPost, "/api/v1/scan", "", nil, nil); code != http.StatusUnauthorized {
		t.Fatalf("scan without token: expected 401 got %d", code)
	}
	if code := s.do(http.MethodPost, "/api/v1/scan", adminTok, nil, nil); code != http.StatusForbidden {
		t.Fatalf("scan as admin: expected 403 got %d", code)
	}
	if code := s.do(http.MethodGet, "/api/v1/supervisor/dashboard", adminTok, nil, nil); code != http.StatusForbidden {
		t.Fatalf("dashboard as admin: expected 403 got %d", code)
	}
	if code := s.do(http.MethodGet, "/api/v1/health", "", nil, nil); code != http.StatusOK {
		t.Fatalf("health: expected 200 got %d", code)
	}
	if code := s.do(http.MethodPost, "/api/v1/auth/login", "", domain.LoginRequest{Email: "admin@example.com", Password: "nope"}, nil); code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401 got %d", code)
	}
}

func TestRouter_SupervisorTeamAndDeactivation(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	if _, err := s.svc.BootstrapAdmin(context.Background(), "admin@example.com", "admin-pass"); err != nil {
		t.Fatalf("bootstrap admin: %v", err)
	}
	adminTok := s.login("admin@example.com", "admin-pass")

	var sup domain.Identity
	if code := s.do(http.MethodPost, "/api/v1/admin/identities", adminTok, domain.CreateIdentityRequest{
		Email: "sup@example.com", Name: "Sup", Password: "sup-password", Role: domain.RoleSupervisor, AreaID: "area-7",
	}, &sup); code != http.StatusCreated {
		t.Fatalf("create supervisor: %d", code)
	}
	supTok := s.login("sup@example.com", "sup-password")

	var g domain.Identity
	if code := s.do(http.MethodPost, "/api/v1/supervisor/guards", supTok, domain.CreateGuardRequest{
		Email: "team@example.com", Name: "Team", Password: "team-password",
	}, &g); code != http.StatusCreated {
		t.Fatalf("supervisor creates guard: %d", code)
	}
	if g.AreaID != "area-7" || g.SupervisorID == nil || *g.SupervisorID != sup.ID {
		t.Fatalf("guard not in supervisor team: %+v", g)
	}
	_ = s.login("team@example.com", "team-password")

	var team domain.ListIdentitiesResponse
	if code := s.do(http.MethodGet, "/api/v1/supervisor/guards?active_only=true", supTok, nil, &team); code != http.StatusOK || team.Total != 1 {
		t.Fatalf("supervisor team: %d total=%d", code, team.Total)
	}

	var sups domain.ListIdentitiesResponse
	if code := s.do(http.MethodGet, "/api/v1/admin/supervisors", adminTok, nil, &sups); code != http.StatusOK || sups.Total != 1 {
		t.Fatalf("admin supervisors: %d total=%d", code, sups.Total)
	}
	if code := s.do(http.MethodGet, "/api/v1/admin/identities?role=janitor", adminTok, nil, nil); code != http.StatusBadRequest {
		t.Fatalf("unknown role filter: expected 400 got %d", code)
	}

	if code := s.do(http.MethodPost, "/api/v1/admin/identities/"+sup.ID.String()+"/deactivate", adminTok, nil, nil); code != http.StatusNoContent {
		t.Fatalf("deactivate supervisor: %d", code)
	}

	var guards domain.ListIdentitiesResponse
	if code := s.do(http.MethodGet, "/api/v1/admin/guards?active=true&supervisor="+sup.ID.String(), adminTok, nil, &guards); code != http.StatusOK || guards.Total != 0 {
		t.Fatalf("guards must be deactivated with their supervisor: %d total=%d", code, guards.Total)
	}
	if code := s.do(http.MethodPost, "/api/v1/auth/login", "", domain.LoginRequest{Email: "team@example.com", Password: "team-password"}, nil); code != http.StatusForbidden {
		t.Fatalf("deactivated guard login: expected 403 got %d", code)
	}

	if code := s.do(http.MethodGet, "/api/v1/supervisor/guards", adminTok, nil, nil); code != http.StatusForbidden {
		t.Fatalf("supervisor guards as admin: expected 403 got %d", code)
	}
}
