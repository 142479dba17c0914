package supervisor_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Vinayak4780/Guard/internal/api/handlers/http/supervisor"
	mock_supervisor "github.com/Vinayak4780/Guard/internal/api/handlers/http/supervisor/mocks"
	"github.com/Vinayak4780/Guard/internal/auth"
	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

var sup = domain.Principal{ID: uuid.New(), Email: "sup@example.com", Role: domain.RoleSupervisor, AreaID: "area-1"}

func as(p domain.Principal, r *http.Request) *http.Request {
	return r.WithContext(auth.WithPrincipal(r.Context(), p))
}

type fixture struct {
	h       *supervisor.Handler
	qr      *mock_supervisor.MockQRLocations
	history *mock_supervisor.MockScanHistory
	stats   *mock_supervisor.MockDashboard
	guards  *mock_supervisor.MockGuards
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		qr:      mock_supervisor.NewMockQRLocations(ctrl),
		history: mock_supervisor.NewMockScanHistory(ctrl),
		stats:   mock_supervisor.NewMockDashboard(ctrl),
		guards:  mock_supervisor.NewMockGuards(ctrl),
	}
	f.h = supervisor.NewHandler(newTestLogger(), f.qr, f.history, f.stats, f.guards)
	return f
}

func TestCreateQR_CreatedAndExisting(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	loc := &domain.QRLocation{ID: "QR-ABCDEF1234", AreaID: "area-1", Label: "Gate"}

	gomock.InOrder(
		f.qr.EXPECT().CreateQRLocation(gomock.Any(), sup, "Gate").
			Return(domain.CreateQRLocationResponse{Location: loc, Created: true}, nil),
		f.qr.EXPECT().CreateQRLocation(gomock.Any(), sup, "").
			Return(domain.CreateQRLocationResponse{Location: loc, Created: false}, nil),
	)

	rr := httptest.NewRecorder()
	f.h.CreateQR(rr, as(sup, httptest.NewRequest(http.MethodPost, "/api/v1/supervisor/qr", strings.NewReader(`{"label":"Gate"}`))))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d, body=%s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	f.h.CreateQR(rr, as(sup, httptest.NewRequest(http.MethodPost, "/api/v1/supervisor/qr", nil)))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for existing location got %d, body=%s", rr.Code, rr.Body.String())
	}

	var got domain.CreateQRLocationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Created || got.Location.ID != loc.ID {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestCreateQR_MalformedBody_400(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rr := httptest.NewRecorder()
	f.h.CreateQR(rr, as(sup, httptest.NewRequest(http.MethodPost, "/api/v1/supervisor/qr", strings.NewReader(`{"label":`))))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestSupervisorWithoutArea_403(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	noArea := sup
	noArea.AreaID = ""

	rr := httptest.NewRecorder()
	f.h.Dashboard(rr, as(noArea, httptest.NewRequest(http.MethodGet, "/api/v1/supervisor/dashboard", nil)))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rr.Code)
	}
}

func TestGetQR_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.qr.EXPECT().QRLocationForArea(gomock.Any(), "area-1").Return(nil, e.ErrNotFound)

	rr := httptest.NewRecorder()
	f.h.GetQR(rr, as(sup, httptest.NewRequest(http.MethodGet, "/api/v1/supervisor/qr", nil)))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestAreaScans_ScopedToArea(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.history.EXPECT().
		ListScans(gomock.Any(), domain.ScanFilter{AreaID: "area-1", Page: 1, Limit: 20}).
		Return(domain.ListScansResponse{Scans: []*domain.ScanEvent{}, Page: 1, Limit: 20}, nil)

	rr := httptest.NewRecorder()
	f.h.AreaScans(rr, as(sup, httptest.NewRequest(http.MethodGet, "/api/v1/supervisor/scans", nil)))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestDashboard_OK(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.stats.EXPECT().AreaDashboard(gomock.Any(), "area-1").
		Return(&domain.AreaDashboard{AreaID: "area-1", TodayScans: 4, Outcomes: map[domain.ScanOutcome]int64{domain.ScanAccepted: 4}}, nil)

	rr := httptest.NewRecorder()
	f.h.Dashboard(rr, as(sup, httptest.NewRequest(http.MethodGet, "/api/v1/supervisor/dashboard", nil)))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	var got domain.AreaDashboard
	_ = json.Unmarshal(rr.Body.Bytes(), &got)
	if got.TodayScans != 4 || got.Outcomes[domain.ScanAccepted] != 4 {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestCreateGuard_Created(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	supID := sup.ID
	f.guards.EXPECT().
		CreateGuard(gomock.Any(), sup, domain.CreateGuardRequest{Email: "g@example.com", Name: "G", Password: "password2"}).
		Return(&domain.Identity{ID: uuid.New(), Email: "g@example.com", Role: domain.RoleGuard, AreaID: "area-1", SupervisorID: &supID, Active: true}, nil)

	body := `{"email":"g@example.com","name":"G","password":"password2"}`
	rr := httptest.NewRecorder()
	f.h.CreateGuard(rr, as(sup, httptest.NewRequest(http.MethodPost, "/api/v1/supervisor/guards", strings.NewReader(body))))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d, body=%s", rr.Code, rr.Body.String())
	}

	var got domain.Identity
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.AreaID != "area-1" || got.SupervisorID == nil || *got.SupervisorID != sup.ID {
		t.Fatalf("unexpected body %+v", got)
	}
	if strings.Contains(rr.Body.String(), "password") {
		t.Fatalf("password material leaked: %s", rr.Body.String())
	}
}

func TestCreateGuard_Errors(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.guards.EXPECT().CreateGuard(gomock.Any(), sup, gomock.Any()).Return(nil, e.Wrap("email already registered", e.ErrConflict))

	cases := []struct {
		body string
		want int
	}{
		{`{"email":"nope","name":"G","password":"password2"}`, http.StatusBadRequest},
		{`{"email":"g@example.com","name":"G","password":"short"}`, http.StatusBadRequest},
		{`{"email":"g@example.com","name":"G","password":"password2"}`, http.StatusConflict},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		f.h.CreateGuard(rr, as(sup, httptest.NewRequest(http.MethodPost, "/api/v1/supervisor/guards", strings.NewReader(tc.body))))
		if rr.Code != tc.want {
			t.Fatalf("%s: expected %d got %d", tc.body, tc.want, rr.Code)
		}
	}
}

func TestListGuards_ActiveOnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	gomock.InOrder(
		f.guards.EXPECT().ListGuards(gomock.Any(), sup, false, 1, 20).
			Return(domain.ListIdentitiesResponse{Identities: []*domain.Identity{}, Page: 1, Limit: 20, Total: 2}, nil),
		f.guards.EXPECT().ListGuards(gomock.Any(), sup, true, 2, 5).
			Return(domain.ListIdentitiesResponse{Identities: []*domain.Identity{}, Page: 2, Limit: 5, Total: 1}, nil),
	)

	rr := httptest.NewRecorder()
	f.h.ListGuards(rr, as(sup, httptest.NewRequest(http.MethodGet, "/api/v1/supervisor/guards", nil)))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	f.h.ListGuards(rr, as(sup, httptest.NewRequest(http.MethodGet, "/api/v1/supervisor/guards?active_only=true&page=2&limit=5", nil)))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	f.h.ListGuards(rr, as(sup, httptest.NewRequest(http.MethodGet, "/api/v1/supervisor/guards?active_only=maybe", nil)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}
