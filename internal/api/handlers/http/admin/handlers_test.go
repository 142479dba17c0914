package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Vinayak4780/Guard/internal/api/handlers/http/admin"
	mock_admin "github.com/Vinayak4780/Guard/internal/api/handlers/http/admin/mocks"
	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type fixture struct {
	h          *admin.Handler
	identities *mock_admin.MockIdentities
	qr         *mock_admin.MockQRLocations
	history    *mock_admin.MockScanHistory
	stats      *mock_admin.MockStatsGetter
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		identities: mock_admin.NewMockIdentities(ctrl),
		qr:         mock_admin.NewMockQRLocations(ctrl),
		history:    mock_admin.NewMockScanHistory(ctrl),
		stats:      mock_admin.NewMockStatsGetter(ctrl),
	}
	f.h = admin.NewHandler(newTestLogger(), f.identities, f.qr, f.history, f.stats)
	return f
}

func TestCreateIdentity_OK(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	body := `{"email":"sup@example.com","name":"Sup","password":"longenough","role":"supervisor","area_id":"area-1"}`

	want := &domain.Identity{ID: uuid.New(), Email: "sup@example.com", Role: domain.RoleSupervisor, AreaID: "area-1", Active: true, PasswordHash: "secret-hash"}
	f.identities.EXPECT().
		CreateIdentity(gomock.Any(), domain.CreateIdentityRequest{
			Email: "sup@example.com", Name: "Sup", Password: "longenough", Role: domain.RoleSupervisor, AreaID: "area-1",
		}).
		Return(want, nil)

	rr := httptest.NewRecorder()
	f.h.CreateIdentity(rr, httptest.NewRequest(http.MethodPost, "/api/v1/admin/identities", bytes.NewBufferString(body)))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d, body=%s", rr.Code, rr.Body.String())
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("secret-hash")) {
		t.Fatalf("password hash leaked: %s", rr.Body.String())
	}
	if got := decodeJSON[domain.Identity](t, rr); got.ID != want.ID {
		t.Fatalf("unexpected id %s", got.ID)
	}
}

func TestCreateIdentity_Validation_400(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	for _, body := range []string{
		`{bad json`,
		`{"email":"sup@example.com","name":"Sup","password":"short","role":"supervisor","area_id":"a"}`,
		`{"email":"g@example.com","name":"G","password":"longenough","role":"guard"}`,
		`{"email":"a@example.com","name":"A","password":"longenough","role":"admin"}`,
	} {
		rr := httptest.NewRecorder()
		f.h.CreateIdentity(rr, httptest.NewRequest(http.MethodPost, "/api/v1/admin/identities", bytes.NewBufferString(body)))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", body, rr.Code)
		}
	}
}

func TestCreateIdentity_Duplicate_409(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.identities.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).
		Return(nil, e.Wrap("email already registered", e.ErrConflict))

	body := `{"email":"sup@example.com","name":"Sup","password":"longenough","role":"supervisor","area_id":"area-1"}`
	rr := httptest.NewRecorder()
	f.h.CreateIdentity(rr, httptest.NewRequest(http.MethodPost, "/api/v1/admin/identities", bytes.NewBufferString(body)))
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rr.Code)
	}
}

func TestSetActive(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	id := uuid.New()

	gomock.InOrder(
		f.identities.EXPECT().SetIdentityActive(gomock.Any(), id, false).Return(nil),
		f.identities.EXPECT().SetIdentityActive(gomock.Any(), id, true).Return(e.ErrNotFound),
	)

	rr := httptest.NewRecorder()
	f.h.DeactivateIdentity(rr, addChiURLParam(httptest.NewRequest(http.MethodPost, "/", nil), "id", id.String()))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	f.h.ReactivateIdentity(rr, addChiURLParam(httptest.NewRequest(http.MethodPost, "/", nil), "id", id.String()))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	f.h.ReactivateIdentity(rr, addChiURLParam(httptest.NewRequest(http.MethodPost, "/", nil), "id", "not-a-uuid"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestListQRLocations_LimitCapped(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.qr.EXPECT().ListQRLocations(gomock.Any(), 1, 100).
		Return([]*domain.QRLocation{{ID: "QR-A1", AreaID: "area-1"}}, int64(1), nil)

	rr := httptest.NewRecorder()
	f.h.ListQRLocations(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/qr?limit=500", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	got := decodeJSON[domain.ListQRLocationsResponse](t, rr)
	if got.Total != 1 || got.Limit != 100 || len(got.Locations) != 1 {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestListScans_AreaAndGuardFilter(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	guardID := uuid.New()
	f.history.EXPECT().
		ListScans(gomock.Any(), domain.ScanFilter{AreaID: "area-2", GuardID: guardID, Page: 1, Limit: 20}).
		Return(domain.ListScansResponse{Scans: []*domain.ScanEvent{}}, nil)

	rr := httptest.NewRecorder()
	f.h.ListScans(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/scans?area=area-2&guard="+guardID.String(), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	f.h.ListScans(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/scans?guard=nope", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestSystemStats(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	gomock.InOrder(
		f.stats.EXPECT().SystemStats(gomock.Any()).
			Return(&domain.SystemStats{Areas: []domain.AreaSummary{{AreaID: "area-1", TotalScans: 3}}, TotalScans: 3}, nil),
		f.stats.EXPECT().SystemStats(gomock.Any()).Return(nil, errors.New("boom")),
	)

	rr := httptest.NewRecorder()
	f.h.SystemStats(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if got := decodeJSON[domain.SystemStats](t, rr); got.TotalScans != 3 {
		t.Fatalf("unexpected body %+v", got)
	}

	rr = httptest.NewRecorder()
	f.h.SystemStats(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr.Code)
	}
}

func TestListIdentities_Filters(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	supID := uuid.New()
	inactive := false
	gomock.InOrder(
		f.identities.EXPECT().
			ListIdentities(gomock.Any(), domain.IdentityFilter{Page: 1, Limit: 20}).
			Return(domain.ListIdentitiesResponse{Identities: []*domain.Identity{}, Page: 1, Limit: 20, Total: 3}, nil),
		f.identities.EXPECT().
			ListIdentities(gomock.Any(), domain.IdentityFilter{Role: domain.RoleGuard, SupervisorID: supID, Active: &inactive, Page: 1, Limit: 20}).
			Return(domain.ListIdentitiesResponse{Identities: []*domain.Identity{}, Page: 1, Limit: 20}, nil),
	)

	rr := httptest.NewRecorder()
	f.h.ListIdentities(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/identities", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if got := decodeJSON[domain.ListIdentitiesResponse](t, rr); got.Total != 3 {
		t.Fatalf("unexpected body %+v", got)
	}

	rr = httptest.NewRecorder()
	f.h.ListIdentities(rr, httptest.NewRequest(http.MethodGet,
		"/api/v1/admin/identities?role=guard&active=false&supervisor="+supID.String(), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d, body=%s", rr.Code, rr.Body.String())
	}
}

func TestListIdentities_InvalidQuery_400(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	for _, q := range []string{"?role=janitor", "?supervisor=nope", "?active=maybe"} {
		rr := httptest.NewRecorder()
		f.h.ListIdentities(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/identities"+q, nil))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", q, rr.Code)
		}
	}
}

func TestListSupervisorsAndGuards_FixRole(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	gomock.InOrder(
		f.identities.EXPECT().
			ListIdentities(gomock.Any(), domain.IdentityFilter{Role: domain.RoleSupervisor, Page: 1, Limit: 20}).
			Return(domain.ListIdentitiesResponse{Identities: []*domain.Identity{}}, nil),
		f.identities.EXPECT().
			ListIdentities(gomock.Any(), domain.IdentityFilter{Role: domain.RoleGuard, AreaID: "area-1", Page: 1, Limit: 20}).
			Return(domain.ListIdentitiesResponse{Identities: []*domain.Identity{}}, nil),
	)

	rr := httptest.NewRecorder()
	f.h.ListSupervisors(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/supervisors?role=guard", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	f.h.ListGuards(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/guards?area=area-1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}
