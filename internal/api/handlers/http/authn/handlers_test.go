package authn_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Vinayak4780/Guard/internal/api/handlers/http/authn"
	mock_authn "github.com/Vinayak4780/Guard/internal/api/handlers/http/authn/mocks"
	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestLogin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_authn.NewMockLoginService(ctrl)
	h := authn.NewHandler(newTestLogger(), svc)

	creds := domain.LoginRequest{Email: "g@example.com", Password: "pw"}
	exp := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	gomock.InOrder(
		svc.EXPECT().Login(gomock.Any(), creds).
			Return(domain.LoginResponse{AccessToken: "tok", TokenType: "Bearer", ExpiresAt: exp, Role: domain.RoleGuard}, nil),
		svc.EXPECT().Login(gomock.Any(), creds).Return(domain.LoginResponse{}, e.ErrUnauthorized),
		svc.EXPECT().Login(gomock.Any(), creds).Return(domain.LoginResponse{}, e.ErrForbidden),
	)

	body := `{"email":"g@example.com","password":"pw"}`

	rr := httptest.NewRecorder()
	h.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d, body=%s", rr.Code, rr.Body.String())
	}
	var got domain.LoginResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil || got.AccessToken != "tok" || !got.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected body %s (%v)", rr.Body.String(), err)
	}

	for _, want := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		rr = httptest.NewRecorder()
		h.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body)))
		if rr.Code != want {
			t.Fatalf("expected %d got %d", want, rr.Code)
		}
	}

	rr = httptest.NewRecorder()
	h.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{"email":"x"}`)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}
