package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/internal/service"
	"github.com/Vinayak4780/Guard/pkg/e"
)

func TestQRExtractor_Extract(t *testing.T) {
	t.Parallel()

	x := service.NewQRExtractor()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"exact", "QR-A1", "QR-A1"},
		{"exact with spaces", "  QR-7F3A9C21B0 \n", "QR-7F3A9C21B0"},
		{"object id", "65f0c2a1b9d3e4f5a6b7c8d9", "65f0c2a1b9d3e4f5a6b7c8d9"},
		{"json qr_id", `{"qr_id":"QR-A1"}`, "QR-A1"},
		{"json qrId", `{"qrId":"QR-B2","v":1}`, "QR-B2"},
		{"json id", `{"id":"65f0c2a1b9d3e4f5a6b7c8d9"}`, "65f0c2a1b9d3e4f5a6b7c8d9"},
		{"url query", "https://x.example.com/scan?qr_id=QR-A1&x=1", "QR-A1"},
		{"url path", "https://x.example.com/locations/QR-A1/", "QR-A1"},
		{"embedded", "Patrol point QR-A1, east wing", "QR-A1"},
		{"embedded after punctuation", "point:QR-A1", "QR-A1"},
		{"json without known keys falls back", `{"code":"QR-C3"}`, "QR-C3"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := x.Extract(tc.raw)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestQRExtractor_Invalid(t *testing.T) {
	t.Parallel()

	x := service.NewQRExtractor()
	for _, raw := range []string{"", "   ", "hello world", "qr-a1", `{"qr_id":"nope"}`, "https://x.example.com/", "NOTQR-XYZ", "gate XQR-A1 east"} {
		if _, err := x.Extract(raw); !errors.Is(err, e.ErrInvalidQRFormat) {
			t.Fatalf("%q: expected ErrInvalidQRFormat, got %v", raw, err)
		}
	}
}

func TestQRExtractor_Idempotent(t *testing.T) {
	t.Parallel()

	x := service.NewQRExtractor()
	for _, raw := range []string{"QR-A1", `{"qr":"QR-A1"}`, "https://x.example.com/q?id=QR-A1"} {
		first, err := x.Extract(raw)
		if err != nil {
			t.Fatalf("%q: %v", raw, err)
		}
		second, err := x.Extract(first)
		if err != nil || second != first {
			t.Fatalf("extracting %q again gave %q, %v", first, second, err)
		}
	}
}

func TestQRExtractor_CustomStrategies(t *testing.T) {
	t.Parallel()

	x := service.NewQRExtractor(service.ExactQRID)
	if _, err := x.Extract(`{"qr_id":"QR-A1"}`); !errors.Is(err, e.ErrInvalidQRFormat) {
		t.Fatalf("json must not match with exact strategy only, got %v", err)
	}
}

func TestNewQRID_IsCanonical(t *testing.T) {
	t.Parallel()

	id := service.NewQRID()
	if !strings.HasPrefix(id, "QR-") || !service.IsCanonicalQRID(id) {
		t.Fatalf("generated id %q is not canonical", id)
	}
}

func TestDistanceMeters(t *testing.T) {
	t.Parallel()

	a := service.DistanceMeters(geo(19.0760, 72.8777), geo(19.0760, 72.8777))
	if a != 0 {
		t.Fatalf("expected 0, got %v", a)
	}
	b := service.DistanceMeters(geo(19.0760, 72.8777), geo(19.0761, 72.8778))
	if b < 14 || b > 16 {
		t.Fatalf("expected ~15m, got %v", b)
	}
	c := service.DistanceMeters(geo(19.0760, 72.8777), geo(19.0860, 72.8877))
	if c < 1400 || c > 1600 {
		t.Fatalf("expected ~1.5km, got %v", c)
	}
}

func geo(lat, lng float64) domain.GeoPoint {
	return domain.GeoPoint{Lat: lat, Lng: lng}
}
