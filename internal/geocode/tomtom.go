package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Vinayak4780/Guard/internal/config"
	"github.com/Vinayak4780/Guard/internal/domain"
)

// TomTom resolves coordinates to a display address through the TomTom
// reverse geocoding API.
type TomTom struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewTomTom(cfg config.GeocodeConfig) *TomTom {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &TomTom{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.TomTomAPIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type reverseGeocodeResponse struct {
	Addresses []struct {
		Address struct {
			StreetName                  string `json:"streetName"`
			Municipality                string `json:"municipality"`
			CountrySecondarySubdivision string `json:"countrySecondarySubdivision"`
			CountrySubdivision          string `json:"countrySubdivision"`
			FreeformAddress             string `json:"freeformAddress"`
		} `json:"address"`
	} `json:"addresses"`
}

func (t *TomTom) ReverseGeocode(ctx context.Context, p domain.GeoPoint) (string, error) {
	const op = "geocode.TomTom.ReverseGeocode"

	endpoint := fmt.Sprintf("%s/search/2/reverseGeocode/%f,%f.json", t.baseURL, p.Lat, p.Lng)
	q := url.Values{}
	q.Set("key", t.apiKey)
	q.Set("radius", "100")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: tomtom returned status %d", op, resp.StatusCode)
	}

	var body reverseGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%s: decode: %w", op, err)
	}
	if len(body.Addresses) == 0 {
		return "", fmt.Errorf("%s: %w", op, ErrNoAddress)
	}

	a := body.Addresses[0].Address
	parts := make([]string, 0, 4)
	for _, s := range []string{a.StreetName, a.Municipality, a.CountrySecondarySubdivision, a.CountrySubdivision} {
		if s == "" || containsPart(parts, s) {
			continue
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		if a.FreeformAddress == "" {
			return "", fmt.Errorf("%s: %w", op, ErrNoAddress)
		}
		return a.FreeformAddress, nil
	}
	return strings.Join(parts, ", "), nil
}

func containsPart(parts []string, s string) bool {
	for _, p := range parts {
		if strings.Contains(p, s) || strings.Contains(s, p) {
			return true
		}
	}
	return false
}
