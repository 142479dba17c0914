package service

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/Vinayak4780/Guard/pkg/e"

	"github.com/google/uuid"
)

var (
	canonicalQRID = regexp.MustCompile(`^(?:QR-[A-Z0-9][A-Z0-9-]{0,60}|[0-9a-f]{24})$`)
	embeddedQRID  = regexp.MustCompile(`\bQR-[A-Z0-9][A-Z0-9-]{0,60}|\b[0-9a-f]{24}\b`)

	payloadKeys = []string{"qr_id", "qrId", "qr", "id"}
)

// ExtractStrategy returns the identifier it finds in raw, if any.
type ExtractStrategy func(raw string) (string, bool)

// QRExtractor runs its strategies in order; the first match wins.
type QRExtractor struct {
	strategies []ExtractStrategy
}

func NewQRExtractor(strategies ...ExtractStrategy) *QRExtractor {
	if len(strategies) == 0 {
		strategies = []ExtractStrategy{ExactQRID, JSONQRID, URLQRID, EmbeddedQRID}
	}
	return &QRExtractor{strategies: strategies}
}

func (x *QRExtractor) Extract(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", e.ErrInvalidQRFormat
	}
	for _, try := range x.strategies {
		if id, ok := try(raw); ok {
			return id, nil
		}
	}
	return "", e.ErrInvalidQRFormat
}

func IsCanonicalQRID(s string) bool {
	return canonicalQRID.MatchString(s)
}

// NewQRID generates an identifier for a freshly created location.
func NewQRID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "QR-" + strings.ToUpper(hex[:10])
}

func ExactQRID(raw string) (string, bool) {
	if IsCanonicalQRID(raw) {
		return raw, true
	}
	return "", false
}

func JSONQRID(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "{") {
		return "", false
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return "", false
	}
	for _, k := range payloadKeys {
		v, ok := payload[k].(string)
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if IsCanonicalQRID(v) {
			return v, true
		}
	}
	return "", false
}

func URLQRID(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return "", false
	}

	q := u.Query()
	for _, k := range payloadKeys {
		if v := strings.TrimSpace(q.Get(k)); IsCanonicalQRID(v) {
			return v, true
		}
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if IsCanonicalQRID(segments[i]) {
			return segments[i], true
		}
	}
	return "", false
}

func EmbeddedQRID(raw string) (string, bool) {
	m := embeddedQRID.FindString(raw)
	if m == "" {
		return "", false
	}
	return strings.TrimRight(m, "-"), true
}
