// Package respond holds the JSON presenters shared by the HTTP handlers.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Vinayak4780/Guard/pkg/e"
)

type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func JSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func Fail(w http.ResponseWriter, code int, errCode, msg string) {
	JSON(w, code, ErrorBody{Error: msg, Code: errCode})
}

// Error maps service errors to status codes. Client errors are logged at
// warn, everything else at error.
func Error(w http.ResponseWriter, r *http.Request, l *slog.Logger, err error) {
	status, code, msg := classify(err)

	attrs := []any{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	}
	if status >= http.StatusInternalServerError {
		l.Error("handler error", attrs...)
	} else {
		l.Warn("handler error", attrs...)
	}

	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "1")
	}
	Fail(w, status, code, msg)
}

func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, e.ErrInvalidQRFormat):
		return http.StatusBadRequest, "invalid_qr_format", "qr content does not contain a recognizable identifier"
	case errors.Is(err, e.ErrInvalidCoordinates):
		return http.StatusBadRequest, "invalid_coordinates", "coordinates out of range"
	case errors.Is(err, e.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input", clientMessage(err, "invalid input")
	case errors.Is(err, e.ErrUnknownQRLocation):
		return http.StatusNotFound, "unknown_qr_location", "qr location not found"
	case errors.Is(err, e.ErrUnknownGuard):
		return http.StatusNotFound, "unknown_guard", "guard not found or inactive"
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized", "invalid credentials"
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, "forbidden", "forbidden"
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		return http.StatusConflict, "conflict", "resource already exists"
	case errors.Is(err, e.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "store_unavailable", "storage temporarily unavailable, retry"
	case errors.Is(err, e.ErrDeadline):
		return http.StatusGatewayTimeout, "timeout", "request timed out"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}

// clientMessage drops op prefixes, e.g.
// "service.Create: invalid input: empty body" -> "invalid input: empty body".
func clientMessage(err error, def string) string {
	msg := err.Error()
	if i := strings.Index(msg, def); i >= 0 {
		return msg[i:]
	}
	return def
}

// Page reads page and limit query params; service layers clamp the values.
func Page(r *http.Request) (int, int) {
	q := r.URL.Query()
	return parseInt(q.Get("page"), 1), parseInt(q.Get("limit"), 20)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
