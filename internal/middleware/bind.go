package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Vinayak4780/Guard/pkg/e"
	"github.com/Vinayak4780/Guard/pkg/validator"

	playground "github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// ErrEmptyBody lets handlers with optional bodies tell a missing body apart
// from a malformed one.
var ErrEmptyBody = fmt.Errorf("%w: empty body", e.ErrInvalidInput)

// DecodeJSON reads a JSON body into dst and validates it. Every failure is
// reported as e.ErrInvalidInput with a client-safe message.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("%w: invalid JSON", e.ErrInvalidInput)
	}

	if err := validator.ValidateStruct(dst); err != nil {
		return fmt.Errorf("%w: %s", e.ErrInvalidInput, describe(err))
	}
	return nil
}

func describe(err error) string {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return "validation failed"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}
