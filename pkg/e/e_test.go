package e_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Vinayak4780/Guard/pkg/e"
)

func TestWrapError_Classification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   error
		want error
	}{
		{"deadline", context.DeadlineExceeded, e.ErrDeadline},
		{"canceled", context.Canceled, e.ErrCanceled},
		{"no rows", pgx.ErrNoRows, e.ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, e.ErrUniqueViolation},
		{"fk", &pgconn.PgError{Code: "23503"}, e.ErrInvalidInput},
		{"other pg", &pgconn.PgError{Code: "42P01"}, e.ErrInternal},
		{"plain", errors.New("boom"), e.ErrInternal},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := e.WrapError(context.Background(), "op", tc.in)
			if !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	t.Parallel()

	if err := e.WrapError(context.Background(), "op", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestIsStoreFailure(t *testing.T) {
	t.Parallel()

	if e.IsStoreFailure(nil) {
		t.Fatalf("nil is not a store failure")
	}
	if e.IsStoreFailure(fmt.Errorf("op: %w", e.ErrConflict)) {
		t.Fatalf("conflict is not a store failure")
	}
	if e.IsStoreFailure(fmt.Errorf("op: %w", e.ErrNotFound)) {
		t.Fatalf("not found is not a store failure")
	}
	if !e.IsStoreFailure(fmt.Errorf("op: %w", e.ErrInternal)) {
		t.Fatalf("internal is a store failure")
	}
	if !e.IsStoreFailure(fmt.Errorf("op: %w", e.ErrDeadline)) {
		t.Fatalf("deadline is a store failure")
	}
}
