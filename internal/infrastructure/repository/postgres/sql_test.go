package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches wrapped 23505", func(t *testing.T) {
		err := fmt.Errorf("insert player: %w", &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint \"players_public_id_key\""})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Message: "insert or update violates foreign key constraint"}
		if isUniqueViolation(err) {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(fakeErr("pq: relation players does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestWrapWriteError(t *testing.T) {
	driverErr := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint \"seasons_pkey\""}

	err := wrapWriteError("insert season", "s-1", driverErr)
	if !errors.Is(err, driverErr) {
		t.Fatalf("expected driver error to stay in the chain")
	}
	if !strings.Contains(err.Error(), "already exists") || !strings.Contains(err.Error(), "duplicate key value") {
		t.Fatalf("unexpected message: %v", err)
	}

	plain := wrapWriteError("insert season", "s-1", fakeErr("connection reset"))
	if strings.Contains(plain.Error(), "already exists") {
		t.Fatalf("unexpected conflict wording: %v", plain)
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get season: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to match")
	}
	if isNotFound(fakeErr("boom")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestNullableInts(t *testing.T) {
	seven := 7
	if got := intPtr(nullInt(&seven)); got == nil || *got != 7 {
		t.Fatalf("expected round trip of 7, got %v", got)
	}
	if got := intPtr(nullInt(nil)); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
	if nullPositiveInt(0).Valid || nullPositiveInt(-2).Valid {
		t.Fatalf("expected non-positive orders to be NULL")
	}
	if got := intOrZero(nullPositiveInt(3)); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
