package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// Handlers map these onto HTTP status codes; wrap them with %w.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// duplicateMarkers match the postgres unique-violation text and the
// in-memory repositories' messages.
var duplicateMarkers = []string{
	"duplicate key value violates unique constraint",
	"already exists",
}

func isDuplicateConstraintError(err error) bool {
	if err == nil {
		return false
	}
	text := strings.ToLower(err.Error())
	for _, marker := range duplicateMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// storeWriteError turns unique-key clashes into ErrConflict and wraps every
// other storage failure with op.
func storeWriteError(op string, err error) error {
	if isDuplicateConstraintError(err) {
		return fmt.Errorf("%w: %s: %v", ErrConflict, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
