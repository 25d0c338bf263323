package usecase

import (
	"errors"
	"fmt"

	"fyyur/pkg/utils"
)

var (
	// ErrNotFound means the requested venue, artist or show does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStorage wraps failures coming from the persistence layer.
	ErrStorage = errors.New("storage failure")
)

// ValidationError carries per-field messages for a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func validateRequest(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
