package services

import (
	"errors"
	"fmt"

	"menuapi-backend/repository"
	"menuapi-backend/validation"
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidBody          = validation.ErrInvalidBody
	ErrMissingOpeningFields = validation.ErrMissingOpeningFields
	ErrConflict             = errors.New("resource already exists")
	ErrUnauthorized         = errors.New("invalid credentials")
)

// Failure tags returned by Reason.
const (
	ReasonNotFound             = "NOT_FOUND"
	ReasonInvalidBody          = "INVALID_BODY"
	ReasonMissingOpeningFields = "MISSING_OPENING_FIELDS"
	ReasonConflict             = "CONFLICT"
	ReasonUnauthorized         = "UNAUTHORIZED"
	ReasonInternal             = "INTERNAL"
)

// Reason classifies err into one of the failure tags. Unknown errors are INTERNAL.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, ErrMissingOpeningFields):
		return ReasonMissingOpeningFields
	case errors.Is(err, ErrInvalidBody):
		return ReasonInvalidBody
	case errors.Is(err, ErrConflict):
		return ReasonConflict
	case errors.Is(err, ErrUnauthorized):
		return ReasonUnauthorized
	default:
		return ReasonInternal
	}
}

// storeError lifts repository sentinels into service sentinels and wraps the rest.
func storeError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %s: %v", ErrConflict, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
