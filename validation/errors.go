package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBody covers unknown keys, wrong types, size violations and missing required fields.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrMissingOpeningFields is returned when an opening entry lacks day, opensAt or closesAt.
	ErrMissingOpeningFields = errors.New("opening entry missing required fields")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidBody, fmt.Sprintf(format, args...))
}
