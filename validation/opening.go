package validation

import (
	"fmt"
	"regexp"

	"menuapi-backend/models"

	"github.com/go-playground/validator/v10"
)

var clockPattern = regexp.MustCompile(`^([0-1]\d|2[0-3]):[0-5]\d$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseDayOfWeek(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	return v
}

// OpeningInput is one weekly opening slot of a restaurant.
type OpeningInput struct {
	Day      models.DayOfWeek `validate:"weekday"`
	OpensAt  string           `validate:"clock"`
	ClosesAt string           `validate:"clock"`
}

var openingKeys = []string{"day", "opensAt", "closesAt"}

func parseOpening(raw any) ([]OpeningInput, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, invalid("field %q must be an array", "opening")
	}

	entries := make([]map[string]any, len(list))
	for i, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			return nil, invalid("opening[%d] must be an object", i)
		}
		entries[i] = m
	}

	// Any missing field anywhere rejects the whole write before shape checks.
	for i, m := range entries {
		for _, key := range openingKeys {
			v, present := m[key]
			if !present || v == nil || v == "" {
				return nil, fmt.Errorf("%w: opening[%d].%s", ErrMissingOpeningFields, i, key)
			}
		}
	}

	out := make([]OpeningInput, 0, len(entries))
	seen := make(map[models.DayOfWeek]bool, len(entries))
	for i, m := range entries {
		for key := range m {
			if key != "day" && key != "opensAt" && key != "closesAt" {
				return nil, invalid("opening[%d].%s is not allowed", i, key)
			}
		}
		day, okDay := m["day"].(string)
		opens, okOpens := m["opensAt"].(string)
		closes, okCloses := m["closesAt"].(string)
		if !okDay || !okOpens || !okCloses {
			return nil, invalid("opening[%d] fields must be strings", i)
		}

		entry := OpeningInput{Day: models.DayOfWeek(day), OpensAt: opens, ClosesAt: closes}
		if err := validate.Struct(entry); err != nil {
			return nil, invalid("opening[%d]: %v", i, err)
		}
		if seen[entry.Day] {
			return nil, invalid("opening day %q repeated", day)
		}
		seen[entry.Day] = true
		out = append(out, entry)
	}
	return out, nil
}
