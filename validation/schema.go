// Package validation checks raw request payloads against a per-entity field table
// and turns them into typed inputs the services can apply.
package validation

import (
	"encoding/json"
	"math"
	"sort"
	"unicode/utf8"
)

// Kind names the entity a payload is written to.
type Kind string

const (
	KindRestaurant Kind = "restaurant"
	KindSection    Kind = "section"
	KindItem       Kind = "item"
)

// Mode selects how absent fields are treated.
type Mode int

const (
	// ModeCreate requires every required field to be present and non-empty.
	ModeCreate Mode = iota
	// ModeReplace (PUT) overwrites every field; absent text becomes "" and absent numbers 0.
	ModeReplace
	// ModePatch applies only keys that are present, non-null and non-empty.
	ModePatch
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeReplace:
		return "replace"
	case ModePatch:
		return "patch"
	default:
		return "unknown"
	}
}

type fieldType int

const (
	textField fieldType = iota
	numberField
	boolField
	openingField
)

// FieldRule describes one writable field.
type FieldRule struct {
	Type     fieldType
	MaxLen   int     // max runes for text
	MinLen   int     // min runes for non-empty text
	ExactLen int     // exact runes for non-empty text
	MaxValue float64 // exclusive upper bound for numbers, 0 = none
	Required bool    // must be present and non-empty on create
	Replaced bool    // reset to its zero value on PUT when absent
}

// Schema is the allowlist of a kind: any key not listed is rejected.
type Schema map[string]FieldRule

var schemas = map[Kind]Schema{
	KindRestaurant: {
		"name":        {Type: textField, MaxLen: 20, Required: true, Replaced: true},
		"kitchenType": {Type: textField, MaxLen: 50, Required: true, Replaced: true},
		"city":        {Type: textField, MaxLen: 30, Required: true, Replaced: true},
		"uf":          {Type: textField, ExactLen: 2, Required: true, Replaced: true},
		"contact":     {Type: textField, MinLen: 8, MaxLen: 11, Required: true, Replaced: true},
		"isActive":    {Type: boolField},
		"opening":     {Type: openingField, Required: true},
	},
	KindSection: {
		"name":        {Type: textField, MaxLen: 30, Required: true, Replaced: true},
		"description": {Type: textField, MaxLen: 200, Required: true, Replaced: true},
	},
	KindItem: {
		"name":        {Type: textField, MaxLen: 30, Required: true, Replaced: true},
		"description": {Type: textField, MaxLen: 200, Required: true, Replaced: true},
		// numeric(10,2)
		"price": {Type: numberField, MaxValue: 1e8, Required: true, Replaced: true},
	},
}

// SchemaFor returns the field table of a kind.
func SchemaFor(kind Kind) (Schema, bool) {
	s, ok := schemas[kind]
	return s, ok
}

// Fields is a checked payload: text values are strings, numbers float64 (prices already
// truncated to cents), booleans bool and opening entries []OpeningInput.
type Fields map[string]any

// Check validates payload against the schema of kind under mode.
func Check(kind Kind, mode Mode, payload map[string]any) (Fields, error) {
	schema, ok := schemas[kind]
	if !ok {
		return nil, invalid("unknown entity kind %q", kind)
	}

	// Sorted so the first reported problem is deterministic.
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Fields, len(payload))
	for _, key := range keys {
		rule, allowed := schema[key]
		if !allowed {
			return nil, invalid("field %q is not allowed", key)
		}

		raw := payload[key]
		if raw == nil {
			continue
		}

		value, err := checkValue(key, rule, raw)
		if err != nil {
			return nil, err
		}
		if s, isText := value.(string); isText && s == "" && mode != ModeReplace {
			continue
		}
		out[key] = value
	}

	switch mode {
	case ModeCreate:
		for key, rule := range schema {
			if !rule.Required {
				continue
			}
			if _, present := out[key]; !present {
				return nil, invalid("field %q is required", key)
			}
		}
	case ModeReplace:
		for key, rule := range schema {
			if _, present := out[key]; present || !rule.Replaced {
				continue
			}
			switch rule.Type {
			case textField:
				out[key] = ""
			case numberField:
				out[key] = 0.0
			}
		}
	}

	return out, nil
}

func checkValue(key string, rule FieldRule, raw any) (any, error) {
	switch rule.Type {
	case textField:
		s, ok := raw.(string)
		if !ok {
			return nil, invalid("field %q must be a string", key)
		}
		if s == "" {
			return s, nil
		}
		n := utf8.RuneCountInString(s)
		if rule.MaxLen > 0 && n > rule.MaxLen {
			return nil, invalid("field %q exceeds %d characters", key, rule.MaxLen)
		}
		if rule.MinLen > 0 && n < rule.MinLen {
			return nil, invalid("field %q must have at least %d characters", key, rule.MinLen)
		}
		if rule.ExactLen > 0 && n != rule.ExactLen {
			return nil, invalid("field %q must have exactly %d characters", key, rule.ExactLen)
		}
		return s, nil

	case numberField:
		f, ok := asFloat(raw)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return nil, invalid("field %q must be a non-negative number", key)
		}
		if rule.MaxValue > 0 && f >= rule.MaxValue {
			return nil, invalid("field %q is too large", key)
		}
		return TruncateCents(f), nil

	case boolField:
		b, ok := raw.(bool)
		if !ok {
			return nil, invalid("field %q must be a boolean", key)
		}
		return b, nil

	case openingField:
		return parseOpening(raw)
	}

	return nil, invalid("field %q has an unsupported type", key)
}

func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
