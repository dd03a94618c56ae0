package validation

import (
	"strconv"
	"strings"
)

// TruncateCents drops everything past the second decimal digit (19.999 -> 19.99).
// It works on the shortest decimal form of v so 0.29 stays 0.29 instead of
// becoming 0.28 through floor(0.29*100).
func TruncateCents(v float64) float64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s) > dot+3 {
		s = s[:dot+3]
	}
	out, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return out
}
