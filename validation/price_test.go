package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{19.999, 19.99},
		{5, 5},
		{0.29, 0.29},
		{19.99, 19.99},
		{1.005, 1},
		{0.1, 0.1},
		{12.3456, 12.34},
		{0, 0},
		{99999999.999, 99999999.99},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TruncateCents(tc.in), "TruncateCents(%v)", tc.in)
	}
}
