package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		decimals int
		want     float64
	}{
		{"two decimals", 0.888196, 2, 0.89},
		{"four decimals", 0.383123456, 4, 0.3831},
		{"zero decimals", 12.6, 0, 13},
		{"negative decimals treated as zero", 12.4, -1, 12},
		{"negative value", -1.255, 1, -1.3},
		{"exact tie goes to even", 0.625, 2, 0.62},
		{"exact tie goes to even upward", 0.375, 2, 0.38},
		{"whole tie goes to even", 12.5, 0, 12},
		{"value stored below the tie rounds down", 2.675, 2, 2.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round(tt.v, tt.decimals), 1e-9)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.5, 0, 1))
	assert.Equal(t, 1.0, Clamp(1.5, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
}
