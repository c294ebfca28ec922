package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  int
	}{
		{name: "in range", level: 50, want: 50},
		{name: "zero", level: 0, want: 0},
		{name: "upper bound", level: 100, want: 100},
		{name: "above range", level: 150, want: 0},
		{name: "just above range", level: 101, want: 0},
		{name: "below range", level: -5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.level))
		})
	}
}

func TestApply(t *testing.T) {
	assert.Equal(t, 30, Apply(10, 20))
	assert.Equal(t, 105, Apply(95, 10), "apply must not clamp upward")
	assert.Equal(t, 85, Apply(85, 0))
}

func TestDecayStep(t *testing.T) {
	tests := []struct {
		name  string
		level int
		step  int
		want  int
	}{
		{name: "already sober", level: 0, step: 1, want: 0},
		{name: "last step", level: 1, step: 1, want: 0},
		{name: "regular step", level: 50, step: 1, want: 49},
		{name: "step larger than level", level: 3, step: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecayStep(tt.level, tt.step))
		})
	}
}
