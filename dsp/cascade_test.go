package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascadeDecFactIsProductOfStages(t *testing.T) {
	tests := []struct {
		name   string
		facts  []int
		expect int
	}{
		{"single stage", []int{5}, 5},
		{"two stages", []int{5, 3}, 15},
		{"three stages", []int{5, 4, 3}, 60},
		{"five stages", []int{3, 5, 5, 2, 1}, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := make([]*Decimator, len(tt.facts))
			for i, f := range tt.facts {
				stages[i] = NewDecimator(f, make([]float32, f))
			}
			c := NewCascade(stages...)
			assert.Equal(t, tt.expect, c.DecFact())
		})
	}
}

func TestCascadeRejectsOutOfRangeStageCount(t *testing.T) {
	one := NewDecimator(1, make([]float32, 1))
	assert.Panics(t, func() { NewCascade() })
	assert.Panics(t, func() {
		NewCascade(one, one, one, one, one, one)
	})
}

func TestCascadeThreadsThroughEveryStage(t *testing.T) {
	d1 := NewDecimator(2, []float32{1, 0})
	d2 := NewDecimator(2, []float32{1, 0})
	c := NewCascade(d1, d2)

	in := make([]complex64, 8)
	for i := range in {
		in[i] = complex64(complex(float64(i+1), 0))
	}
	out := c.Decimate(nil, in)
	require.Len(t, out, 2)
	// d1 picks out in[1],in[3],in[5],in[7] = 2,4,6,8; d2 then picks out
	// the most recent of each resulting pair: 4, 8.
	assert.Equal(t, complex64(4), out[0])
	assert.Equal(t, complex64(8), out[1])
}
