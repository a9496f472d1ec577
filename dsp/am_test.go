package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAMDemodulatorEnvelope(t *testing.T) {
	d := NewAMDemodulator()
	in := []complex64{3 + 4i, 0, 1 + 1i, -5}
	out := d.IQReceived(in)
	require.Len(t, out, len(in))
	assert.InDelta(t, 5.0, out[0], 1e-5)
	assert.InDelta(t, 0.0, out[1], 1e-5)
	assert.InDelta(t, math.Sqrt2, float64(out[2]), 1e-5)
	assert.InDelta(t, 5.0, out[3], 1e-5)
}

func TestAMDemodulatorMonotoneInEnvelope(t *testing.T) {
	d := NewAMDemodulator()
	amps := []float32{0.1, 0.4, 0.9, 1.5}
	in := make([]complex64, len(amps))
	for i, a := range amps {
		in[i] = complex(a, 0)
	}
	out := d.IQReceived(in)
	for i := 1; i < len(out); i++ {
		assert.Greater(t, out[i], out[i-1])
	}
}
