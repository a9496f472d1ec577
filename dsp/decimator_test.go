package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitCoeff(n int) []float32 {
	c := make([]float32, n)
	c[0] = 1
	return c
}

func TestDecimatorOutputLength(t *testing.T) {
	tests := []struct {
		name string
		m    int
		taps int
		k    int
	}{
		{"M=2 single batch", 2, 4, 5},
		{"M=3 single batch", 3, 6, 7},
		{"M=1 passthrough-ish", 1, 1, 10},
		{"M=5 large taps", 5, 40, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecimator(tt.m, make([]float32, tt.taps))
			in := make([]complex64, tt.k*tt.m)
			out := d.Decimate(nil, in)
			assert.Len(t, out, tt.k)
		})
	}
}

func TestDecimatorPanicsOnBadBatchLength(t *testing.T) {
	d := NewDecimator(3, make([]float32, 6))
	assert.Panics(t, func() {
		d.Decimate(nil, make([]complex64, 4))
	})
}

func TestDecimatorPanicsOnZeroLength(t *testing.T) {
	d := NewDecimator(3, make([]float32, 6))
	assert.Panics(t, func() {
		d.Decimate(nil, nil)
	})
}

// TestDecimatorIdentityPassthrough pins the delay-line shift direction spec
// section 4.1 specifies: the M most recent input samples occupy
// taps[0..M-1], most recent at taps[0]. With a single-tap identity
// filter at tap 0 and M=1, the decimator is a pure passthrough.
func TestDecimatorIdentityPassthrough(t *testing.T) {
	d := NewDecimator(1, unitCoeff(1))
	in := []complex64{1 + 2i, 3 - 1i, 0.5 + 0.5i}
	out := d.Decimate(nil, in)
	require.Len(t, out, len(in))
	for i, v := range in {
		assert.Equal(t, v, out[i])
	}
}

// TestDecimatorFirstTapMatchesMostRecentSample pins the ordering
// contract with M=2: a [1,0] coefficient vector at a 2:1 decimator
// should pick out the most recent of each pair, which z[0] holds.
func TestDecimatorFirstTapMatchesMostRecentSample(t *testing.T) {
	d := NewDecimator(2, []float32{1, 0})
	in := []complex64{1, 2, 3, 4}
	out := d.Decimate(nil, in)
	require.Len(t, out, 2)
	assert.Equal(t, complex64(2), out[0])
	assert.Equal(t, complex64(4), out[1])
}

func TestDecimatorGainAppliedOnNextCall(t *testing.T) {
	d := NewDecimator(1, unitCoeff(1))
	d.SetGain(20) // 10x linear
	out := d.Decimate(nil, []complex64{1})
	require.Len(t, out, 1)
	assert.InDelta(t, 10.0, real(out[0]), 1e-4)
}

func TestDecimatorTransientIsZeroFilled(t *testing.T) {
	taps := 6
	d := NewDecimator(2, unitCoeff(taps))
	// With a unit impulse at tap 0, the first output is the newest input
	// sample, which sits inside the freshly-shifted window.
	out := d.Decimate(nil, []complex64{1, 1})
	require.Len(t, out, 1)
	assert.Equal(t, complex64(1), out[0])

	// With the impulse at the last tap, the first output reads a slot
	// beyond the freshly-shifted window, which is still zero because the
	// delay line starts zero-filled.
	late := make([]float32, taps)
	late[taps-1] = 1
	dl := NewDecimator(2, late)
	outLate := dl.Decimate(nil, []complex64{1, 1})
	require.Len(t, outLate, 1)
	assert.Equal(t, complex64(0), outLate[0])
}

func TestDecimateReal(t *testing.T) {
	d := NewDecimator(2, []float32{1, 0})
	out := d.DecimateReal(nil, []float32{1, 2, 3, 4})
	require.Len(t, out, 2)
	assert.Equal(t, float32(2), out[0])
	assert.Equal(t, float32(4), out[1])
}

func TestNewDecimatorRejectsBadParams(t *testing.T) {
	assert.Panics(t, func() { NewDecimator(0, []float32{1}) })
	assert.Panics(t, func() { NewDecimator(5, []float32{1, 2}) })
}
