package dsp

import "math"

// AMDemodulator performs envelope detection: each output sample is the
// magnitude of the corresponding input sample. The channelizer's 10 kHz
// bandwidth mode already produces a chSampRate of exactly 16 kHz on both
// supported tuner rates, so the envelope is emitted directly at the
// channelizer's output rate without an extra audio-stage decimator —
// the 16 kHz sink-rate contract is satisfied by construction rather than
// by an explicit decimate step.
type AMDemodulator struct{}

// NewAMDemodulator builds an AM envelope detector.
func NewAMDemodulator() *AMDemodulator {
	return &AMDemodulator{}
}

// IQReceived emits |s| for every input sample.
func (d *AMDemodulator) IQReceived(in []complex64) []float32 {
	out := make([]float32, len(in))
	for i, s := range in {
		out[i] = float32(math.Hypot(float64(real(s)), float64(imag(s))))
	}
	return out
}
