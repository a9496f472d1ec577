package dsp

import "math"

// Translator shifts a channel of interest to DC by multiplying incoming
// I/Q by a precomputed complex-exponential lookup table. The table's
// length is the exact period of the offset sinusoid at the translator's
// sample rate, so there is no long-term phase error and no dead samples.
type Translator struct {
	rate uint32
	lut  []complex64
	n    int
}

// NewTranslator builds a Translator at the given sample rate with a
// zero frequency offset (passthrough).
func NewTranslator(rate uint32) *Translator {
	return &Translator{rate: rate}
}

// NewTranslatorWithOffset builds a Translator at the given sample rate
// and immediately tunes it to offsetHz.
func NewTranslatorWithOffset(rate uint32, offsetHz int) *Translator {
	t := NewTranslator(rate)
	t.SetOffset(offsetHz)
	return t
}

// SetOffset resets the phase index to 0 and rebuilds the LUT for the
// given integer Hz offset. An offset of 0 clears the LUT, selecting
// passthrough. The phase reset on every call is by design: repeated
// calls with the same offset are not equivalent to one call followed by
// continued streaming — the phase restarts at 0 each time.
func (t *Translator) SetOffset(offsetHz int) {
	t.n = 0
	if offsetHz == 0 {
		t.lut = nil
		return
	}

	abs := offsetHz
	if abs < 0 {
		abs = -abs
	}
	n := int(t.rate) / gcd(int(t.rate), abs)
	lut := make([]complex64, n)
	for i := 0; i < n; i++ {
		theta := -2.0 * math.Pi * float64(offsetHz) * float64(i) / float64(t.rate)
		lut[i] = complex64(complex(math.Cos(theta), math.Sin(theta)))
	}
	t.lut = lut
}

// PhaseIndex returns the translator's current LUT index, mostly useful
// for tests pinning the phase-reset-on-retune invariant.
func (t *Translator) PhaseIndex() int { return t.n }

// gcd is the iterative Euclidean algorithm, used instead of a recursive
// form to avoid stack growth on adversarial inputs.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IQReceived multiplies in by the LUT sample-by-sample, advancing and
// wrapping the phase index, and writes the result into out (which is
// reset first). If the LUT is empty (zero offset), out is a copy of in,
// unmodified — bit-for-bit passthrough.
func (t *Translator) IQReceived(out, in []complex64) []complex64 {
	if len(t.lut) == 0 {
		out = out[:0]
		out = append(out, in...)
		return out
	}

	out = out[:0]
	n := len(t.lut)
	for _, s := range in {
		out = append(out, s*t.lut[t.n])
		t.n++
		if t.n == n {
			t.n = 0
		}
	}
	return out
}
