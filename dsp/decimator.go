package dsp

import (
	"fmt"
	"math"
)

// Decimator is a single-stage decimate-by-M FIR filter. It owns a fixed
// base coefficient vector (the filter design), a working coefficient
// vector (base scaled by the current gain), and a delay line of T
// complex samples. M and T are fixed for the lifetime of the Decimator;
// only the gain and the delay-line contents change across calls.
type Decimator struct {
	decFact int
	base    []float32
	working []float32
	taps    int
	z       []complex64
	zr      []float32
}

// NewDecimator builds a decimator with decimation factor m and the given
// (immutable) coefficient table. taps must be >= m.
func NewDecimator(m int, coeff []float32) *Decimator {
	if m < 1 {
		panic("dsp: decimation factor must be >= 1")
	}
	if len(coeff) < m {
		panic("dsp: tap count must be >= decimation factor")
	}
	d := &Decimator{
		decFact: m,
		taps:    len(coeff),
		z:       make([]complex64, len(coeff)),
		zr:      make([]float32, len(coeff)),
	}
	d.setCoeff(coeff)
	return d
}

func (d *Decimator) setCoeff(coeff []float32) {
	d.base = make([]float32, len(coeff))
	copy(d.base, coeff)
	d.working = make([]float32, len(coeff))
	copy(d.working, coeff)
}

// SetDecimatorParams replaces the filter design in place, resetting the
// delay line. The channelizers do not call it: they keep one Decimator
// per stage and recombine those instances on a bandwidth change.
func (d *Decimator) SetDecimatorParams(m int, coeff []float32) {
	if m < 1 || len(coeff) < m {
		panic("dsp: invalid decimator params")
	}
	d.decFact = m
	d.taps = len(coeff)
	d.z = make([]complex64, len(coeff))
	d.zr = make([]float32, len(coeff))
	d.setCoeff(coeff)
}

// DecFact returns the decimation factor M.
func (d *Decimator) DecFact() int { return d.decFact }

// SetGain scales the working coefficients by 10^(gainDB/20) relative to
// the base design. It does not touch the delay line; the new gain takes
// effect starting with the next Decimate call.
func (d *Decimator) SetGain(gainDB float64) {
	mult := float32(dbToLinear(gainDB))
	for i, c := range d.base {
		d.working[i] = c * mult
	}
}

func dbToLinear(db float64) float64 {
	return math.Pow(10.0, db/20.0)
}

// Decimate consumes in, whose length must be a positive multiple of M,
// and appends exactly len(in)/M output samples to out (which is reset
// first). The delay line is shifted M samples at a time so that the M
// most recent input samples occupy z[0..M-1], most recent at z[0].
func (d *Decimator) Decimate(out, in []complex64) []complex64 {
	if len(in) == 0 || len(in)%d.decFact != 0 {
		panic(fmt.Sprintf("dsp: decimate: input length %d is not a positive multiple of M=%d", len(in), d.decFact))
	}

	out = out[:0]
	m := d.decFact
	taps := d.taps
	for off := 0; off < len(in); off += m {
		copy(d.z[m:], d.z[:taps-m])
		for tap := 0; tap < m; tap++ {
			d.z[m-1-tap] = in[off+tap]
		}

		var sum complex64
		for tap := 0; tap < taps; tap++ {
			sum += complex(d.working[tap], 0) * d.z[tap]
		}
		out = append(out, sum)
	}
	return out
}

// DecimateReal is the real-valued counterpart used by the FM audio
// chain, where samples are discriminator output rather than complex
// baseband.
func (d *Decimator) DecimateReal(out, in []float32) []float32 {
	if len(in) == 0 || len(in)%d.decFact != 0 {
		panic(fmt.Sprintf("dsp: decimate: input length %d is not a positive multiple of M=%d", len(in), d.decFact))
	}

	out = out[:0]
	m := d.decFact
	taps := d.taps
	for off := 0; off < len(in); off += m {
		copy(d.zr[m:], d.zr[:taps-m])
		for tap := 0; tap < m; tap++ {
			d.zr[m-1-tap] = in[off+tap]
		}

		var sum float32
		for tap := 0; tap < taps; tap++ {
			sum += d.working[tap] * d.zr[tap]
		}
		out = append(out, sum)
	}
	return out
}
