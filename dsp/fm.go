package dsp

import "math"

// FMDemodulator performs phase-difference FM demodulation with
// amplitude normalization, followed by decimation of the discriminator
// output to 16 kHz. It implements the mixed delay/phase-adapter
// discriminator: better numerical behaviour at low signal levels after
// normalization than a raw arg(s*conj(s_prev)) form, and trivially
// pipelined.
type FMDemodulator struct {
	iOld, qOld float32

	wbMode   bool
	audioWB  *Decimator
	audioDec *Decimator

	scratch   []float32
	wbScratch []float32
}

// NewFMDemodulator builds a demodulator for the given channelizer
// output rate and maximum expected deviation.
func NewFMDemodulator(sampRate uint32, maxDevHz float64) *FMDemodulator {
	d := &FMDemodulator{
		iOld:     1.0,
		qOld:     1.0,
		audioDec: NewDecimator(2, CoeffDecAudio32k16k),
	}
	d.SetDemodParams(sampRate, maxDevHz)
	return d
}

// SetDemodParams reconfigures the audio-stage gain and, for wideband
// input rates, inserts the 5:1 (160k->32k) or 6:1 (192k->32k) pre-stage
// ahead of the 32k->16k audio decimator so the final output always lands
// at 16 kHz.
func (d *FMDemodulator) SetDemodParams(sampRate uint32, maxDevHz float64) {
	// Gain such that a signal at maxDevHz produces a peak audio amplitude
	// of 1.0: the discriminator's peak angular velocity at maxDevHz is
	// 2*pi*maxDevHz/sampRate radians/sample, so this is its reciprocal.
	adj := float64(sampRate) / (2.0 * math.Pi * maxDevHz)
	adjDB := 20.0 * math.Log10(adj)
	d.audioDec.SetGain(adjDB)

	d.wbMode = sampRate > 32000
	switch sampRate {
	case 160000:
		d.audioWB = NewDecimator(5, CoeffDec160k32k)
	case 192000:
		d.audioWB = NewDecimator(6, CoeffDec192k32k)
	default:
		d.audioWB = nil
	}
}

// IQReceived demodulates a batch of channelized complex samples into
// real audio, decimating through the optional wideband stage and then
// the 32k->16k audio decimator.
func (d *FMDemodulator) IQReceived(in []complex64) []float32 {
	d.scratch = d.scratch[:0]
	for _, samp := range in {
		mag := float32(math.Hypot(float64(real(samp)), float64(imag(samp))))
		i := real(samp) / mag
		q := imag(samp) / mag

		psi := math.Atan2(
			float64(q*d.iOld-i*d.qOld),
			float64(i*d.iOld+q*d.qOld),
		)
		d.iOld, d.qOld = i, q
		d.scratch = append(d.scratch, float32(psi))
	}

	if d.wbMode {
		d.wbScratch = d.audioWB.DecimateReal(d.wbScratch, d.scratch)
		return d.audioDec.DecimateReal(nil, d.wbScratch)
	}
	return d.audioDec.DecimateReal(nil, d.scratch)
}
