// SpectralPower and its FFT-bin bookkeeping back the tuner's PPM
// self-calibration path (radio.Calibrate / radio.FindPPM): a batch of
// raw I/Q read straight off an RTLTuner's rtl_tcp connection, before any
// DDR is attached, is FFT-binned here to locate the strongest NOAA
// weather-radio carrier and estimate the tuner's crystal frequency
// error against it. Nothing on the DDR sample path (the channelizer,
// demodulators, or Channel.IQReceived) uses this type — it runs once,
// ahead of the broadcast loop, to correct the tuner's own crystal
// before any Channel starts translating against it.
package radio

import (
	"io"
	"math"
	"math/cmplx"
	"sort"

	"github.com/runningwild/go-fftw/fftw32"
)

// SpectralPower accumulates min/max/average/median power-per-bin
// statistics over a run of FFTs taken from one tuned band.
type SpectralPower struct {
	min     []float64
	max     []float64
	avg     []float64
	med     []float64
	fftBins *fftw32.Array
	ffts    int
	band    FreqBand
}

// binBand names a contiguous run of FFT bins and its average power, the
// unit Spurs and Bands report their findings in before translating back
// to a FreqBand.
type binBand struct {
	Begin int
	Bins  int
	DB    float64
}

// NewSpectralPower builds a spectral-power accumulator over band, with
// the given FFT size and number of FFTs to average across.
func NewSpectralPower(band FreqBand, bins, ffts int) *SpectralPower {
	return &SpectralPower{
		fftBins: fftw32.NewArray(bins),
		ffts:    ffts,
		band:    band,
	}
}

// Average returns the per-bin average power in dB, after Measure.
func (sp *SpectralPower) Average() []float64 { return sp.avg }

// NoiseFloor estimates the noise floor as the median of the per-bin
// medians.
func (sp *SpectralPower) NoiseFloor() float64 {
	med := make([]float64, len(sp.med))
	copy(med, sp.med)
	sort.Float64s(med)
	return med[len(med)/2]
}

// Spread is the median of the per-bin averages, used as the reference
// level Stddev, Spurs and Bands measure deviation against.
func (sp *SpectralPower) Spread() float64 {
	med := make([]float64, len(sp.avg))
	copy(med, sp.avg)
	sort.Float64s(med)
	return med[len(med)/2]
}

// Stddev is the standard deviation of the per-bin averages around
// Spread.
func (sp *SpectralPower) Stddev() float64 {
	spr, sdev := sp.Spread(), 0.0
	for _, v := range sp.avg {
		sdev += (v - spr) * (v - spr)
	}
	sdev /= float64(len(sp.avg) - 1)
	return math.Sqrt(sdev)
}

// Spurs reports single-bin peaks that stand out sharply from their
// immediate neighbors — used by FindPPM to pick out a narrowband NOAA
// carrier from the surrounding noise floor.
func (sp *SpectralPower) Spurs() (ret []FreqBand) {
	spr, sdev := sp.Spread(), sp.Stddev()
	for i := 1; i < len(sp.avg)-1; i++ {
		left, mid, right := sp.avg[i-1]-spr, sp.avg[i]-spr, sp.avg[i+1]-spr
		if mid < 0 {
			continue
		}
		if mid-left > 2.0*sdev && mid-right > 2.0*sdev {
			ret = append(ret, sp.freq(binBand{i, 1, sp.avg[i]}))
		}
	}
	return ret
}

// Bands reports contiguous runs of bins that sit well above the noise
// floor, coalesced into occupied-bandwidth estimates.
func (sp *SpectralPower) Bands() (ret []FreqBand) {
	spr, sdev := sp.Spread(), sp.Stddev()
	begin, end := -1, -1
	db := 0.0
	for i, avg := range sp.avg {
		if avg-spr >= 1.5*sdev {
			if begin == -1 {
				if i == 0 || sp.avg[i-1]-spr > (avg-spr)/2.0 {
					continue
				}
				begin = i
			}
			end = i
			db += avg - spr
		} else if begin != -1 {
			n := end - begin + 1
			bb := binBand{begin, (end - begin) + 1, db / float64(n)}
			ret = append(ret, sp.freq(bb))
			begin, db = -1, 0
		}
	}
	if begin != -1 {
		n := end - begin + 1
		bb := binBand{begin, (end - begin) + 1, db / float64(n)}
		ret = append(ret, sp.freq(bb))
	}
	return ret
}

func (sp *SpectralPower) binMHz() float64 {
	bins := len(sp.fftBins.Elems)
	return sp.band.Width / float64(bins)
}

// BandPower returns fb's average power above Spread, in dB.
func (sp *SpectralPower) BandPower(fb FreqBand, samps int) float64 {
	bins := len(sp.fftBins.Elems)
	bandBins := int(fb.Width / sp.binMHz())
	startOffMHz := fb.BeginMHz() - sp.band.Center
	startBin := int(startOffMHz/sp.binMHz() + float64(bins/2))
	avg := 0.0
	for i := 0; i < bandBins; i++ {
		avg += sp.avg[i+startBin]
	}
	return (avg / float64(bandBins)) - sp.Spread()
}

func (sp *SpectralPower) freq(bb binBand) FreqBand {
	beginMHz := float64(bb.Begin-len(sp.fftBins.Elems)/2)*sp.binMHz() + sp.band.Center
	bw := float64(bb.Bins) * sp.binMHz()
	return FreqBand{Center: beginMHz + bw/2.0, Width: bw}
}

// Measure consumes sp.ffts batches from ch — the raw pre-broadcast
// batches an IQReader/MixerIQReader produces off a tuner's rtl_tcp
// connection during calibration — FFTing each into the accumulated
// min/max/average/median statistics. Returns io.EOF if ch closes early.
func (sp *SpectralPower) Measure(ch <-chan []complex64) error {
	sp.min = make([]float64, len(sp.fftBins.Elems))
	sp.max = make([]float64, len(sp.fftBins.Elems))
	sp.avg = make([]float64, len(sp.fftBins.Elems))
	sp.med = make([]float64, len(sp.fftBins.Elems))
	meds := make([][]float64, len(sp.fftBins.Elems))
	medSamples := 10
	if medSamples > sp.ffts {
		medSamples = sp.ffts
	}
	for i := range meds {
		meds[i] = make([]float64, medSamples)
	}
	arr := &fftw32.Array{}
	for n := 0; n < sp.ffts; n++ {
		samps, ok := <-ch
		if !ok {
			return io.EOF
		}
		arr.Elems = samps
		sp.fftBins = fftw32.FFT(arr)
		for i, v := range sp.fftBins.Elems {
			idx := i + len(sp.fftBins.Elems)/2
			if i >= len(sp.fftBins.Elems)/2 {
				idx = i - len(sp.fftBins.Elems)/2
			}
			db := 20 * math.Log10(cmplx.Abs(complex128(v)))
			sp.avg[idx] += db / float64(sp.ffts)
			if sp.min[idx] == 0 || sp.min[idx] > db {
				sp.min[idx] = db
			}
			if sp.max[idx] == 0 || sp.max[idx] < db {
				sp.max[idx] = db
			}
			meds[idx][((len(meds[idx])-1)*n)/sp.ffts] = db
		}
	}
	for i := range sp.med {
		sort.Float64s(meds[i])
		sp.med[i] = meds[i][len(meds[i])/2]
	}
	return nil
}
