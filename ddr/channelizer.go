package ddr

import (
	"fmt"

	"github.com/kd9xyz/ddrx/dsp"
)

// Bandwidth selects both the decimator cascade and the final channel-
// shaping filter a Channelizer runs.
type Bandwidth int

const (
	BwWide Bandwidth = iota
	Bw20k
	Bw10k
	Bw6k
)

func (b Bandwidth) String() string {
	switch b {
	case BwWide:
		return "Wide"
	case Bw20k:
		return "20k"
	case Bw10k:
		return "10k"
	case Bw6k:
		return "6k"
	default:
		return "unknown"
	}
}

// Channelizer moves a translated complex stream from the tuner's native
// rate down to the channel rate selected by the current Bandwidth, and
// broadcasts the result on a preDemod tap.
type Channelizer interface {
	SetBw(bw Bandwidth)
	ChSampRate() uint32
	DecFact() int
	IQReceived(out, in []complex64) []complex64
	PreDemod() func([]complex64)
	SetPreDemod(func([]complex64))
}

type baseChannelizer struct {
	cascade  *dsp.Cascade
	preDemod func([]complex64)
}

func (c *baseChannelizer) PreDemod() func([]complex64) { return c.preDemod }
func (c *baseChannelizer) SetPreDemod(f func([]complex64)) { c.preDemod = f }

func (c *baseChannelizer) decFact() int {
	if c.cascade == nil {
		return 1
	}
	return c.cascade.DecFact()
}

func (c *baseChannelizer) iqReceived(out, in []complex64) []complex64 {
	out = c.cascade.Decimate(out, in)
	if c.preDemod != nil {
		c.preDemod(out)
	}
	return out
}

// Channelizer960 implements the 960 kHz tuner cascade menu.
type Channelizer960 struct {
	baseChannelizer

	dec960k192k *dsp.Decimator
	dec192k64k  *dsp.Decimator
	dec64k32k   *dsp.Decimator
	dec192k48k  *dsp.Decimator
	dec48k16k   *dsp.Decimator
	chFilt      *dsp.Decimator
	chFiltNarr  *dsp.Decimator
	chFilt6k    *dsp.Decimator
}

// NewChannelizer960 builds a 960 kHz channelizer defaulted to the 20 kHz
// bandwidth mode, matching the upstream Channel's default FM modulation.
func NewChannelizer960() *Channelizer960 {
	c := &Channelizer960{
		dec960k192k: dsp.NewDecimator(5, dsp.CoeffDec960k192k),
		dec192k64k:  dsp.NewDecimator(3, dsp.CoeffDec192k64k),
		dec64k32k:   dsp.NewDecimator(2, dsp.CoeffDec64k32k),
		dec192k48k:  dsp.NewDecimator(4, dsp.CoeffDec192k48k),
		dec48k16k:   dsp.NewDecimator(3, dsp.CoeffDec48k16k),
		chFilt:      dsp.NewDecimator(1, dsp.CoeffChannel25k),
		chFiltNarr:  dsp.NewDecimator(1, dsp.CoeffChannel12k5),
		chFilt6k:    dsp.NewDecimator(1, dsp.CoeffChannelSSB),
	}
	c.SetBw(Bw20k)
	return c
}

// SetBw tears down the current cascade and builds the new one from the
// channelizer's long-lived decimator instances, so delay-line state
// (and therefore any filter transient) persists across bandwidth
// changes instead of resetting.
func (c *Channelizer960) SetBw(bw Bandwidth) {
	switch bw {
	case BwWide:
		c.cascade = dsp.NewCascade(c.dec960k192k)
	case Bw20k:
		c.cascade = dsp.NewCascade(c.dec960k192k, c.dec192k64k, c.dec64k32k, c.chFilt)
	case Bw10k:
		c.cascade = dsp.NewCascade(c.dec960k192k, c.dec192k48k, c.dec48k16k, c.chFiltNarr)
	case Bw6k:
		c.cascade = dsp.NewCascade(c.dec960k192k, c.dec192k48k, c.dec48k16k, c.chFilt6k)
	default:
		panic(fmt.Sprintf("ddr: Channelizer960.SetBw: unknown bandwidth %v", bw))
	}
}

func (c *Channelizer960) ChSampRate() uint32 { return 960000 / uint32(c.decFact()) }
func (c *Channelizer960) DecFact() int       { return c.decFact() }

func (c *Channelizer960) IQReceived(out, in []complex64) []complex64 {
	return c.iqReceived(out, in)
}

// Channelizer2400 implements the 2.4 MHz tuner cascade menu.
type Channelizer2400 struct {
	baseChannelizer

	dec2400k800k *dsp.Decimator
	dec800k160k  *dsp.Decimator
	dec160k32k   *dsp.Decimator
	dec32k16k    *dsp.Decimator
	chFilt       *dsp.Decimator
	chFiltNarr   *dsp.Decimator
	chFilt6k     *dsp.Decimator
}

// NewChannelizer2400 builds a 2.4 MHz channelizer defaulted to the
// 20 kHz bandwidth mode.
func NewChannelizer2400() *Channelizer2400 {
	c := &Channelizer2400{
		dec2400k800k: dsp.NewDecimator(3, dsp.CoeffDec2400k800k),
		dec800k160k:  dsp.NewDecimator(5, dsp.CoeffDec800k160k),
		dec160k32k:   dsp.NewDecimator(5, dsp.CoeffDec160k32k),
		dec32k16k:    dsp.NewDecimator(2, dsp.CoeffDec32k16k),
		chFilt:       dsp.NewDecimator(1, dsp.CoeffChannel25k),
		chFiltNarr:   dsp.NewDecimator(1, dsp.CoeffChannel12k5),
		chFilt6k:     dsp.NewDecimator(1, dsp.CoeffChannelSSB),
	}
	c.SetBw(Bw20k)
	return c
}

func (c *Channelizer2400) SetBw(bw Bandwidth) {
	switch bw {
	case BwWide:
		c.cascade = dsp.NewCascade(c.dec2400k800k, c.dec800k160k)
	case Bw20k:
		c.cascade = dsp.NewCascade(c.dec2400k800k, c.dec800k160k, c.dec160k32k, c.chFilt)
	case Bw10k:
		c.cascade = dsp.NewCascade(c.dec2400k800k, c.dec800k160k, c.dec160k32k, c.dec32k16k, c.chFiltNarr)
	case Bw6k:
		c.cascade = dsp.NewCascade(c.dec2400k800k, c.dec800k160k, c.dec160k32k, c.dec32k16k, c.chFilt6k)
	default:
		panic(fmt.Sprintf("ddr: Channelizer2400.SetBw: unknown bandwidth %v", bw))
	}
}

func (c *Channelizer2400) ChSampRate() uint32 { return 2400000 / uint32(c.decFact()) }
func (c *Channelizer2400) DecFact() int       { return c.decFact() }

func (c *Channelizer2400) IQReceived(out, in []complex64) []complex64 {
	return c.iqReceived(out, in)
}

// NewChannelizer picks the right concrete Channelizer for a tuner's
// native sample rate. Any other rate is a configuration fault.
func NewChannelizer(tunerRate uint32) (Channelizer, error) {
	switch tunerRate {
	case 960000:
		return NewChannelizer960(), nil
	case 2400000:
		return NewChannelizer2400(), nil
	default:
		return nil, fmt.Errorf("ddr: unsupported tuner sample rate %d, legal values are 960000 and 2400000", tunerRate)
	}
}
