package ddr

import (
	"fmt"

	"github.com/kd9xyz/ddrx/dsp"
)

// Modulation selects the demodulator a Channel runs and, with it, the
// Channelizer bandwidth mode.
type Modulation int

const (
	ModFM Modulation = iota
	ModWBFM
	ModAM
)

func (m Modulation) String() string {
	switch m {
	case ModFM:
		return "FM"
	case ModWBFM:
		return "WBFM"
	case ModAM:
		return "AM"
	default:
		return "unknown"
	}
}

// ParseModulation maps a configuration string to a Modulation value.
func ParseModulation(s string) (Modulation, error) {
	switch s {
	case "FM":
		return ModFM, nil
	case "WBFM":
		return ModWBFM, nil
	case "AM":
		return ModAM, nil
	default:
		return 0, fmt.Errorf("ddr: unknown modulation %q", s)
	}
}

// Channel wires a Translator, a Channelizer, and an FM or AM
// demodulator into one per-DDR pipeline. It tracks enable state and the
// active modulation, and dispatches each incoming batch synchronously:
// translate, channelize, demodulate, emit to sink.
type Channel struct {
	sampleRate  uint32
	translator  *dsp.Translator
	channelizer Channelizer
	fmDemod     *dsp.FMDemodulator
	amDemod     *dsp.AMDemodulator
	mod         Modulation
	enabled     bool

	sink func([]float32)

	transScratch []complex64
	chanScratch  []complex64
}

// NewChannel constructs a Channel for a tuner-relative frequency offset
// (Hz) and the tuner's native sample rate. Call Initialize before use.
func NewChannel(fqOffset int, sampleRate uint32) *Channel {
	return &Channel{
		sampleRate: sampleRate,
		translator: dsp.NewTranslatorWithOffset(sampleRate, fqOffset),
		enabled:    true,
	}
}

// SetSink registers the callback that receives demodulated real audio
// batches at 16 kHz.
func (c *Channel) SetSink(sink func([]float32)) { c.sink = sink }

// SetPreDemod registers the callback invoked with the post-channelizer
// complex batch, at ChSampRate(), before demodulation.
func (c *Channel) SetPreDemod(f func([]complex64)) {
	if c.channelizer != nil {
		c.channelizer.SetPreDemod(f)
	}
}

// Initialize picks the Channelizer variant for the tuner's sample rate
// and defaults the modulation to FM. Unsupported tuner rates are a
// configuration fault.
func (c *Channel) Initialize() error {
	chz, err := NewChannelizer(c.sampleRate)
	if err != nil {
		return err
	}
	c.channelizer = chz
	c.fmDemod = dsp.NewFMDemodulator(32000, 5000)
	c.amDemod = dsp.NewAMDemodulator()
	c.SetModulation(ModFM)
	return nil
}

// SetModulation reconfigures the Channelizer bandwidth and the active
// demodulator. Calling it twice with the same value is idempotent: the
// second call reselects the same bandwidth and re-derives the same
// demodulator parameters, producing identical downstream behaviour.
func (c *Channel) SetModulation(mod Modulation) {
	switch mod {
	case ModFM:
		c.channelizer.SetBw(Bw20k)
		c.fmDemod.SetDemodParams(c.channelizer.ChSampRate(), 5000)
	case ModWBFM:
		c.channelizer.SetBw(BwWide)
		c.fmDemod.SetDemodParams(c.channelizer.ChSampRate(), 75000)
	case ModAM:
		c.channelizer.SetBw(Bw10k)
	default:
		panic(fmt.Sprintf("ddr: Channel.SetModulation: unknown modulation %v", mod))
	}
	c.mod = mod
}

// Modulation returns the currently active modulation.
func (c *Channel) Modulation() Modulation { return c.mod }

// ChSampRate returns the channelizer's current output sample rate.
func (c *Channel) ChSampRate() uint32 { return c.channelizer.ChSampRate() }

// SetFqOffset resets the translator's phase to 0 and retunes it to the
// given Hz offset. The phase reset happens on every call, by design.
func (c *Channel) SetFqOffset(offsetHz int) {
	c.translator.SetOffset(offsetHz)
}

// Enable and Disable are idempotent; IQReceived consults the enabled
// bit on every batch.
func (c *Channel) Enable()  { c.enabled = true }
func (c *Channel) Disable() { c.enabled = false }

// Enabled reports the current enable state.
func (c *Channel) Enabled() bool { return c.enabled }

// IQReceived runs one batch through translate -> channelize ->
// demodulate -> sink. A disabled channel drops the batch and emits
// nothing.
func (c *Channel) IQReceived(samples []complex64) {
	if !c.enabled {
		return
	}

	c.transScratch = c.translator.IQReceived(c.transScratch, samples)
	c.chanScratch = c.channelizer.IQReceived(c.chanScratch, c.transScratch)

	var audio []float32
	switch c.mod {
	case ModFM, ModWBFM:
		audio = c.fmDemod.IQReceived(c.chanScratch)
	case ModAM:
		audio = c.amDemod.IQReceived(c.chanScratch)
	}

	if c.sink != nil && len(audio) > 0 {
		c.sink(audio)
	}
}
