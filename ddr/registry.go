package ddr

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Tuner is the shared wideband front-end a DDR attaches to. It is
// specified here only at its interface: the concrete driver lives in
// the radio package.
type Tuner interface {
	Name() string
	SampleRate() uint32
	CenterFq() uint32
	IsReady() bool
	RegisterDdr(d *DDR)
	UnregisterDdr(d *DDR)
}

// Registry is a process-wide mapping from DDR name to DDR instance. It
// enforces name uniqueness at construction and is mutated only from the
// control path (Initialize/Destroy), never from the sample path, so it
// carries no lock contention with the tuner callback thread — the
// mutex below only guards against concurrent control-path calls (e.g.
// a CLI goroutine tearing down a DDR while another initializes one).
type Registry struct {
	mu   sync.Mutex
	ddrs map[string]*DDR
}

// NewRegistry builds an empty DDR registry.
func NewRegistry() *Registry {
	return &Registry{ddrs: make(map[string]*DDR)}
}

// Find looks up a DDR by name.
func (r *Registry) Find(name string) (*DDR, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.ddrs[name]
	return d, ok
}

// Names returns every currently-registered DDR name.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.ddrs))
	for n := range r.ddrs {
		names = append(names, n)
	}
	return names
}

// DDR is a named Channel wrapper holding the absolute RF frequency and
// a reference to the shared Tuner it is attached to.
type DDR struct {
	registry *Registry
	name     string
	fq       int64
	tuner    Tuner
	channel  *Channel

	warnedUnfittable bool
}

// Params are the per-DDR configuration values read from the FQ, WBRX
// and MODULATION keys.
type Params struct {
	FQ         int64
	Modulation string
}

// NewDDR constructs, but does not register or initialize, a DDR.
func NewDDR(name string) *DDR {
	return &DDR{name: name}
}

// Name returns the DDR's configured name.
func (d *DDR) Name() string { return d.name }

// Initialize registers the DDR's name in the registry, attaches it to
// tuner, constructs its Channel at the offset fq-centerFq, and applies
// the requested modulation. Configuration faults (duplicate name,
// unsupported tuner rate, unknown modulation) are returned as plain
// errors and leave no trace in the registry.
func (d *DDR) Initialize(reg *Registry, tuner Tuner, p Params) error {
	reg.mu.Lock()
	if _, exists := reg.ddrs[d.name]; exists {
		reg.mu.Unlock()
		return fmt.Errorf("ddr: duplicate DDR name %q", d.name)
	}
	reg.ddrs[d.name] = d
	reg.mu.Unlock()

	d.registry = reg
	d.fq = p.FQ
	d.tuner = tuner

	offset := int(p.FQ) - int(tuner.CenterFq())
	d.channel = NewChannel(offset, tuner.SampleRate())
	if err := d.channel.Initialize(); err != nil {
		d.registry.remove(d.name)
		return err
	}

	mod, err := ParseModulation(p.Modulation)
	if err != nil {
		d.registry.remove(d.name)
		return err
	}
	d.channel.SetModulation(mod)

	tuner.RegisterDdr(d)
	d.TunerFqChanged(tuner.CenterFq())

	return nil
}

func (r *Registry) remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ddrs, name)
}

// Destroy unregisters the DDR from its tuner before removing its name
// from the registry, so no in-flight callback can reference it after
// this call returns.
func (d *DDR) Destroy() {
	if d.tuner != nil {
		d.tuner.UnregisterDdr(d)
		d.tuner = nil
	}
	if d.registry != nil {
		d.registry.remove(d.name)
	}
	d.channel = nil
}

// IQReceived forwards a tuner sample batch to the underlying Channel.
func (d *DDR) IQReceived(samples []complex64) {
	if d.channel != nil {
		d.channel.IQReceived(samples)
	}
}

// SetSink registers the audio sink callback on the underlying Channel.
func (d *DDR) SetSink(sink func([]float32)) {
	if d.channel != nil {
		d.channel.SetSink(sink)
	}
}

// SetPreDemod registers the pre-demodulation tap callback.
func (d *DDR) SetPreDemod(f func([]complex64)) {
	if d.channel != nil {
		d.channel.SetPreDemod(f)
	}
}

// SetModulation changes the DDR's active modulation.
func (d *DDR) SetModulation(mod Modulation) {
	d.channel.SetModulation(mod)
}

// FQ returns the DDR's currently tuned absolute RF frequency in Hz.
func (d *DDR) FQ() int64 { return d.fq }

// Retune changes the DDR's absolute RF frequency and re-derives its
// offset against the tuner's current center frequency, following the
// same fit check TunerFqChanged applies when the tuner itself retunes.
func (d *DDR) Retune(fq int64) {
	d.fq = fq
	d.TunerFqChanged(d.tuner.CenterFq())
}

// IsReady reports whether the DDR's tuner is ready to deliver samples.
func (d *DDR) IsReady() bool {
	return d.tuner != nil && d.tuner.IsReady()
}

// Modulation returns the DDR's currently active modulation.
func (d *DDR) Modulation() Modulation { return d.channel.Modulation() }

// Enabled reports whether the DDR's channel is currently producing
// audio (false when disabled, e.g. a retune has put it out of the
// tuner's passband).
func (d *DDR) Enabled() bool { return d.channel.Enabled() }

// PreDemodSampleRate returns the channelizer's current output rate.
func (d *DDR) PreDemodSampleRate() uint32 {
	return d.channel.ChSampRate()
}

// TunerFqChanged recomputes the DDR's offset against the tuner's new
// center frequency. If the new offset no longer fits the tuner's
// passband (|offset| > rate/2 - 12500), the channel is disabled and a
// warning is logged once, at the transition. A subsequent retune that
// brings the DDR back into range re-enables it silently.
func (d *DDR) TunerFqChanged(centerFq uint32) {
	if d.channel == nil {
		return
	}

	newOffset := int64(d.fq) - int64(centerFq)
	limit := int64(d.tuner.SampleRate())/2 - 12500
	if abs64(newOffset) > limit {
		if d.channel.Enabled() {
			d.channel.Disable()
		}
		if !d.warnedUnfittable {
			log.Warn("DDR does not fit tuner passband", "ddr", d.name, "tuner", d.tuner.Name(), "offset", newOffset, "limit", limit)
			d.warnedUnfittable = true
		}
		return
	}

	d.warnedUnfittable = false
	d.channel.SetFqOffset(int(newOffset))
	d.channel.Enable()
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
