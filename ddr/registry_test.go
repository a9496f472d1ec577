package ddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTuner struct {
	name       string
	sampleRate uint32
	centerFq   uint32
	ready      bool
	registered []*DDR
}

func newFakeTuner(name string, sampleRate, centerFq uint32) *fakeTuner {
	return &fakeTuner{name: name, sampleRate: sampleRate, centerFq: centerFq, ready: true}
}

func (f *fakeTuner) Name() string          { return f.name }
func (f *fakeTuner) SampleRate() uint32    { return f.sampleRate }
func (f *fakeTuner) CenterFq() uint32      { return f.centerFq }
func (f *fakeTuner) IsReady() bool         { return f.ready }
func (f *fakeTuner) RegisterDdr(d *DDR)    { f.registered = append(f.registered, d) }
func (f *fakeTuner) UnregisterDdr(d *DDR) {
	for i, cur := range f.registered {
		if cur == d {
			f.registered = append(f.registered[:i], f.registered[i+1:]...)
			return
		}
	}
}

func (f *fakeTuner) retune(centerFq uint32) {
	f.centerFq = centerFq
	for _, d := range f.registered {
		d.TunerFqChanged(centerFq)
	}
}

func TestDDRInitializeDuplicateName(t *testing.T) {
	reg := NewRegistry()
	tuner := newFakeTuner("wbrx0", 960000, 100000000)

	d1 := NewDDR("RX1")
	require.NoError(t, d1.Initialize(reg, tuner, Params{FQ: 100025000, Modulation: "FM"}))

	d2 := NewDDR("RX1")
	err := d2.Initialize(reg, tuner, Params{FQ: 100050000, Modulation: "FM"})
	assert.Error(t, err)

	_, ok := reg.Find("RX1")
	assert.True(t, ok)
	names := reg.Names()
	assert.Len(t, names, 1)
}

func TestDDRInitializeUnsupportedTunerRate(t *testing.T) {
	reg := NewRegistry()
	tuner := newFakeTuner("wbrx0", 1000000, 100000000)

	d := NewDDR("RX1")
	err := d.Initialize(reg, tuner, Params{FQ: 100000000, Modulation: "FM"})
	assert.Error(t, err)

	_, ok := reg.Find("RX1")
	assert.False(t, ok, "a configuration fault must leave no trace in the registry")
}

func TestDDRInitializeUnknownModulation(t *testing.T) {
	reg := NewRegistry()
	tuner := newFakeTuner("wbrx0", 960000, 100000000)

	d := NewDDR("RX1")
	err := d.Initialize(reg, tuner, Params{FQ: 100000000, Modulation: "SSB"})
	assert.Error(t, err)

	_, ok := reg.Find("RX1")
	assert.False(t, ok)
}

// TestDDRFitBoundary pins the exact boundary from spec section 8: an
// offset of exactly R/2-12500 fits; one Hz further does not.
func TestDDRFitBoundary(t *testing.T) {
	const rate = uint32(2400000)
	const center = uint32(100000000)
	limit := int64(rate)/2 - 12500

	t.Run("fits at exact limit", func(t *testing.T) {
		reg := NewRegistry()
		tuner := newFakeTuner("wbrx0", rate, center)
		d := NewDDR("RX1")
		fq := int64(center) + limit
		require.NoError(t, d.Initialize(reg, tuner, Params{FQ: fq, Modulation: "FM"}))
		assert.True(t, d.channel.Enabled())
	})

	t.Run("does not fit one Hz beyond", func(t *testing.T) {
		reg := NewRegistry()
		tuner := newFakeTuner("wbrx0", rate, center)
		d := NewDDR("RX1")
		fq := int64(center) + limit + 1
		require.NoError(t, d.Initialize(reg, tuner, Params{FQ: fq, Modulation: "FM"}))
		assert.False(t, d.channel.Enabled())
	})
}

// TestDDRRetuneOutOfRangeDisables pins scenario 5: a retune that pushes
// the DDR's offset out of the tuner's passband disables the channel;
// retuning back in range re-enables it silently.
func TestDDRRetuneOutOfRangeDisables(t *testing.T) {
	reg := NewRegistry()
	tuner := newFakeTuner("wbrx0", 2400000, 100000000)

	d := NewDDR("RX1")
	require.NoError(t, d.Initialize(reg, tuner, Params{FQ: 100025000, Modulation: "FM"}))
	require.True(t, d.channel.Enabled())

	// 2.4MHz tuner: limit is 2400000/2-12500 = 1187500 Hz. Retuning the
	// center to 98800000 pushes the DDR's fixed 100025000 Hz offset to
	// 1225000 Hz, past the limit.
	tuner.retune(98800000)
	assert.False(t, d.channel.Enabled())

	tuner.retune(100000000)
	assert.True(t, d.channel.Enabled())
}

func TestDDRDestroyUnregistersBeforeRemovingFromRegistry(t *testing.T) {
	reg := NewRegistry()
	tuner := newFakeTuner("wbrx0", 960000, 100000000)

	d := NewDDR("RX1")
	require.NoError(t, d.Initialize(reg, tuner, Params{FQ: 100025000, Modulation: "FM"}))

	d.Destroy()

	_, ok := reg.Find("RX1")
	assert.False(t, ok)
	assert.Empty(t, tuner.registered)
}

func TestDDRRetuneChangesFQ(t *testing.T) {
	reg := NewRegistry()
	tuner := newFakeTuner("wbrx0", 2400000, 100000000)

	d := NewDDR("RX1")
	require.NoError(t, d.Initialize(reg, tuner, Params{FQ: 100025000, Modulation: "FM"}))

	d.Retune(100050000)
	assert.Equal(t, int64(100050000), d.FQ())
	assert.True(t, d.channel.Enabled())
}
