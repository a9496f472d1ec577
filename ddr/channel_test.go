package ddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelInitializeRejectsUnsupportedRate(t *testing.T) {
	c := NewChannel(0, 1000000)
	err := c.Initialize()
	assert.Error(t, err)
}

func TestChannelInitializeDefaultsToFM(t *testing.T) {
	c := NewChannel(0, 960000)
	require.NoError(t, c.Initialize())
	assert.Equal(t, ModFM, c.Modulation())
}

func TestChannelSetModulationIdempotent(t *testing.T) {
	c := NewChannel(0, 960000)
	require.NoError(t, c.Initialize())

	c.SetModulation(ModWBFM)
	rateOnce := c.ChSampRate()

	c.SetModulation(ModWBFM)
	rateTwice := c.ChSampRate()

	assert.Equal(t, rateOnce, rateTwice)
	assert.Equal(t, ModWBFM, c.Modulation())
}

func TestChannelSetModulationUnknownPanics(t *testing.T) {
	c := NewChannel(0, 960000)
	require.NoError(t, c.Initialize())
	assert.Panics(t, func() { c.SetModulation(Modulation(99)) })
}

func TestChannelDisableProducesNoOutput(t *testing.T) {
	c := NewChannel(0, 960000)
	require.NoError(t, c.Initialize())

	var gotAudio bool
	c.SetSink(func(samples []float32) { gotAudio = true })

	c.Disable()
	c.IQReceived(make([]complex64, c.channelizer.DecFact()*4))
	assert.False(t, gotAudio)
}

func TestChannelEnableDisableIdempotent(t *testing.T) {
	c := NewChannel(0, 960000)
	require.NoError(t, c.Initialize())

	c.Disable()
	c.Disable()
	assert.False(t, c.Enabled())

	c.Enable()
	c.Enable()
	assert.True(t, c.Enabled())
}

func TestChannelEnabledProducesAudio(t *testing.T) {
	c := NewChannel(0, 960000)
	require.NoError(t, c.Initialize())

	var batches int
	c.SetSink(func(samples []float32) { batches++ })

	in := make([]complex64, c.channelizer.DecFact()*8)
	for i := range in {
		in[i] = 1
	}
	c.IQReceived(in)
	assert.Greater(t, batches, 0)
}

func TestChannelSetFqOffsetIdempotent(t *testing.T) {
	c := NewChannel(1000, 960000)
	require.NoError(t, c.Initialize())

	c.SetFqOffset(5000)
	c.IQReceived(make([]complex64, c.channelizer.DecFact()*2))
	assert.NotEqual(t, 0, c.translator.PhaseIndex())

	c.SetFqOffset(5000)
	assert.Equal(t, 0, c.translator.PhaseIndex())
}

func TestParseModulation(t *testing.T) {
	tests := []struct {
		in      string
		want    Modulation
		wantErr bool
	}{
		{"FM", ModFM, false},
		{"WBFM", ModWBFM, false},
		{"AM", ModAM, false},
		{"SSB", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseModulation(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
