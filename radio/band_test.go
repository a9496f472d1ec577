package radio

import (
	"math"
	"testing"
)

func TestHzBandToMHzRoundTrip(t *testing.T) {
	hzb := HzBand{Center: 100025000, Width: 2400000}
	fb := hzb.ToMHz()
	if fb.Center != 100.025 {
		t.Fatalf("Center = %v, want 100.025", fb.Center)
	}
	if fb.Width != 2.4 {
		t.Fatalf("Width = %v, want 2.4", fb.Width)
	}

	back := fb.ToHzBand()
	if back != hzb {
		t.Fatalf("round trip = %+v, want %+v", back, hzb)
	}
}

func TestFreqBandBeginEndMHz(t *testing.T) {
	fb := FreqBand{Center: 100.0, Width: 2.4}
	if got := fb.BeginMHz(); got != 98.8 {
		t.Fatalf("BeginMHz = %v, want 98.8", got)
	}
	if got := fb.EndMHz(); got != 101.2 {
		t.Fatalf("EndMHz = %v, want 101.2", got)
	}
	if got := fb.BandwidthKHz(); got != 2400.0 {
		t.Fatalf("BandwidthKHz = %v, want 2400.0", got)
	}
}

func TestNewFreqRange(t *testing.T) {
	fb := NewFreqRange(98.8, 101.2)
	if got := fb.Center; got != 100.0 {
		t.Fatalf("Center = %v, want 100.0", got)
	}
	// 101.2-98.8 in float64 is 2.4000000000000057, not the literal 2.4.
	if got := fb.Width; math.Abs(got-2.4) > 1e-9 {
		t.Fatalf("Width = %v, want 2.4", got)
	}
}
