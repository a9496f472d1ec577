package radio

import (
	"context"
	"io"
	"sync"
)

// IQReader decodes a stream of u8 I/Q pairs (each component an unsigned
// byte centered on 127, per the rtl_tcp wire format) into complex64
// sample batches. It is the tuner callback thread's own decoder: an
// RTLTuner wraps its rtl_tcp connection in one and drives readLoop off
// its batch channel rather than hand-decoding bytes itself, so a
// connection reset surfaces the same way whether the reader is used
// live off a tuner or, as in the wire-format tests, off a bytes.Buffer.
type IQReader struct {
	r io.Reader

	mu  sync.Mutex
	err error
}

// MixerIQReader pairs an IQReader with the HzBand it was tuned to at the
// moment of capture, for calibration and spectral-power measurement
// consumers that need to know what frequency span a batch covers.
type MixerIQReader struct {
	HzBand
	*IQReader
}

// NewIQReader takes a reader that uses u8 I/Q samples.
func NewIQReader(r io.Reader) *IQReader {
	if r == nil {
		panic("nil reader")
	}
	return &IQReader{r: r}
}

// NewMixerIQReader builds an IQReader tagged with the band it covers.
func NewMixerIQReader(r io.Reader, hzb HzBand) *MixerIQReader {
	return &MixerIQReader{
		HzBand:   hzb,
		IQReader: NewIQReader(r),
	}
}

// Err returns the error that stopped the most recent BatchStream64 (or
// Batch64) run, if any. Safe to call after the returned channel closes.
func (iq *IQReader) Err() error {
	iq.mu.Lock()
	defer iq.mu.Unlock()
	return iq.err
}

func (iq *IQReader) setErr(err error) {
	iq.mu.Lock()
	iq.err = err
	iq.mu.Unlock()
}

// Batch64 streams decoded batches until limit batches have been produced
// (or forever, if limit <= 0), using a background context.
func (iq *IQReader) Batch64(batch, limit int) <-chan []complex64 {
	return iq.BatchStream64(context.Background(), batch, limit)
}

// BatchStream64 reads batch*2 raw bytes at a time, decodes them into
// batch complex64 samples, and sends each batch on the returned channel
// until ctx is canceled, the underlying reader errors, or limit batches
// have been sent (limit <= 0 means unbounded — the tuner read loop's
// case, since it runs for the tuner's whole lifetime).
func (iq *IQReader) BatchStream64(ctx context.Context, batch, limit int) <-chan []complex64 {
	ch := make(chan []complex64, 1)
	go func() {
		defer close(ch)
		raw := make([]byte, batch*2)
		for sent := 0; limit <= 0 || sent < limit; sent++ {
			if _, err := io.ReadFull(iq.r, raw); err != nil {
				iq.setErr(err)
				return
			}

			samps := make([]complex64, batch)
			for s := range samps {
				samps[s] = complex(
					(float32(raw[2*s])-127)/128.0,
					(float32(raw[2*s+1])-127)/128.0)
			}
			select {
			case ch <- samps:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// IQWriter encodes complex64 samples back to the u8 I/Q wire format.
// Raw tuner captures to disk go through RawIQCapture instead, which
// writes 16-bit WAV.
type IQWriter struct{ w io.Writer }

// NewIQWriter wraps w for u8 I/Q encoding.
func NewIQWriter(w io.Writer) *IQWriter { return &IQWriter{w} }

// Write64 encodes and writes out.
func (iq *IQWriter) Write64(out []complex64) error {
	buf := make([]byte, 2*len(out))
	for i := range out {
		buf[2*i] = byte((real(out[i]) * 128.0) + 127.0)
		buf[2*i+1] = byte((imag(out[i]) * 128.0) + 127.0)
	}
	_, err := iq.w.Write(buf)
	return err
}
