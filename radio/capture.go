package radio

import (
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/kd9xyz/ddrx/radio/wav"
)

// RawIQCapture writes a tuner's raw complex baseband stream to a
// 2-channel 16-bit PCM WAV file, I in the left channel and Q in the
// right, at the tuner's native sample rate. It exists for offline
// analysis of a whole wideband passband rather than one demodulated
// DDR — the counterpart to audio.WAVSink, which captures a single
// channel's 16 kHz demodulated audio.
//
// It is built on radio/wav.Writer, which takes the interleaved I/Q bytes
// directly: a raw capture's final length is unknown when recording
// starts, so wav.Writer writes a placeholder RIFF/data length up front
// and patches it in on Close if the backing writer is an io.WriteSeeker.
type RawIQCapture struct {
	f *os.File
	w *wav.Writer

	mu  sync.Mutex
	buf []byte
}

// NewRawIQCapture creates <dir>/<name>.wav and prepares it for raw I/Q
// capture at sampleRate.
func NewRawIQCapture(dir, name string, sampleRate uint32) (*RawIQCapture, error) {
	f, err := os.Create(filepath.Join(dir, name+".wav"))
	if err != nil {
		return nil, err
	}
	w, err := wav.NewWriter(f, int(sampleRate), 16, 2)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &RawIQCapture{f: f, w: w}, nil
}

// WriteIQ encodes samples as interleaved 16-bit I/Q PCM and appends them
// to the capture file.
func (c *RawIQCapture) WriteIQ(samples []complex64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cap(c.buf) < len(samples)*4 {
		c.buf = make([]byte, len(samples)*4)
	}
	c.buf = c.buf[:len(samples)*4]
	for i, s := range samples {
		iv := clampInt16(float64(real(s)) * 32767.0)
		qv := clampInt16(float64(imag(s)) * 32767.0)
		c.buf[4*i] = byte(iv)
		c.buf[4*i+1] = byte(iv >> 8)
		c.buf[4*i+2] = byte(qv)
		c.buf[4*i+3] = byte(qv >> 8)
	}
	_, err := c.w.Write(c.buf)
	return err
}

func clampInt16(v float64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// Close patches the WAV header with the final data length and closes
// the underlying file.
func (c *RawIQCapture) Close() error {
	if err := c.w.Close(); err != nil {
		c.f.Close()
		return err
	}
	return c.f.Close()
}
