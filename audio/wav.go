package audio

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVSink captures a DDR's 16 kHz audio output to a mono 16-bit PCM WAV
// file. It is a concrete audio.Sink built on the go-audio/wav encoder
// rather than the teacher's own hand-rolled radio/wav writer, since
// nothing in the DDR audio path needs that writer's streaming-length
// workaround (the whole capture is closed once, at teardown).
type WAVSink struct {
	w   io.WriteSeeker
	enc *wav.Encoder
	buf *goaudio.IntBuffer
}

// NewWAVSink opens a WAV encoder over w at the given sample rate (16000
// for every DDR per spec section 6) writing mono 16-bit PCM.
func NewWAVSink(w io.WriteSeeker, sampleRate int) *WAVSink {
	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)
	return &WAVSink{
		w:   w,
		enc: enc,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}
}

// WriteSamples converts a batch of normalized float32 audio (-1..1) to
// 16-bit PCM and appends it to the WAV file.
func (s *WAVSink) WriteSamples(samples []float32) error {
	if cap(s.buf.Data) < len(samples) {
		s.buf.Data = make([]int, len(samples))
	}
	s.buf.Data = s.buf.Data[:len(samples)]
	for i, v := range samples {
		s.buf.Data[i] = int(clampPCM16(v))
	}
	if err := s.enc.Write(s.buf); err != nil {
		return fmt.Errorf("audio: WAVSink write: %w", err)
	}
	return nil
}

// Close finalizes the WAV header (the encoder needs to know the final
// data length) and closes the underlying file when it is an io.Closer.
func (s *WAVSink) Close() error {
	if err := s.enc.Close(); err != nil {
		return err
	}
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func clampPCM16(v float32) int16 {
	f := v * 32767.0
	if f > math.MaxInt16 {
		return math.MaxInt16
	}
	if f < math.MinInt16 {
		return math.MinInt16
	}
	return int16(f)
}
