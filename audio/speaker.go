package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"
)

// SpeakerSink plays a DDR's 16 kHz audio output live through the
// system's default audio device via oto/v3, matching the live-monitor
// path the pack's iq-decoder example wires up: a context, a player fed
// by a pipe, signed 16-bit little-endian PCM.
type SpeakerSink struct {
	w      *io.PipeWriter
	player *oto.Player
}

// NewSpeakerSink opens an oto context at the given sample rate (16000
// for DDR audio) and returns a sink writing into its player.
func NewSpeakerSink(sampleRate int) (*SpeakerSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("audio: opening oto context: %w", err)
	}
	<-ready

	r, w := io.Pipe()
	player := ctx.NewPlayer(r)
	player.Play()

	return &SpeakerSink{w: w, player: player}, nil
}

// WriteSamples converts normalized float32 audio to 16-bit PCM and
// writes it to the player's pipe. This blocks if oto's internal buffer
// is full, which is the cooperative backpressure spec section 5 calls
// for — the caller's goroutine stalls rather than the sink dropping
// samples silently.
func (s *SpeakerSink) WriteSamples(samples []float32) error {
	buf := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(clampPCM16(v)))
	}
	_, err := s.w.Write(buf)
	return err
}

// Close stops playback and closes the pipe.
func (s *SpeakerSink) Close() error {
	s.player.Close()
	return s.w.Close()
}
