package radio

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kr/pty"

	"github.com/kd9xyz/ddrx/ddr"
)

var (
	minFreqHz = uint32(25000000)
	maxFreqHz = uint32(1750000000)
	minRate   = uint32(225000)
	maxRate   = uint32(3200000)
)

// RTLTuner is the shared wideband front-end: it spawns and owns an
// rtl_tcp subprocess, connects to it with the RTLTCPSDR wire-protocol
// client, and broadcasts every sample batch it reads to the DDRs
// registered against it. There is exactly one reader goroutine per
// RTLTuner; every registered DDR's IQReceived runs to completion on
// that goroutine before the next batch is read, matching the
// single-producer, no-lock-needed dispatch model the registered DDRs
// assume.
type RTLTuner struct {
	name string
	addr *net.TCPAddr

	cmd  *exec.Cmd
	fpty *os.File

	mu         sync.RWMutex
	sdr        *RTLTCPSDR
	centerHz   uint32
	sampleRate uint32
	ready      bool

	ddrsMu sync.Mutex
	ddrs   []*ddr.DDR

	captureMu sync.Mutex
	capture   *RawIQCapture

	cancel context.CancelFunc
}

// NewRTLTuner spawns rtl_tcp for the given device serial/index and
// connects to it at the given address (e.g. "127.0.0.1:12345"). When
// calibrate is true, it runs Calibrate against the NOAA weather-radio
// band to trim the tuner's crystal frequency error before settling on
// centerHz/sampleRate and starting the broadcast read loop — Calibrate
// retunes the hardware during the measurement, so it must run before
// any DDR registers and before the read loop starts consuming samples.
func NewRTLTuner(ctx context.Context, name, serial string, addr *net.TCPAddr, sampleRate, centerHz uint32, calibrate bool) (*RTLTuner, error) {
	port := fmt.Sprintf("%d", addr.Port)
	cmd := exec.CommandContext(ctx, "rtl_tcp", "-a", addr.IP.String(), "-p", port, "-d", serial, "-s", fmt.Sprintf("%d", sampleRate))
	fpty, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("radio: spawning rtl_tcp: %w", err)
	}
	go io.Copy(io.Discard, fpty)

	t := &RTLTuner{
		name:       name,
		addr:       addr,
		cmd:        cmd,
		fpty:       fpty,
		sampleRate: sampleRate,
		centerHz:   centerHz,
	}

	select {
	case <-time.After(2 * time.Second):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := t.connect(ctx); err != nil {
		return nil, err
	}

	if calibrate {
		if err := Calibrate(t); err != nil {
			log.Warn("ppm calibration failed, continuing uncorrected", "tuner", name, "err", err)
		}
	}

	if err := t.sdr.SetCenterFreq(centerHz); err != nil {
		return nil, err
	}
	if err := t.sdr.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	t.mu.Lock()
	t.centerHz, t.sampleRate = centerHz, sampleRate
	t.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.ready = true
	go t.readLoop(runCtx)

	return t, nil
}

func (t *RTLTuner) connect(ctx context.Context) error {
	var err error
	for i := 0; i < 10; i++ {
		sdr := &RTLTCPSDR{}
		if err = sdr.Connect(t.addr); err == nil {
			t.mu.Lock()
			t.sdr = sdr
			t.mu.Unlock()
			log.Info("tuner connected", "tuner", t.name, "chip", sdr.Info.TunerName())
			return nil
		}
		time.Sleep(100 * time.Millisecond)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return fmt.Errorf("radio: connecting to rtl_tcp: %w", err)
}

// readLoop is the tuner callback thread: it decodes one batch of u8 I/Q
// samples at a time via an IQReader over the rtl_tcp connection and
// synchronously hands it to every registered DDR, in registration
// order, before reading the next batch.
func (t *RTLTuner) readLoop(ctx context.Context) {
	// batch must be a multiple of every Channelizer's overall decimation
	// factor a registered DDR might be running: up to 60 on a 960 kHz
	// tuner (Bw10k/Bw6k) and up to 150 on a 2.4 MHz tuner (Bw10k/Bw6k).
	// 14400 is a multiple of both (and of every smaller factor in
	// between), so Cascade.Decimate never sees a batch its stages can't
	// evenly divide down to the channel rate.
	const batch = 14400

	t.mu.RLock()
	sdr := t.sdr
	t.mu.RUnlock()
	if sdr == nil {
		t.setReady(false)
		return
	}

	iqr := NewIQReader(sdr.TCPConn)
	for samples := range iqr.BatchStream64(ctx, batch, 0) {
		t.broadcast(samples)
	}

	if err := iqr.Err(); err != nil {
		log.Error("tuner read failed", "tuner", t.name, "err", err)
	}
	t.setReady(false)
}

func (t *RTLTuner) broadcast(samples []complex64) {
	t.ddrsMu.Lock()
	ddrs := t.ddrs
	t.ddrsMu.Unlock()
	for _, d := range ddrs {
		d.IQReceived(samples)
	}

	t.captureMu.Lock()
	capture := t.capture
	t.captureMu.Unlock()
	if capture != nil {
		if err := capture.WriteIQ(samples); err != nil {
			log.Error("raw IQ capture write failed", "tuner", t.name, "err", err)
		}
	}
}

// SetRawCapture attaches a raw I/Q capture that receives a copy of every
// batch this tuner broadcasts, alongside its registered DDRs. Passing
// nil detaches the current capture.
func (t *RTLTuner) SetRawCapture(c *RawIQCapture) {
	t.captureMu.Lock()
	t.capture = c
	t.captureMu.Unlock()
}

func (t *RTLTuner) setReady(ready bool) {
	t.mu.Lock()
	t.ready = ready
	t.mu.Unlock()
}

// Name returns the tuner's configured identifier.
func (t *RTLTuner) Name() string { return t.name }

// SampleRate returns the tuner's native I/Q sample rate in Hz.
func (t *RTLTuner) SampleRate() uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sampleRate
}

// CenterFq returns the tuner's current center frequency in Hz.
func (t *RTLTuner) CenterFq() uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.centerHz
}

// IsReady reports whether the tuner is currently delivering samples.
func (t *RTLTuner) IsReady() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ready
}

// RegisterDdr adds d to the set of DDRs that receive this tuner's
// sample broadcasts.
func (t *RTLTuner) RegisterDdr(d *ddr.DDR) {
	t.ddrsMu.Lock()
	defer t.ddrsMu.Unlock()
	t.ddrs = append(t.ddrs, d)
}

// UnregisterDdr removes d from the broadcast set. The tuner callback
// thread is never mid-flight with this call's caller, so after this
// returns no future broadcast references d.
func (t *RTLTuner) UnregisterDdr(d *ddr.DDR) {
	t.ddrsMu.Lock()
	defer t.ddrsMu.Unlock()
	for i, cur := range t.ddrs {
		if cur == d {
			t.ddrs = append(t.ddrs[:i], t.ddrs[i+1:]...)
			return
		}
	}
}

// SetCenterFreq retunes the hardware and notifies every registered DDR
// via TunerFqChanged.
func (t *RTLTuner) SetCenterFreq(hz uint32) error {
	if hz < minFreqHz || hz > maxFreqHz {
		return ErrFrequencyOutOfRange
	}
	t.mu.Lock()
	sdr := t.sdr
	t.mu.Unlock()
	if sdr == nil {
		return fmt.Errorf("radio: tuner %s not connected", t.name)
	}
	if err := sdr.SetCenterFreq(hz); err != nil {
		return err
	}
	t.mu.Lock()
	t.centerHz = hz
	t.mu.Unlock()

	t.ddrsMu.Lock()
	ddrs := t.ddrs
	t.ddrsMu.Unlock()
	for _, d := range ddrs {
		d.TunerFqChanged(hz)
	}
	return nil
}

// Close stops the read loop, closes the rtl_tcp connection, and waits
// for the subprocess to exit.
func (t *RTLTuner) Close() error {
	if t.cancel != nil {
		t.cancel()
	}
	t.mu.Lock()
	if t.sdr != nil {
		t.sdr.Close()
		t.sdr = nil
	}
	t.mu.Unlock()
	t.fpty.Close()
	return t.cmd.Wait()
}

// SetSampleRate changes the tuner's native sample rate and updates the
// value SampleRate() reports.
func (t *RTLTuner) SetSampleRate(rate uint32) error {
	if !isValidRate(rate) {
		return ErrRateOutOfRange
	}
	t.mu.Lock()
	sdr := t.sdr
	t.mu.Unlock()
	if sdr == nil {
		return fmt.Errorf("radio: tuner %s not connected", t.name)
	}
	if err := sdr.SetSampleRate(rate); err != nil {
		return err
	}
	t.mu.Lock()
	t.sampleRate = rate
	t.mu.Unlock()
	return nil
}

// SetFreqCorrection applies a ppm crystal correction, used by Calibrate.
func (t *RTLTuner) SetFreqCorrection(ppm uint32) error {
	t.mu.Lock()
	sdr := t.sdr
	t.mu.Unlock()
	if sdr == nil {
		return fmt.Errorf("radio: tuner %s not connected", t.name)
	}
	return sdr.SetFreqCorrection(ppm)
}

// Reader returns a batching reader over the tuner's raw I/Q stream, for
// use by SpectralPower-based calibration. It must not be used once the
// tuner's own readLoop has started consuming the connection, since both
// would race for the same bytes; Calibrate runs it only before
// RegisterDdr is first called.
func (t *RTLTuner) Reader() *MixerIQReader {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return NewMixerIQReader(t.sdr.TCPConn, HzBand{Center: uint64(t.centerHz), Width: uint64(t.sampleRate)})
}

func isValidRate(rate uint32) bool {
	return !((rate <= 225000) || (rate > 3200000) ||
		((rate > 300000) && (rate <= 900000)))
}
