package radio

import (
	"errors"

	"github.com/charmbracelet/log"
)

var ErrRateOutOfRange = errors.New("sample rate out of range")
var ErrFrequencyOutOfRange = errors.New("frequency out of range")

// Calibrate estimates and applies a crystal frequency correction for t
// by measuring drift against the NOAA weather-radio channels, the way
// FindPPM does. It is meant to be run once, right after NewRTLTuner and
// before any DDR registers against the tuner, since it retunes t's
// hardware to the NOAA band during measurement and reads directly off
// the tuner's rtl_tcp connection — running it once a DDR is attached
// would yank every channel off frequency mid-stream.
func Calibrate(t *RTLTuner) error {
	for {
		ppm, err := FindPPM(t)
		if err != nil {
			return err
		}
		log.Info("ppm measured", "tuner", t.Name(), "ppm", ppm)
		if ppm < 1.0 {
			break
		}
		if err := t.SetFreqCorrection(uint32(ppm)); err != nil {
			return err
		}
		ppm, err = FindPPM(t)
		if err != nil {
			return err
		}
		log.Info("ppm after correction", "tuner", t.Name(), "ppm", ppm)
		if ppm < 2.0 {
			break
		} else if err := t.SetFreqCorrection(0); err != nil {
			return err
		}
	}
	return nil
}
