// Package config loads the YAML document describing the tuners and DDRs
// a ddrx process should bring up. It generalizes spec section 6's
// FQ/WBRX/MODULATION keys into a typed document (grounded on the
// example pack's gopkg.in/yaml.v3 usage) instead of svxlink's INI
// sections; the key names themselves are unchanged.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kd9xyz/ddrx/ddr"
)

// TunerConfig describes one wideband front-end to attach to. Calibrate,
// when set, runs a PPM self-calibration pass against the NOAA
// weather-radio band right after the tuner connects and before any DDR
// registers against it.
type TunerConfig struct {
	Driver     string `yaml:"driver"`
	Serial     string `yaml:"serial"`
	CenterHz   uint32 `yaml:"center_hz"`
	SampleRate uint32 `yaml:"sample_rate"`
	Calibrate  bool   `yaml:"calibrate"`
}

// DDRConfig is the per-DDR section: FQ and WBRX are required, MODULATION
// defaults to FM when absent, exactly per spec section 6.
type DDRConfig struct {
	FQ         float64 `yaml:"fq"`
	WBRX       string  `yaml:"wbrx"`
	Modulation string  `yaml:"modulation"`
}

// Config is the top-level document: named tuners and named DDRs.
type Config struct {
	Tuners map[string]TunerConfig `yaml:"tuners"`
	DDRs   map[string]DDRConfig   `yaml:"ddrs"`
}

// Load reads and parses the YAML document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Params validates the DDRConfig's required keys and returns the
// ddr.Params plus the tuner name to attach to. Missing FQ or WBRX, or
// an unknown MODULATION string, are configuration faults per spec
// section 7 kind 1 — reported here rather than deeper in DDR.Initialize
// so the operator sees the exact missing/ill-typed key.
func (d DDRConfig) Params() (ddr.Params, string, error) {
	if d.FQ == 0 {
		return ddr.Params{}, "", fmt.Errorf("config: missing required key FQ")
	}
	if d.WBRX == "" {
		return ddr.Params{}, "", fmt.Errorf("config: missing required key WBRX")
	}
	mod := d.Modulation
	if mod == "" {
		mod = "FM"
	}
	if _, err := ddr.ParseModulation(mod); err != nil {
		return ddr.Params{}, "", fmt.Errorf("config: %w", err)
	}
	return ddr.Params{FQ: int64(d.FQ), Modulation: mod}, d.WBRX, nil
}
