package sixaxis

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// defaultDeviceName is the name genuine PS3 controllers report through
// the input subsystem.
const defaultDeviceName = "PLAYSTATION(R)3 Controller"

// Config carries the construction-time settings for a Controller.
type Config struct {
	// DeviceName is the input device name Connect scans for when no
	// DevicePath is set.
	DeviceName string `toml:"device_name"`
	// DevicePath, when non-empty, names the event device node to open
	// directly, skipping discovery.
	DevicePath string `toml:"device_path"`

	// DeadZone is the fraction of each axis's centre-to-bound range
	// around the centre that reads as no motion. Applied per axis, so
	// pushing a stick fully right does not affect its Y dead zone.
	DeadZone float64 `toml:"dead_zone"`
	// HotZone is the fraction of the range, measured from the extreme
	// end, that reads as full deflection. Non-zero values partially
	// square the circular range of motion of the sticks; 1/sqrt(2)
	// makes a circular stick motion trace the full unit square.
	HotZone float64 `toml:"hot_zone"`
	// InvertAxes flips the sign of the corrected value per axis, in
	// slot order: left X, left Y, right X, right Y. Missing entries
	// default to false.
	InvertAxes []bool `toml:"invert_axes"`

	// BindDefaults makes WithController bind START to resetting the
	// axis calibration and SELECT to recentring the sticks.
	BindDefaults bool `toml:"bind_defaults"`
}

// DefaultConfig returns the settings used when no config file is
// present: the genuine controller name, a 5% dead zone and no hot
// zone or inversion.
func DefaultConfig() *Config {
	return &Config{
		DeviceName: defaultDeviceName,
		DeadZone:   0.05,
		HotZone:    0.0,
	}
}

func (c *Config) invert(slot int) bool {
	return slot < len(c.InvertAxes) && c.InvertAxes[slot]
}

// LoadConfig reads a Config from a TOML file. If the file does not
// exist the defaults are written there and returned, so a first run
// leaves an editable file behind.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveConfig(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, err
	}
	if cfg.DeviceName == "" {
		cfg.DeviceName = defaultDeviceName
	}
	return cfg, nil
}

// SaveConfig writes the config as TOML, creating the directory if
// needed.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
