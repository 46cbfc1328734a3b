package config

import (
	"github.com/BurntSushi/toml"
	"github.com/rkjdid/util"
	"go.bug.st/serial"

	"github.com/tvled/ledoff/adalight"
	"github.com/tvled/ledoff/hyperhdr"
	"github.com/tvled/ledoff/logger"
)

var DefaultConfig = Config{
	Serial:   *adalight.DefaultSerialConfig,
	Adalight: adalight.DefaultConfig,
	Layout:   adalight.GridLayout(5, 8),
	HyperHDR: hyperhdr.DefaultConfig,
	Logger:   logger.DefaultConfig,
}

// Config is the root configuration. Positional CLI arguments take
// precedence over anything read from file; LedCount 0 means derive the
// count from Layout.
type Config struct {
	Device   string
	LedCount int
	Serial   serial.Mode
	Adalight adalight.Config
	Layout   adalight.Layout
	HyperHDR hyperhdr.Config
	Logger   logger.Config
}

// Leds resolves the LED count, preferring the explicit count over the
// layout-derived one.
func (c *Config) Leds() int {
	if c.LedCount > 0 {
		return c.LedCount
	}
	return c.Layout.Count()
}

// Load reads path into a copy of DefaultConfig, so absent keys keep
// their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path as TOML.
func Save(cfg *Config, path string) error {
	return util.WriteTomlFile(cfg, path)
}
