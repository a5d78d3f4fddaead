// Package config loads blockfall settings from a YAML file and holds the runtime values
// frontends change while a session is running.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSpeed is returned for a speed that is not one of the presets.
var ErrInvalidSpeed = errors.New("invalid speed")

// Speed is a named tick delay preset. The zero value selects DefaultDelay.
type Speed string

const (
	SpeedDefault Speed = ""
	SpeedSlow    Speed = "slow"
	SpeedNormal  Speed = "normal"
	SpeedFast    Speed = "fast"
)

// DefaultDelay is used until a preset is chosen.
const DefaultDelay = 500 * time.Millisecond

// Delay returns the time between two ticks for s.
func (s Speed) Delay() time.Duration {
	switch s {
	case SpeedSlow:
		return 600 * time.Millisecond
	case SpeedNormal:
		return 400 * time.Millisecond
	case SpeedFast:
		return 200 * time.Millisecond
	default:
		return DefaultDelay
	}
}

// ParseSpeed validates a speed name.
func ParseSpeed(name string) (Speed, error) {
	switch s := Speed(name); s {
	case SpeedDefault, SpeedSlow, SpeedNormal, SpeedFast:
		return s, nil
	default:
		return SpeedDefault, fmt.Errorf("%w: %q", ErrInvalidSpeed, name)
	}
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Speed Speed  `yaml:"speed"`
	Seed  uint64 `yaml:"seed"`
	Debug bool   `yaml:"debug"`
	Log   Log    `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: Log{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := ParseSpeed(string(c.Speed)); err != nil {
		return err
	}

	switch c.Log.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}

	return nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
