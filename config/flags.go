package config

import (
	"flag"
	"fmt"
)

// Flags holds the command-line options shared by every binary. Values given on the command
// line override the file.
type Flags struct {
	Path     string
	speed    string
	seed     uint64
	debug    bool
	logLevel string
	fs       *flag.FlagSet
}

// RegisterFlags defines the shared options on fs.
func RegisterFlags(fs *flag.FlagSet, defaultPath string) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", defaultPath, "Path to the YAML configuration file.")
	fs.StringVar(&f.speed, "speed", "", "Tick speed: slow, normal or fast.")
	fs.Uint64Var(&f.seed, "seed", 0, "Seed for the piece sequence; 0 picks one at random.")
	fs.BoolVar(&f.debug, "debug", false, "Show the debug overlay where supported.")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error.")
	return f
}

// Load reads the configuration file and applies every flag that was set explicitly. It must
// be called after fs.Parse.
func (f *Flags) Load() (Config, error) {
	cfg, err := Load(f.Path)
	if err != nil {
		return cfg, err
	}

	set := make(map[string]bool)
	f.fs.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})

	if set["speed"] {
		speed, err := ParseSpeed(f.speed)
		if err != nil {
			return cfg, fmt.Errorf("-speed: %w", err)
		}
		cfg.Speed = speed
	}
	if set["seed"] {
		cfg.Seed = f.seed
	}
	if set["debug"] {
		cfg.Debug = f.debug
	}
	if set["log-level"] {
		cfg.Log.Level = f.logLevel
	}

	return cfg, nil
}
