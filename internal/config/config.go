// Package config loads the TOML configuration of the hashi command.
//
// Example file:
//
//	[log]
//	level = "debug"
//	logfile = "/var/log/hashi.log"
//	max_log_size = 10
//	max_log_age = 7
//	json = false
//
//	[solver]
//	max_passes = 0
//	workers = 4
//
//	[metrics]
//	textfile = "/var/lib/node_exporter/hashi.prom"
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the decoded configuration file.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Solver  SolverConfig  `toml:"solver"`
	Metrics MetricsConfig `toml:"metrics"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level   string `toml:"level"`
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"` // megabytes
	MaxAge  int    `toml:"max_log_age"`  // days
	JSON    bool   `toml:"json"`
}

// SolverConfig controls solve runs.
type SolverConfig struct {
	MaxPasses int `toml:"max_passes"`
	Workers   int `toml:"workers"`
}

// MetricsConfig controls the Prometheus text file export.
type MetricsConfig struct {
	Textfile string `toml:"textfile"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", MaxSize: 10, MaxAge: 7},
		Solver: SolverConfig{Workers: runtime.NumCPU()},
	}
}

// Load decodes filename over the defaults. An empty filename returns the
// defaults. Keys the configuration does not know are an error.
func Load(filename string) (Config, error) {
	c := Default()
	if filename == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(filename, &c)
	if err != nil {
		return Config{}, fmt.Errorf("could not decode TOML config %s: %w", filename, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys in TOML config %s: %s", filename, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("TOML config %s: %w", filename, err)
	}

	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Solver.MaxPasses < 0 {
		return fmt.Errorf("solver.max_passes must be >= 0, got %d", c.Solver.MaxPasses)
	}
	if c.Solver.Workers < 1 {
		return fmt.Errorf("solver.workers must be >= 1, got %d", c.Solver.Workers)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxAge < 0 {
		return fmt.Errorf("log sizes must be >= 0")
	}

	return nil
}
