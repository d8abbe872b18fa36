// Package config holds the ambient tunables of the linguistic frontend:
// the numeric clamp limits used by the full-context label generator and the
// default logging level, loadable from an optional YAML file with
// compiled-in defaults when none is supplied.
package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/tassa-yoniso-manasi-karoto/jpfrontend/jperror"
)

// Limits are the canonical S/M/L/LL numeric clamp limits.
type Limits struct {
	S  int `yaml:"s"`
	M  int `yaml:"m"`
	L  int `yaml:"l"`
	LL int `yaml:"ll"`
}

// DefaultLimits returns the compiled-in default clamp limits.
func DefaultLimits() Limits {
	return Limits{S: 19, M: 49, L: 99, LL: 199}
}

// Config is the full set of loadable tunables.
type Config struct {
	Limits   Limits `yaml:"limits"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the compiled-in configuration used when no YAML file is
// loaded.
func Default() Config {
	return Config{Limits: DefaultLimits(), LogLevel: "info"}
}

// Load reads and parses a YAML config file, filling any field the file
// omits with Default()'s value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, jperror.New(jperror.KindIO, path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, jperror.New(jperror.KindIO, path, err)
	}
	if cfg.Limits == (Limits{}) {
		cfg.Limits = DefaultLimits()
	}
	return cfg, nil
}

// Clamp saturates v to l's configured limit for the given width tag.
func (l Limits) Clamp(v int, width string) int {
	var max int
	switch width {
	case "S":
		max = l.S
	case "M":
		max = l.M
	case "L":
		max = l.L
	case "LL":
		max = l.LL
	default:
		return v
	}
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}
