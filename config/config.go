// Package config holds the campusnav runtime settings, read from a YAML file.
//
//	graph: data/campus.dot
//	capacity: 64
//	parallelism: 4
//	log_level: info
//	listen: 127.0.0.1:8080
//
// Fields missing from the file keep their Default values.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/errkind"
	"github.com/katalvlaran/campusnav/hashmap"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = fmt.Errorf("config: %w", errkind.ErrInvalidArgument)

// Config is the full set of runtime settings.
type Config struct {
	Graph       string `yaml:"graph"`       // DOT file with the campus edges
	Capacity    int    `yaml:"capacity"`    // initial graph index capacity
	Parallelism int    `yaml:"parallelism"` // 0 selects GOMAXPROCS
	LogLevel    string `yaml:"log_level"`   // debug, info, warn or error
	Listen      string `yaml:"listen"`      // HTTP address for serve
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Graph:    "campus.dot",
		Capacity: hashmap.DefaultCapacity,
		LogLevel: "info",
		Listen:   "127.0.0.1:8080",
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting outside its allowed range.
func (c Config) Validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be > 0, got %d", ErrInvalidConfig, c.Capacity)
	case c.Parallelism < 0:
		return fmt.Errorf("%w: parallelism must be >= 0, got %d", ErrInvalidConfig, c.Parallelism)
	case strings.TrimSpace(c.Listen) == "":
		return fmt.Errorf("%w: listen address is empty", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel. An empty level means info.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}
