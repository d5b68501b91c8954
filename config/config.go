// Package config loads the replay configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/krisalay/objstats/emit"
	"github.com/krisalay/objstats/eviction"
	"gopkg.in/yaml.v3"
)

// Config is the whole replay configuration.
type Config struct {
	Store struct {
		Strict       bool  `yaml:"strict"`
		AllowedTypes []int `yaml:"allowed_types"`
		SizeHint     int   `yaml:"size_hint"`
	} `yaml:"store"`

	Cache struct {
		Capacity float64             `yaml:"capacity"`
		Policy   eviction.PolicyType `yaml:"policy"`
	} `yaml:"cache"`

	Replay struct {
		Traces  []string `yaml:"traces"`
		Workers int      `yaml:"workers"`

		// Synthetic is used when Traces is empty.
		Synthetic struct {
			Requests  int64   `yaml:"requests"`
			Objects   uint64  `yaml:"objects"`
			Skew      float64 `yaml:"skew"`
			MaxSize   float64 `yaml:"max_size"`
			DataTypes int     `yaml:"data_types"`
			Seed      int64   `yaml:"seed"`
		} `yaml:"synthetic"`
	} `yaml:"replay"`

	Output struct {
		// Dir receives one <trace>.csv per replay. Empty disables output.
		Dir    string    `yaml:"dir"`
		Mode   emit.Mode `yaml:"mode"`
		Buffer int       `yaml:"buffer"`
	} `yaml:"output"`

	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
}

// Defaults returns a config that replays a small synthetic trace.
func Defaults() *Config {
	var c Config
	c.Cache.Capacity = 1024
	c.Cache.Policy = eviction.LRU
	c.Replay.Workers = 4
	c.Replay.Synthetic.Requests = 100_000
	c.Replay.Synthetic.Objects = 10_000
	c.Replay.Synthetic.Skew = 1.2
	c.Replay.Synthetic.MaxSize = 16
	c.Replay.Synthetic.DataTypes = 4
	c.Replay.Synthetic.Seed = 1
	c.Output.Mode = emit.Through
	c.Output.Buffer = 4096
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Log.Output = "stderr"
	return &c
}

// Load reads path on top of Defaults, applies env overrides and validates.
// An empty path means defaults only.
func Load(path string) (*Config, error) {
	c := Defaults()

	if path != "" {
		// #nosec G304 - path is given on the command line by the operator
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment wins over the file, as usual in deployments.
	if lvl := os.Getenv("OBJSTATS_LOG_LEVEL"); lvl != "" {
		c.Log.Level = lvl
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Cache.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("cache.capacity must be positive, got %v", c.Cache.Capacity))
	}
	if !c.Cache.Policy.Valid() {
		errs = append(errs, fmt.Errorf("cache.policy %q is not one of LRU, LFU, FIFO", c.Cache.Policy))
	}
	if c.Replay.Workers < 0 {
		errs = append(errs, fmt.Errorf("replay.workers must not be negative, got %d", c.Replay.Workers))
	}
	if len(c.Replay.Traces) == 0 && c.Replay.Synthetic.Requests <= 0 {
		errs = append(errs, errors.New("replay needs traces or synthetic.requests > 0"))
	}
	if c.Output.Mode != emit.Through && c.Output.Mode != emit.Back {
		errs = append(errs, fmt.Errorf("output.mode %q is not one of through, back", c.Output.Mode))
	}
	if c.Output.Mode == emit.Back && c.Output.Buffer <= 0 {
		errs = append(errs, fmt.Errorf("output.buffer must be positive for write-back, got %d", c.Output.Buffer))
	}

	return errors.Join(errs...)
}
