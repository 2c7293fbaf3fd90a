// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/katalvlaran/vecsse/numeric"
)

// Parse parses the raw JSON configuration.
func Parse(raw []byte) (config Config, err error) {
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, fmt.Errorf("unmarshal config: %v", err)
	}
	if config.DefaultKind != "" {
		if _, err = numeric.ParseKind(config.DefaultKind); err != nil {
			return config, fmt.Errorf("config default_kind: %w", err)
		}
	}
	return config, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(errors.New("could not read config file"), err)
	}
	return Parse(raw)
}

// Config drives the vecsse command line runner.
type Config struct {
	LogLevel    LogLevel `json:"log_level"`
	Workers     int      `json:"workers"`
	Progress    bool     `json:"progress"`
	DefaultKind string   `json:"default_kind"`
}

// GetWorkers returns the number of concurrent jobs, defaulting to the CPU count.
func (c Config) GetWorkers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// GetDefaultKind returns the element kind used by jobs that do not name one.
func (c Config) GetDefaultKind() numeric.Kind {
	k, err := numeric.ParseKind(c.DefaultKind)
	if err != nil {
		return numeric.Float64
	}
	return k
}
