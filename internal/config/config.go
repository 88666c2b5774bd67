// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles csharpify project configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/csharpify/internal/style"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the csharpify.yaml project configuration file. It
// holds the default conversion settings applied when flags are absent.
type Config struct {
	Version  int            `yaml:"version"`
	Defaults style.Settings `yaml:"defaults"`
}

// New returns a Config with the current version and default settings.
func New() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		Defaults: style.Default(),
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	return c.Defaults.Validate()
}
