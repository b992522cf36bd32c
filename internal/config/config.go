// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

// Package config handles lightdoc project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the lightdoc.yaml project configuration file.
type Config struct {
	Version  int      `yaml:"version"`
	Document string   `yaml:"document,omitempty"`
	Filters  []Filter `yaml:"filters,omitempty"`
}

// Filter selects a registered document filter by name, with optional
// filter-specific settings.
type Filter struct {
	Name     string         `yaml:"name"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// Default returns the configuration written by lightdoc init.
func Default(document string) *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		Document: document,
		Filters:  []Filter{{Name: "patch-documents"}},
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
	if c.Document == "" {
		return errors.New("document path is not set")
	}
	for i, f := range c.Filters {
		if f.Name == "" {
			return fmt.Errorf("filter %d has no name", i)
		}
	}
	return nil
}
