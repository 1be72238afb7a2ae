// Package config holds the inject-visitor configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Generics modes.
const (
	GenericsNone      = "none"
	GenericsArguments = "arguments"
)

// Config is the configuration of one inject-visitor run.
type Config struct {
	// Directives are the comment directive prefixes read as annotations.
	Directives []string `yaml:"directives,omitempty"`
	// Generics selects the generics resolver: "none" or "arguments".
	Generics string `yaml:"generics,omitempty"`
	// Tags restricts the struct tag keys exposed as annotations; empty means all.
	Tags []string `yaml:"tags,omitempty"`
	// BuildFlags are passed to the Go build system when loading packages.
	BuildFlags []string `yaml:"buildFlags,omitempty"`
	// Verbosity is the log verbosity; 0 logs errors only.
	Verbosity int `yaml:"verbosity,omitempty"`
	// LogFile redirects logs from stderr to a file.
	LogFile string `yaml:"logFile,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if len(c.Directives) == 0 {
		c.Directives = []string{"inject"}
	}

	if c.Generics == "" {
		c.Generics = GenericsNone
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !slices.Contains([]string{GenericsNone, GenericsArguments}, c.Generics) {
		return fmt.Errorf("unknown generics mode %q (want %q or %q)", c.Generics, GenericsNone, GenericsArguments)
	}

	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative, got %d", c.Verbosity)
	}

	for _, d := range c.Directives {
		if d == "" {
			return errors.New("empty directive prefix")
		}
	}

	return nil
}
