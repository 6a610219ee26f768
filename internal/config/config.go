// Package config loads the optional flowjunit YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/flowjunit/internal/junit"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".flowjunit.yaml"

// Config holds settings shared by the CLI commands.
// Command-line flags take precedence over every value here.
type Config struct {
	// Suite overrides the identifiers written into the document.
	Suite junit.Suite `yaml:"suite"`

	// Output is the default destination for convert ("" or "-" is stdout).
	Output string `yaml:"output,omitempty"`

	// Archive is the default SQLite archive path ("" disables archiving).
	Archive string `yaml:"archive,omitempty"`

	// SchemaCheck enables the CUE schema check before decoding.
	// Nil means the default (enabled).
	SchemaCheck *bool `yaml:"schema_check,omitempty"`

	// FailOnErrors makes convert exit non-zero when the report has errors.
	FailOnErrors bool `yaml:"fail_on_errors,omitempty"`
}

// SchemaCheckEnabled reports whether the schema check should run.
func (c *Config) SchemaCheckEnabled() bool {
	return c.SchemaCheck == nil || *c.SchemaCheck
}

// Load reads the config at path. If path is empty, DefaultFile is tried and
// a missing file yields an empty Config. An explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config, rejecting unknown keys.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cfg, nil
}
