// Package config provides configuration for the bandwidth visualizer.
package config

import (
	"fmt"
	"strings"

	"pcmviz/pkg/exporting"
)

// Config holds all run options.
type Config struct {
	// Input settings
	File string
	Mode string

	// Chart settings
	Output string
	Report string
	NoOpen bool

	// Series export
	Export string
}

// Default configuration values.
const (
	DefaultMode   = "rw"
	DefaultOutput = "bandwidth.png"
)

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Mode:   DefaultMode,
		Output: DefaultOutput,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("input file is required")
	}
	if c.Mode != "rw" && c.Mode != "total" {
		return fmt.Errorf("invalid mode %q (want rw or total)", c.Mode)
	}
	if c.Output == "" {
		return fmt.Errorf("chart output path must not be empty")
	}
	if c.Export != "" {
		if _, ok := exporting.GetByPath(c.Export); !ok {
			return fmt.Errorf("unsupported export format for file: %s", c.Export)
		}
	}
	return nil
}

// ReportPath returns the HTML report path, derived from the chart output
// path unless set explicitly.
func (c *Config) ReportPath() string {
	if c.Report != "" {
		return c.Report
	}
	out := c.Output
	if i := strings.LastIndex(out, "."); i > 0 {
		out = out[:i]
	}
	return out + ".html"
}
