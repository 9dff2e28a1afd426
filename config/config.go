/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration for tokscss.
package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// DefaultInput is the token document read when none is configured.
	DefaultInput = "tokens.json"

	// DefaultOutput is the stylesheet written when none is configured.
	DefaultOutput = "_colors.scss"

	// DefaultSection is the top-level key holding color tokens.
	DefaultSection = "colors"
)

// Config represents the tokscss configuration.
type Config struct {
	// Input is the token document path.
	Input string `yaml:"input" json:"input"`

	// Output is the SCSS file path.
	Output string `yaml:"output" json:"output"`

	// Section is the top-level key to extract colors from.
	Section string `yaml:"section" json:"section"`

	// Title replaces the first banner line of the output.
	Title string `yaml:"title" json:"title"`

	// Exclude lists doublestar patterns matched against token paths joined
	// with "/", e.g. "colors/legacy/**". Matching tokens are left out.
	Exclude []string `yaml:"exclude" json:"exclude"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Input:   DefaultInput,
		Output:  DefaultOutput,
		Section: DefaultSection,
	}
}

// applyDefaults fills unset fields from Default.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Section == "" {
		c.Section = d.Section
	}
}

// Validate reports malformed exclude patterns.
func (c *Config) Validate() error {
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// Excluded reports whether a token path matches any exclude pattern.
func (c *Config) Excluded(path []string) bool {
	if len(c.Exclude) == 0 {
		return false
	}
	joined := strings.Join(path, "/")
	for _, pattern := range c.Exclude {
		if matched, _ := doublestar.Match(pattern, joined); matched {
			return true
		}
	}
	return false
}
