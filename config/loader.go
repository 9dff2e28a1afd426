/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	tokfs "bennypowers.dev/tokscss/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokscss"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/tokscss.{yaml,yml,json} under rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem tokfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}

		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
		cfg.applyDefaults()
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns the config under rootDir, or defaults if there is
// none. A config file that exists but cannot be read is an error.
func LoadOrDefault(filesystem tokfs.FileSystem, rootDir string) (*Config, error) {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return Default(), nil
	}
	return cfg, nil
}
