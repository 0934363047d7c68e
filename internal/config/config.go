// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads gapscan settings from .gapscan.yaml.
//
// Every key is optional. Unset keys take the defaults below; command-line
// flags override both.
//
//	upper_bound: 512        # bound used when `gapscan scan` gets no argument
//	limit: 4294967296       # largest bound the CLI accepts
//	workers: 8              # 0 = one per CPU, 1 = sequential
//	chunk_size: 65536
//	metrics_addr: ":9464"   # empty disables the Prometheus endpoint
//	no_color: false
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/gapscan/internal/errors"
	"github.com/kraklabs/gapscan/pkg/gap"
)

// FileName is the config file looked up in the working directory.
const FileName = ".gapscan.yaml"

// Defaults.
const (
	DefaultUpperBound int64 = 512
	DefaultLimit      int64 = 1 << 32
)

// FileConfig mirrors the YAML file. Pointer fields distinguish "unset" from
// a zero value.
type FileConfig struct {
	UpperBound  *int64  `yaml:"upper_bound"`
	Limit       *int64  `yaml:"limit"`
	Workers     *int    `yaml:"workers"`
	ChunkSize   *int64  `yaml:"chunk_size"`
	MetricsAddr *string `yaml:"metrics_addr"`
	NoColor     *bool   `yaml:"no_color"`
}

// Config is the resolved configuration.
type Config struct {
	UpperBound  int64
	Limit       int64
	Workers     int
	ChunkSize   int64
	MetricsAddr string
	NoColor     bool

	// Path is the file the values were read from, empty for pure defaults.
	Path string
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		UpperBound: DefaultUpperBound,
		Limit:      DefaultLimit,
		ChunkSize:  gap.DefaultChunkSize,
	}
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// Load resolves the configuration. An explicit path must exist; otherwise
// FileName in dir is used when present and defaults apply when it is not.
// Errors are *errors.UserError.
func Load(explicit, dir string) (*Config, error) {
	path := explicit
	if path == "" {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err != nil {
			return Default(), nil
		}
		path = candidate
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NewNotFoundError(
			"Config file not found",
			fmt.Sprintf("%s does not exist", path),
			"Check the --config path or remove the flag to use defaults",
		)
	}

	fc, err := LoadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(
			"Cannot load gapscan configuration",
			fmt.Sprintf("%s could not be parsed", path),
			"Fix the YAML syntax or delete the file to use defaults",
			err,
		)
	}

	cfg := fc.Apply(Default())
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply overlays the set fields of fc onto base and returns base.
func (fc FileConfig) Apply(base *Config) *Config {
	if fc.UpperBound != nil {
		base.UpperBound = *fc.UpperBound
	}
	if fc.Limit != nil {
		base.Limit = *fc.Limit
	}
	if fc.Workers != nil {
		base.Workers = *fc.Workers
	}
	if fc.ChunkSize != nil {
		base.ChunkSize = *fc.ChunkSize
	}
	if fc.MetricsAddr != nil {
		base.MetricsAddr = *fc.MetricsAddr
	}
	if fc.NoColor != nil {
		base.NoColor = *fc.NoColor
	}
	return base
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	fail := func(cause string) error {
		where := "the configuration"
		if c.Path != "" {
			where = c.Path
		}
		return errors.NewConfigError(
			"Invalid gapscan configuration",
			cause,
			fmt.Sprintf("Edit %s", where),
			nil,
		)
	}

	switch {
	case c.Limit < 1:
		return fail(fmt.Sprintf("limit must be at least 1, got %d", c.Limit))
	case c.UpperBound < 1:
		return fail(fmt.Sprintf("upper_bound must be at least 1, got %d", c.UpperBound))
	case c.UpperBound > c.Limit:
		return fail(fmt.Sprintf("upper_bound %d exceeds limit %d", c.UpperBound, c.Limit))
	case c.Workers < 0:
		return fail(fmt.Sprintf("workers must not be negative, got %d", c.Workers))
	case c.ChunkSize < 1:
		return fail(fmt.Sprintf("chunk_size must be at least 1, got %d", c.ChunkSize))
	}
	return nil
}
