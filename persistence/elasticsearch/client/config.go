// The MIT License
//
// Copyright (c) 2020 Temporal Technologies Inc.  All rights reserved.
//
// Copyright (c) 2020 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package client

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/validator.v2"
	"gopkg.in/yaml.v3"
)

type (
	// Config holds the connection settings for the Elasticsearch client.
	Config struct {
		URL      string `yaml:"url" validate:"nonzero"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`

		// DocumentType is the legacy mapping type. It is only transmitted
		// to pre-7.0 servers; types are deprecated in 7.x and gone in 8.
		DocumentType string `yaml:"documentType"`

		EnableSniff       bool   `yaml:"enableSniff"`
		EnableHealthcheck bool   `yaml:"enableHealthcheck"`
		LogLevel          string `yaml:"logLevel"`

		CloseIdleConnectionsInterval time.Duration `yaml:"closeIdleConnectionsInterval"`
	}
)

const defaultURL = "http://localhost:9200"

// DefaultConfig returns a Config pointing at a local single-node cluster.
func DefaultConfig() *Config {
	return &Config{
		URL: defaultURL,
	}
}

// LoadConfig reads and validates a Config from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file %q: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates this config.
func (c *Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return fmt.Errorf("invalid elasticsearch config: %w", err)
	}
	return nil
}
