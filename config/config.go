/*
Package config reads settings for script runs from YAML files.

A configuration file looks like this:

    target: 192.168.0.7
    include_path: /usr/share/nasl
    trace: Info
    resolve_timeout: 2s
    parameters:
      - id: timeout
        value: "5"

Command line flags of the CLI take precedence over values from a file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'nasl.cli'
func tracer() tracing.Trace {
	return tracing.Select("nasl.cli")
}

// ScannerParameter is a preference a script may query with
// get_preference().
type ScannerParameter struct {
	ID    string `yaml:"id" json:"id"`
	Value string `yaml:"value" json:"value"`
}

// Config holds the settings for running scripts.
type Config struct {
	Target         string             `yaml:"target"`
	IncludePath    string             `yaml:"include_path"`
	Trace          string             `yaml:"trace"`
	ResolveTimeout time.Duration      `yaml:"resolve_timeout"`
	Parameters     []ScannerParameter `yaml:"parameters"`
}

// Default returns a configuration for local runs.
func Default() *Config {
	return &Config{
		IncludePath:    ".",
		Trace:          "Error",
		ResolveTimeout: 2 * time.Second,
	}
}

// Load reads a configuration file. Settings missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse reads a configuration from YAML.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	for i, p := range c.Parameters {
		if p.ID == "" {
			return nil, fmt.Errorf("parsing config: parameter #%d has no id", i+1)
		}
	}
	if c.ResolveTimeout <= 0 {
		return nil, fmt.Errorf("parsing config: resolve timeout must be positive, is %v", c.ResolveTimeout)
	}
	tracer().Debugf("config: target=%q, %d parameters", c.Target, len(c.Parameters))
	return c, nil
}

// Preferences returns the scanner parameters as a map. Later entries win.
func (c *Config) Preferences() map[string]string {
	prefs := make(map[string]string, len(c.Parameters))
	for _, p := range c.Parameters {
		prefs[p.ID] = p.Value
	}
	return prefs
}
