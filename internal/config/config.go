// Package config provides configuration management for stixgraph.
//
// Config file locations (priority order):
//  1. $STIXGRAPH_CONFIG
//  2. ./stixgraph.yaml
//  3. $XDG_CONFIG_HOME/stixgraph/config.yaml
//  4. ~/.config/stixgraph/config.yaml
//  5. /etc/stixgraph/config.yaml
//
// Keys missing from the file keep their defaults. Command-line flags that
// were set explicitly override the file.
package config

import (
	"fmt"
	"os"

	"stixgraph/internal/codec"
	"stixgraph/internal/domain"
	"stixgraph/internal/source"

	"gopkg.in/yaml.v3"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Parse decodes YAML over DefaultConfig so absent keys keep their defaults
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Filter:  FilterConfig{LifecyclePolicy: domain.DefaultLifecyclePolicy()},
		Graph:   GraphConfig{},
		Aliases: AliasConfig{AliasOptions: domain.DefaultAliasOptions(), Format: AliasFormatJSON},
		Output:  OutputConfig{Separator: codec.DefaultSeparator, Indent: codec.DefaultIndent},
		Source:  SourceConfig{HTTPTimeout: Duration(source.DefaultHTTPTimeout)},
		Log:     LogConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// applyDefaults fills in values a file may have blanked out
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Aliases.Format == "" {
		c.Aliases.Format = AliasFormatJSON
	}
	if c.Output.Separator == "" {
		c.Output.Separator = codec.DefaultSeparator
	}
	if c.Source.HTTPTimeout <= 0 {
		c.Source.HTTPTimeout = Duration(source.DefaultHTTPTimeout)
	}
	if c.Log.Level == "" {
		c.Log.Level = LogLevelInfo
	}
	if c.Log.Format == "" {
		c.Log.Format = LogFormatText
	}
}

// Validate rejects values no component can act on and folds the enum
// fields to lowercase
func (c *Config) Validate() error {
	level, err := ParseLogLevel(string(c.Log.Level))
	if err != nil {
		return err
	}
	logFormat, err := ParseLogFormat(string(c.Log.Format))
	if err != nil {
		return err
	}
	aliasFormat, err := ParseAliasFormat(string(c.Aliases.Format))
	if err != nil {
		return err
	}
	c.Log.Level, c.Log.Format, c.Aliases.Format = level, logFormat, aliasFormat

	if c.Output.Indent < 0 {
		return fmt.Errorf("invalid indent %d: must not be negative", c.Output.Indent)
	}
	if c.Source.MaxParallel < 0 {
		return fmt.Errorf("invalid max_parallel %d: must not be negative", c.Source.MaxParallel)
	}
	return nil
}

// CodecOptions returns the serializer settings
func (c *Config) CodecOptions() codec.Options {
	return codec.Options{
		Separator: c.Output.Separator,
		Tabs:      c.Output.Tabs,
		Namespace: c.Output.Namespace,
		Indent:    c.Output.Indent,
	}
}

// SourceOptions returns the loading settings
func (c *Config) SourceOptions() source.Options {
	return source.Options{
		HTTPTimeout: c.Source.HTTPTimeout.Duration(),
		MaxParallel: c.Source.MaxParallel,
	}
}
