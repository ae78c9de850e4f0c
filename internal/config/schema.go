package config

import (
	"time"

	"stixgraph/internal/domain"
)

// Config is the root configuration structure
type Config struct {
	Version int          `yaml:"version"`
	Filter  FilterConfig `yaml:"filter"`
	Graph   GraphConfig  `yaml:"graph"`
	Aliases AliasConfig  `yaml:"aliases"`
	Output  OutputConfig `yaml:"output"`
	Source  SourceConfig `yaml:"source"`
	Log     LogConfig    `yaml:"log"`
}

// FilterConfig selects which objects reach the graph
type FilterConfig struct {
	domain.LifecyclePolicy `yaml:",inline"`

	// Predicates are filter texts such as "type = attack-pattern", ANDed
	// with any given on the command line
	Predicates []string `yaml:"predicates,omitempty"`
}

// GraphConfig toggles the optional edge rules
type GraphConfig struct {
	domain.BuildOptions `yaml:",inline"`
}

// AliasConfig controls alias map derivation and output
type AliasConfig struct {
	domain.AliasOptions `yaml:",inline"`
	Format              AliasFormat `yaml:"format"`
}

// OutputConfig holds serializer settings
type OutputConfig struct {
	Separator string `yaml:"separator"`
	Tabs      bool   `yaml:"tabs"`
	Indent    int    `yaml:"indent"`
	Namespace string `yaml:"namespace,omitempty"`
}

// SourceConfig holds loading settings
type SourceConfig struct {
	HTTPTimeout Duration `yaml:"http_timeout"`
	MaxParallel int      `yaml:"max_parallel"` // 0 = one goroutine per location
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
