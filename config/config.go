// Package config loads the settings of the mcore scenario driver.
//
// Precedence, lowest first: built-in defaults, an optional config file
// (yaml, toml or json, by extension), MCORE_* environment variables, and
// finally command-line flags that were explicitly set.
//
// Keys and their flags:
//
//	log.path               --log-file       last_run_output.txt
//	log.level              --log-level      info
//	log.format             --log-format     console (console|json)
//	log.truncate           --log-truncate   true
//	hash.buckets           --hash-buckets   32
//	hash.big_size          --hash-big-size  1000000
//	stack.big_size         --stack-big-size 1000000
//	scenario.dynamic_count                  32
//	scenario.remove_count                   10
//
// Environment names replace dots with underscores: MCORE_LOG_PATH,
// MCORE_HASH_BUCKETS, ...
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mcore/logging"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "MCORE"

// ErrInvalidConfig indicates a value failed validation.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all driver settings.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Hash     HashConfig     `mapstructure:"hash"`
	Stack    StackConfig    `mapstructure:"stack"`
	Scenario ScenarioConfig `mapstructure:"scenario"`
}

// LogConfig configures the run log.
type LogConfig struct {
	Path     string `mapstructure:"path"`
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Truncate bool   `mapstructure:"truncate"`
}

// HashConfig sizes the hash map scenarios.
type HashConfig struct {
	Buckets int `mapstructure:"buckets"`
	BigSize int `mapstructure:"big_size"`
}

// StackConfig sizes the stack scenarios.
type StackConfig struct {
	BigSize int `mapstructure:"big_size"`
}

// ScenarioConfig sizes the shared scenario loops.
type ScenarioConfig struct {
	DynamicCount int `mapstructure:"dynamic_count"`
	RemoveCount  int `mapstructure:"remove_count"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"log-file":       "log.path",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"log-truncate":   "log.truncate",
	"hash-buckets":   "hash.buckets",
	"hash-big-size":  "hash.big_size",
	"stack-big-size": "stack.big_size",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Path:     "last_run_output.txt",
			Level:    "info",
			Format:   "console",
			Truncate: true,
		},
		Hash:     HashConfig{Buckets: 32, BigSize: 1_000_000},
		Stack:    StackConfig{BigSize: 1_000_000},
		Scenario: ScenarioConfig{DynamicCount: 32, RemoveCount: 10},
	}
}

// RegisterFlags adds the driver flags to fs with their default values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("log-file", d.Log.Path, "path of the run log")
	fs.String("log-level", d.Log.Level, "minimum log level (debug, info, warn, error)")
	fs.String("log-format", d.Log.Format, "log line format (console, json)")
	fs.Bool("log-truncate", d.Log.Truncate, "truncate the run log instead of appending")
	fs.Int("hash-buckets", d.Hash.Buckets, "bucket count for the hash map scenarios")
	fs.Int("hash-big-size", d.Hash.BigSize, "insert count for the hash map big-size scenario")
	fs.Int("stack-big-size", d.Stack.BigSize, "push count for the stack big-size scenario")
}

// Load reads configuration from path (optional), the environment and the
// flags in fs (optional). Only flags that were set on the command line
// override lower layers.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.truncate", d.Log.Truncate)
	v.SetDefault("hash.buckets", d.Hash.Buckets)
	v.SetDefault("hash.big_size", d.Hash.BigSize)
	v.SetDefault("stack.big_size", d.Stack.BigSize)
	v.SetDefault("scenario.dynamic_count", d.Scenario.DynamicCount)
	v.SetDefault("scenario.remove_count", d.Scenario.RemoveCount)
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Log.Path == "" {
		return fmt.Errorf("%w: log.path is empty", ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	for key, n := range map[string]int{
		"hash.buckets":           c.Hash.Buckets,
		"hash.big_size":          c.Hash.BigSize,
		"stack.big_size":         c.Stack.BigSize,
		"scenario.dynamic_count": c.Scenario.DynamicCount,
	} {
		if n <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, key, n)
		}
	}
	if c.Scenario.RemoveCount < 0 || c.Scenario.RemoveCount > c.Scenario.DynamicCount {
		return fmt.Errorf("%w: scenario.remove_count must be within [0, %d], got %d",
			ErrInvalidConfig, c.Scenario.DynamicCount, c.Scenario.RemoveCount)
	}

	return nil
}

// LogOptions translates the log section into logging options.
func (c *Config) LogOptions() []logging.Option {
	level, _ := logging.ParseLevel(c.Log.Level)
	opts := []logging.Option{logging.WithLevel(level)}
	if c.Log.Truncate {
		opts = append(opts, logging.WithTruncate())
	}
	if c.Log.Format == "json" {
		opts = append(opts, logging.WithJSON())
	}

	return opts
}
