// Package config loads the application configuration from defaults,
// environment variables, and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"unshredder/internal/logger"
	"unshredder/internal/strip"
)

// Config holds all tunables of the reconstruction pipeline.
type Config struct {
	// StripWidth is the number of pixel columns per shred.
	StripWidth int `mapstructure:"stripWidth"`
	// SamplingDistance is the vertical stride used when sampling border
	// columns.
	SamplingDistance int `mapstructure:"samplingDistance"`
	// Metric names the border distance metric: sad, ssd, luma, or lab.
	Metric string `mapstructure:"metric"`
	// Log holds logger settings.
	Log logger.Config `mapstructure:"log"`
}

// Load builds the configuration. Defaults are overridden by environment
// variables prefixed with UNSHREDDER (e.g. UNSHREDDER_STRIPWIDTH), which
// are in turn overridden by any bound command-line flags.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("stripWidth", 32)
	v.SetDefault("samplingDistance", 2)
	v.SetDefault("metric", "sad")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("UNSHREDDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		// Flag spelling follows CLI convention, viper keys follow the
		// config schema.
		bindings := map[string]string{
			"stripWidth":       "strip-width",
			"samplingDistance": "sampling-distance",
			"metric":           "metric",
			"log.level":        "log-level",
			"log.format":       "log-format",
		}
		for key, name := range bindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the pipeline cannot work
// with.
func (c *Config) Validate() error {
	if c.StripWidth <= 0 {
		return fmt.Errorf("stripWidth must be positive, got %d", c.StripWidth)
	}
	if c.SamplingDistance <= 0 {
		return fmt.Errorf("samplingDistance must be positive, got %d", c.SamplingDistance)
	}
	if _, err := strip.ParseMetric(c.Metric); err != nil {
		return err
	}
	return nil
}

// ParsedMetric returns the configured metric as a strip.Metric. Validate
// must have accepted the configuration first.
func (c *Config) ParsedMetric() strip.Metric {
	m, _ := strip.ParseMetric(c.Metric)
	return m
}
