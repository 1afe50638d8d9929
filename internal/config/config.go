// Package config loads settings for the quadra command.
//
// Precedence, highest first:
//  1. Environment variables with the QUADRA_ prefix
//  2. YAML config file (--config)
//  3. Defaults
package config

import (
	"errors"
	"fmt"
	"math"
)

// Integration methods understood by the CLI.
const (
	MethodGauss     = "gauss"
	MethodSimpson   = "simpson"
	MethodTrapezoid = "trapezoid"
	MethodRomberg   = "romberg"
)

// Methods lists the valid values of Config.Method.
var Methods = []string{MethodGauss, MethodSimpson, MethodTrapezoid, MethodRomberg}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the complete quadra configuration.
type Config struct {
	Method    string  `koanf:"method"`
	Integrand string  `koanf:"integrand"`
	Epsilon   float64 `koanf:"epsilon"`

	// Slices selects a fixed-resolution run when > 0 (order n for gauss).
	Slices int `koanf:"slices"`

	// Base and Max override the engine's adaptive limits when > 0.
	Base int `koanf:"base"`
	Max  int `koanf:"max"`

	Log LogConfig `koanf:"log"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Method == "" {
		cfg.Method = MethodRomberg
	}
	if cfg.Integrand == "" {
		cfg.Integrand = "sinsqrt"
	}
	if cfg.Epsilon == 0 {
		cfg.Epsilon = 1e-6
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	if !IsMethod(c.Method) {
		return fmt.Errorf("%w: method must be one of %v, got %q", ErrInvalid, Methods, c.Method)
	}
	if c.Integrand == "" {
		return fmt.Errorf("%w: integrand is required", ErrInvalid)
	}
	if !(c.Epsilon > 0) || math.IsInf(c.Epsilon, 1) {
		return fmt.Errorf("%w: epsilon must be a positive finite number, got %g", ErrInvalid, c.Epsilon)
	}
	if c.Slices < 0 || c.Base < 0 || c.Max < 0 {
		return fmt.Errorf("%w: slices, base and max must be >= 0", ErrInvalid)
	}
	if c.Base > 0 && c.Max > 0 && c.Base > c.Max {
		return fmt.Errorf("%w: base %d exceeds max %d", ErrInvalid, c.Base, c.Max)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("%w: log format must be 'json' or 'console', got %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// IsMethod reports whether m names an integration method.
func IsMethod(m string) bool {
	for _, name := range Methods {
		if m == name {
			return true
		}
	}

	return false
}
