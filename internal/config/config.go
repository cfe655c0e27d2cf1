// Package config loads the runtime settings of the statistics library.
//
// Configuration is loaded in the following order (later overrides earlier):
//
//  1. Built-in defaults
//  2. Config file (YAML, keys impl, no_simd, max_scratch)
//  3. Environment variables (STATS_IMPL, STATS_NO_SIMD, STATS_MAX_SCRATCH)
//
// Command-line flags in cmd/statsinfo are applied on top by the caller.
//
// Example:
//
//	cfg, err := config.LoadFromFile("stats.yaml")
//	if err != nil {
//		return err
//	}
//	if err := cfg.Validate(); err != nil {
//		return err
//	}
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvImpl       = "STATS_IMPL"
	EnvNoSIMD     = "STATS_NO_SIMD"
	EnvMaxScratch = "STATS_MAX_SCRATCH"
)

// DefaultMaxScratch is the default per-call scratch limit in elements.
const DefaultMaxScratch = 1 << 27

// ImplNames lists the accepted values of Config.Impl, lowest tier first.
// The empty string is equivalent to "auto".
var ImplNames = []string{"naive", "sse2", "avx", "avxfma", "avx512", "avx512fma", "auto"}

// Config holds the library settings.
type Config struct {
	// Impl caps the tier an automatic selection may start from.
	// One of ImplNames; "" and "auto" mean no cap.
	Impl string

	// NoSIMD makes automatic selection install the scalar tier.
	NoSIMD bool

	// MaxScratch is the largest scratch buffer, in elements, that paired and
	// difference-in-differences statistics may acquire.
	MaxScratch int
}

// LoadDefaults returns a Config with built-in defaults.
func LoadDefaults() *Config {
	return &Config{
		Impl:       "auto",
		NoSIMD:     false,
		MaxScratch: DefaultMaxScratch,
	}
}

// LoadFromEnv returns the defaults overridden by environment variables.
// Malformed values are ignored and leave the previous setting in place.
func LoadFromEnv() *Config {
	cfg := LoadDefaults()
	applyEnvVars(cfg)
	return cfg
}

// yamlConfig mirrors the config file structure.
type yamlConfig struct {
	Impl       string `yaml:"impl"`
	NoSIMD     *bool  `yaml:"no_simd"`
	MaxScratch int    `yaml:"max_scratch"`
}

// LoadFromFile loads defaults, then the YAML file at path, then environment
// variables. A missing file is not an error.
func LoadFromFile(path string) (*Config, error) {
	cfg := LoadDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvVars(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yc.Impl != "" {
		cfg.Impl = yc.Impl
	}
	if yc.NoSIMD != nil {
		cfg.NoSIMD = *yc.NoSIMD
	}
	if yc.MaxScratch > 0 {
		cfg.MaxScratch = yc.MaxScratch
	}

	applyEnvVars(cfg)
	return cfg, nil
}

func applyEnvVars(cfg *Config) {
	cfg.Impl = getEnv(EnvImpl, cfg.Impl)
	cfg.NoSIMD = getEnvBool(EnvNoSIMD, cfg.NoSIMD)
	cfg.MaxScratch = getEnvInt(EnvMaxScratch, cfg.MaxScratch)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !validImpl(c.Impl) {
		return fmt.Errorf("invalid impl %q: want one of %s", c.Impl, strings.Join(ImplNames, ", "))
	}
	if c.MaxScratch <= 0 {
		return fmt.Errorf("invalid max scratch: %d", c.MaxScratch)
	}
	return nil
}

// String returns a compact representation for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Impl: %s, NoSIMD: %v, MaxScratch: %d}", c.Impl, c.NoSIMD, c.MaxScratch)
}

func validImpl(name string) bool {
	if name == "" {
		return true
	}
	name = strings.ToLower(name)
	for _, n := range ImplNames {
		if n == name {
			return true
		}
	}
	return false
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return strings.ToLower(strings.TrimSpace(val))
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil && i > 0 {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(strings.TrimSpace(val))
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}
