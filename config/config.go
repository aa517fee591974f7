// Package config loads influence settings from an optional YAML file and
// INFLUENCE_* environment variables, validates them, and turns them into
// engine options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "INFLUENCE_"

// Config holds all settings.
type Config struct {
	Log        Log        `yaml:"log"`
	Simulation Simulation `yaml:"simulation"`
	Selection  Selection  `yaml:"selection"`
	Path       Path       `yaml:"path"`
	Cascade    Cascade    `yaml:"cascade"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Simulation configures the Monte-Carlo spread estimator.
type Simulation struct {
	Runs             int   `yaml:"runs" validate:"gte=1"`
	Workers          int   `yaml:"workers" validate:"gte=1,lte=256"`
	Seed             int64 `yaml:"seed"`
	IndependentDraws bool  `yaml:"independent_draws"`
}

// Selection configures seed selection.
type Selection struct {
	Budget    int    `yaml:"budget" validate:"gte=1"`
	Algorithm string `yaml:"algorithm" validate:"oneof=celf celfpp celf++ greedy"`
}

// Path configures the pathfinder.
type Path struct {
	Mode      string `yaml:"mode" validate:"oneof=trust content"`
	Heuristic string `yaml:"heuristic" validate:"oneof=bounded raw"`
}

// Cascade configures time-stepped runs.
type Cascade struct {
	Days         int `yaml:"days" validate:"gte=1"`
	RecoveryDays int `yaml:"recovery_days" validate:"gte=1"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log:        Log{Level: "info", Format: "console"},
		Simulation: Simulation{Runs: 100, Workers: 1, Seed: 1},
		Selection:  Selection{Budget: 5, Algorithm: "celfpp"},
		Path:       Path{Mode: "trust", Heuristic: "bounded"},
		Cascade:    Cascade{Days: 14, RecoveryDays: 7},
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment, in that order, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := cfg.decode(raw); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode overlays YAML onto cfg. Unknown keys are rejected.
func (c *Config) decode(raw []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.Log.Level = envOrDefault("LOG_LEVEL", c.Log.Level)
	c.Log.Format = envOrDefault("LOG_FORMAT", c.Log.Format)
	c.Selection.Algorithm = envOrDefault("ALGORITHM", c.Selection.Algorithm)
	c.Path.Mode = envOrDefault("PATH_MODE", c.Path.Mode)
	c.Path.Heuristic = envOrDefault("HEURISTIC", c.Path.Heuristic)

	ints := []struct {
		key string
		dst *int
	}{
		{"RUNS", &c.Simulation.Runs},
		{"WORKERS", &c.Simulation.Workers},
		{"BUDGET", &c.Selection.Budget},
		{"DAYS", &c.Cascade.Days},
		{"RECOVERY_DAYS", &c.Cascade.RecoveryDays},
	}
	for _, f := range ints {
		v, err := strconv.Atoi(envOrDefault(f.key, strconv.Itoa(*f.dst)))
		if err != nil {
			return fmt.Errorf("%w: %s%s must be an integer", ErrInvalid, EnvPrefix, f.key)
		}
		*f.dst = v
	}

	seed, err := strconv.ParseInt(envOrDefault("SEED", strconv.FormatInt(c.Simulation.Seed, 10)), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %sSEED must be an integer", ErrInvalid, EnvPrefix)
	}
	c.Simulation.Seed = seed

	draws, err := strconv.ParseBool(envOrDefault("INDEPENDENT_DRAWS", strconv.FormatBool(c.Simulation.IndependentDraws)))
	if err != nil {
		return fmt.Errorf("%w: %sINDEPENDENT_DRAWS must be a boolean", ErrInvalid, EnvPrefix)
	}
	c.Simulation.IndependentDraws = draws

	return nil
}

var validate = validator.New()

// Validate checks every field against its allowed set.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(parts, "; "))
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}

	return fallback
}
