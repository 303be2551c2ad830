// Package config loads solver settings from YAML files and ACO_* environment
// variables.
//
// Precedence, lowest first: Default(), the YAML file, the .env file, the
// process environment. Command-line flags are applied by the caller on top.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/antcolony/aco"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment key read by ApplyEnv.
const EnvPrefix = "ACO_"

// ErrInvalid reports a value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk form of a run configuration.
type Config struct {
	Ants                 int     `yaml:"ants"`
	BestAnts             int     `yaml:"best_ants"`
	Iterations           int     `yaml:"iterations"`
	DecayRate            float64 `yaml:"decay_rate"`
	Alpha                float64 `yaml:"alpha"`
	Beta                 float64 `yaml:"beta"`
	Workers              int     `yaml:"workers"`
	StartNode            int     `yaml:"start_node"`
	Seed                 int64   `yaml:"seed"`
	MaxConstructAttempts int     `yaml:"max_construct_attempts"`

	// Store is the SQLite run history path; empty disables history.
	Store string `yaml:"store"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // text | json
}

// Default mirrors aco.DefaultOptions.
func Default() Config {
	o := aco.DefaultOptions()

	return Config{
		Ants:                 o.Ants,
		BestAnts:             o.BestAnts,
		Iterations:           o.Iterations,
		DecayRate:            o.DecayRate,
		Alpha:                o.Alpha,
		Beta:                 o.Beta,
		Workers:              o.Workers,
		StartNode:            o.StartNode,
		Seed:                 o.Seed,
		MaxConstructAttempts: o.MaxConstructAttempts,
		LogLevel:             "info",
		LogFormat:            "text",
	}
}

// Load reads path over Default(). Unknown keys are an error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err = c.Decode(data); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}

	return c, nil
}

// Decode overlays the YAML document in data onto c.
func (c *Config) Decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Environment returns the ACO_* variables from dotenv (if the file exists)
// overlaid with the process environment.
func Environment(dotenv string) (map[string]string, error) {
	env := map[string]string{}
	if dotenv != "" {
		file, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			for k, v := range file {
				if strings.HasPrefix(k, EnvPrefix) {
					env[k] = v
				}
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("config: %s: %w", dotenv, err)
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}

	return env, nil
}

// ApplyEnv sets fields from ACO_* keys of env, e.g. ACO_ANTS=40 or
// ACO_DECAY_RATE=0.9. Keys are the YAML names upper-cased.
func (c *Config) ApplyEnv(env map[string]string) error {
	for key, raw := range env {
		name, ok := strings.CutPrefix(key, EnvPrefix)
		if !ok {
			continue
		}
		if err := c.set(strings.ToLower(name), strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%s=%q: %w", key, raw, err)
		}
	}

	return nil
}

func (c *Config) set(name, raw string) error {
	var (
		i   int
		f   float64
		s64 int64
		err error
	)
	switch name {
	case "ants", "best_ants", "iterations", "workers", "start_node", "max_construct_attempts":
		if i, err = strconv.Atoi(raw); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		*c.intField(name) = i
	case "decay_rate", "alpha", "beta":
		if f, err = strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		*c.floatField(name) = f
	case "seed":
		if s64, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		c.Seed = s64
	case "store":
		c.Store = raw
	case "log_level":
		c.LogLevel = raw
	case "log_format":
		c.LogFormat = raw
	default:
		return fmt.Errorf("%w: unknown key", ErrInvalid)
	}

	return nil
}

func (c *Config) intField(name string) *int {
	switch name {
	case "ants":
		return &c.Ants
	case "best_ants":
		return &c.BestAnts
	case "iterations":
		return &c.Iterations
	case "workers":
		return &c.Workers
	case "start_node":
		return &c.StartNode
	}

	return &c.MaxConstructAttempts
}

func (c *Config) floatField(name string) *float64 {
	switch name {
	case "decay_rate":
		return &c.DecayRate
	case "alpha":
		return &c.Alpha
	}

	return &c.Beta
}

// Validate checks the logging settings. Solver settings are checked by
// aco.Solve, which knows the instance size.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w: %w", ErrInvalid, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format %q: %w", c.LogFormat, ErrInvalid)
	}

	return nil
}

// Options converts c into solver options logging to log.
func (c Config) Options(log logrus.FieldLogger) aco.Options {
	return aco.Options{
		Ants:                 c.Ants,
		BestAnts:             c.BestAnts,
		Iterations:           c.Iterations,
		DecayRate:            c.DecayRate,
		Alpha:                c.Alpha,
		Beta:                 c.Beta,
		Workers:              c.Workers,
		StartNode:            c.StartNode,
		Seed:                 c.Seed,
		MaxConstructAttempts: c.MaxConstructAttempts,
		Logger:               log,
	}
}
