// Package config loads gridsearch settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsearch/dijkstra"
)

// Environment variables that override file values.
const (
	EnvInputDir        = "GRIDSEARCH_INPUT_DIR"
	EnvStepBudget      = "GRIDSEARCH_STEP_BUDGET"
	EnvExpansionBudget = "GRIDSEARCH_EXPANSION_BUDGET"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level configuration.
type Config struct {
	InputDir string         `yaml:"input_dir"`
	Logging  LoggingConfig  `yaml:"logging"`
	Budgets  BudgetConfig   `yaml:"budgets"`
	Tilt     TiltConfig     `yaml:"tilt"`
	Crucible CrucibleConfig `yaml:"crucible"`
	Garden   GardenConfig   `yaml:"garden"`
	Springs  SpringsConfig  `yaml:"springs"`
	Pulse    PulseConfig    `yaml:"pulse"`
	Batch    BatchConfig    `yaml:"batch"`
}

// LoggingConfig sets the base log level; -v flags lower it further.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// BudgetConfig caps the work of unbounded searches. Zero means unlimited.
type BudgetConfig struct {
	// Steps caps the states a cycle detector may record.
	Steps int `yaml:"steps"`
	// Expansions caps the states Dijkstra may settle.
	Expansions int `yaml:"expansions"`
	// Presses caps button presses while waiting for pulse periods.
	Presses int `yaml:"presses"`
}

// TiltConfig configures the spin-cycle load query.
type TiltConfig struct {
	Cycles int `yaml:"cycles"`
}

// CrucibleConfig holds the run rule for the heat-loss search.
type CrucibleConfig struct {
	Rule dijkstra.RunRule `yaml:"rule"`
}

// GardenConfig configures the walker spread.
type GardenConfig struct {
	Steps int `yaml:"steps"`
}

// SpringsConfig configures record unfolding.
type SpringsConfig struct {
	Unfold int `yaml:"unfold"`
}

// PulseConfig configures the module network queries.
type PulseConfig struct {
	Presses int    `yaml:"presses"`
	Target  string `yaml:"target"`
}

// BatchConfig lists jobs run concurrently by the batch command.
type BatchConfig struct {
	Parallel int   `yaml:"parallel"`
	Jobs     []Job `yaml:"jobs"`
}

// Job is one batch entry: a puzzle command and its input selection.
type Job struct {
	Name     string `yaml:"name"`
	Command  string `yaml:"command"`
	Examples bool   `yaml:"examples"`
	Suffix   string `yaml:"suffix"`
	// Variant selects the second form of a puzzle (unfolded records,
	// presses until low) when true.
	Variant bool `yaml:"variant"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		InputDir: ".",
		Logging:  LoggingConfig{Level: "info"},
		Budgets: BudgetConfig{
			Steps:      1_000_000,
			Expansions: 0,
			Presses:    100_000,
		},
		Tilt:     TiltConfig{Cycles: 1_000_000_000},
		Crucible: CrucibleConfig{Rule: dijkstra.RunRule{Min: 1, Max: 3}},
		Garden:   GardenConfig{Steps: 64},
		Springs:  SpringsConfig{Unfold: 1},
		Pulse:    PulseConfig{Presses: 1000, Target: "rx"},
		Batch:    BatchConfig{Parallel: 4},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if dir := os.Getenv(EnvInputDir); dir != "" {
		c.InputDir = dir
	}
	for env, dst := range map[string]*int{
		EnvStepBudget:      &c.Budgets.Steps,
		EnvExpansionBudget: &c.Budgets.Expansions,
	} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, env, v, err)
		}
		*dst = n
	}
	return nil
}

// Validate checks ranges and the crucible run rule.
func (c *Config) Validate() error {
	checks := []struct {
		name string
		v    int
		min  int
	}{
		{"budgets.steps", c.Budgets.Steps, 0},
		{"budgets.expansions", c.Budgets.Expansions, 0},
		{"budgets.presses", c.Budgets.Presses, 0},
		{"tilt.cycles", c.Tilt.Cycles, 0},
		{"garden.steps", c.Garden.Steps, 0},
		{"springs.unfold", c.Springs.Unfold, 1},
		{"pulse.presses", c.Pulse.Presses, 0},
		{"batch.parallel", c.Batch.Parallel, 1},
	}
	for _, chk := range checks {
		if chk.v < chk.min {
			return fmt.Errorf("%w: %s must be >= %d, got %d", ErrInvalid, chk.name, chk.min, chk.v)
		}
	}
	if err := c.Crucible.Rule.Validate(); err != nil {
		return fmt.Errorf("%w: crucible.rule: %w", ErrInvalid, err)
	}
	for i, j := range c.Batch.Jobs {
		if j.Command == "" {
			return fmt.Errorf("%w: batch.jobs[%d] has no command", ErrInvalid, i)
		}
	}
	return nil
}
