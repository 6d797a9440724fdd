package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGenerations = 50
	DefaultHorizon     = 10.0
	DefaultSubsteps    = 10
	DefaultTolerance   = 1e-6
	DefaultIntegrator  = "rk4"
	DefaultOutputDir   = "."
)

type Config struct {
	Input      string         `yaml:"input"`
	OutputDir  string         `yaml:"output_dir"`
	Integrator string         `yaml:"integrator"`
	Dynamics   DynamicsConfig `yaml:"dynamics"`
}

// DynamicsConfig controls the replicator-dynamics stage. Enabled is
// the explicit capability flag for the feature: when false the
// scorer and matrix stages still run and the dynamics stage is
// reported as disabled.
type DynamicsConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Generations int     `yaml:"generations"`
	Horizon     float64 `yaml:"horizon"`
	Substeps    int     `yaml:"substeps"`
	Adaptive    bool    `yaml:"adaptive"`
	Tolerance   float64 `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir:  DefaultOutputDir,
		Integrator: DefaultIntegrator,
		Dynamics: DynamicsConfig{
			Enabled:     true,
			Generations: DefaultGenerations,
			Horizon:     DefaultHorizon,
			Substeps:    DefaultSubsteps,
			Tolerance:   DefaultTolerance,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dynamics.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", c.Dynamics.Generations)
	}
	if c.Dynamics.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %f", c.Dynamics.Horizon)
	}
	if c.Dynamics.Substeps <= 0 {
		return fmt.Errorf("substeps must be positive, got %d", c.Dynamics.Substeps)
	}
	if c.Dynamics.Adaptive && c.Dynamics.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Dynamics.Tolerance)
	}
	return nil
}
