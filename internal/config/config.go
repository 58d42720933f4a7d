// Package config loads and saves problem definitions: the base Hamiltonian's
// leaf terms plus expansion settings. Coefficients are written as strings
// ("1", "-1/2", "0.25") and parsed into exact rationals.
package config

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/maksli/vanvleck/internal/term"
)

const (
	DefaultOrder  = 3
	DefaultOutput = "text"
)

type Config struct {
	Order       int          `yaml:"order"`
	Output      string       `yaml:"output"`
	Hamiltonian []LeafConfig `yaml:"hamiltonian"`
}

// LeafConfig is one harmonic of the base Hamiltonian.
type LeafConfig struct {
	Rotating bool   `yaml:"rotating"`
	Coeff    string `yaml:"coeff"`
}

func DefaultConfig() *Config {
	return &Config{
		Order:  DefaultOrder,
		Output: DefaultOutput,
		Hamiltonian: []LeafConfig{
			{Rotating: false, Coeff: "1"},
			{Rotating: true, Coeff: "1"},
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildHamiltonian parses the configured leaves into a collection suitable
// for seeding an expansion.
func (c *Config) BuildHamiltonian() (term.Collection, error) {
	out := make(term.Collection, 0, len(c.Hamiltonian))
	for i, leaf := range c.Hamiltonian {
		r, ok := new(big.Rat).SetString(leaf.Coeff)
		if !ok {
			return nil, fmt.Errorf("config: hamiltonian term %d: invalid coefficient %q", i, leaf.Coeff)
		}
		out = append(out, term.NewLeaf(leaf.Rotating, r))
	}
	return out, nil
}
