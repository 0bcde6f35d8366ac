// Package config holds the run configuration of the percolation tools: the
// lattice geometry, the Monte-Carlo budget and the critical-value search.
// It loads from a JSON file; omitted fields keep their defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/percolation/critical"
	"github.com/katalvlaran/percolation/lattice"
	"github.com/katalvlaran/percolation/montecarlo"
)

// maxFileSize bounds the config files Load accepts.
const maxFileSize = 1 * 1024 * 1024 // 1MB

// Config is the full set of recognized options.
type Config struct {
	// Lattice geometry.
	Size     int    `json:"size"`
	Topology string `json:"topology"`

	// Monte-Carlo budget.
	Trials  int    `json:"trials"`
	Workers int    `json:"workers"`
	Seed    uint64 `json:"seed"`

	// Occupation probability for single estimates and lattice previews.
	Probability float64 `json:"probability"`

	// Critical-value search.
	Depth     int     `json:"depth"`
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	Threshold float64 `json:"threshold"`

	// Sweep resolution in decimal places (10^decimals grid points).
	Decimals int `json:"decimals"`
}

// Default returns a Config populated with the engine defaults.
func Default() *Config {
	return &Config{
		Size:        montecarlo.DefaultSize,
		Topology:    lattice.Square.String(),
		Trials:      montecarlo.DefaultTrials,
		Workers:     1,
		Probability: 0.5,
		Depth:       critical.DefaultDepth,
		Lower:       0,
		Upper:       1,
		Threshold:   critical.DefaultThreshold,
		Decimals:    1,
	}
}

// Load reads a Config from a JSON file on top of Default().
// The file must have a .json extension and be at most 1MB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks every field, returning errors that wrap the engine's
// sentinels so callers can test them with errors.Is.
func (c *Config) Validate() error {
	topo, err := lattice.ParseTopology(c.Topology)
	if err != nil {
		return err
	}
	est := montecarlo.Options{Size: c.Size, Topology: topo, Trials: c.Trials, Workers: c.Workers}
	if err := est.Validate(); err != nil {
		return err
	}
	if err := lattice.ValidateProbability(c.Probability); err != nil {
		return err
	}
	search := critical.Options{Depth: c.Depth, Lower: c.Lower, Upper: c.Upper, Threshold: c.Threshold}
	if err := search.Validate(); err != nil {
		return err
	}
	if _, err := critical.DecimalGrid(c.Decimals); err != nil {
		return err
	}
	return nil
}

// TopologyValue returns the parsed topology.
func (c *Config) TopologyValue() (lattice.Topology, error) {
	return lattice.ParseTopology(c.Topology)
}

// EstimatorOptions translates the config into montecarlo options.
func (c *Config) EstimatorOptions() ([]montecarlo.Option, error) {
	topo, err := c.TopologyValue()
	if err != nil {
		return nil, err
	}
	return []montecarlo.Option{
		montecarlo.WithSize(c.Size),
		montecarlo.WithTopology(topo),
		montecarlo.WithTrials(c.Trials),
		montecarlo.WithWorkers(c.Workers),
		montecarlo.WithSeed(c.Seed),
	}, nil
}

// SearchOptions translates the config into critical options.
func (c *Config) SearchOptions() []critical.Option {
	return []critical.Option{
		critical.WithDepth(c.Depth),
		critical.WithBounds(c.Lower, c.Upper),
		critical.WithThreshold(c.Threshold),
	}
}
