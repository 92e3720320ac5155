// Package config loads multi-grain filter layouts from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brianolson/mgbloom"
)

// Grain types accepted in GrainSpec.Type.
const (
	TypeBlock    = "block"
	TypeHash     = "hash"
	TypeCounting = "counting"
	TypeExact    = "exact"
)

var (
	ErrNoGrains    = errors.New("config: no grains configured")
	ErrUnknownType = errors.New("config: unknown grain type")
)

// Config represents the root configuration structure
type Config struct {
	Threshold        int         `yaml:"threshold"`
	DistinctEstimate bool        `yaml:"distinctEstimate"`
	Grains           []GrainSpec `yaml:"grains"`
}

// GrainSpec describes one grain. Fields that do not apply to Type are
// ignored.
type GrainSpec struct {
	Type       string `yaml:"type"`
	Size       uint64 `yaml:"size,omitempty"`
	Hashes     int    `yaml:"hashes,omitempty"`
	MaxCount   int    `yaml:"maxCount,omitempty"`
	Seed       uint64 `yaml:"seed,omitempty"`
	OffsetBits uint   `yaml:"offsetBits,omitempty"`
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the grain list. Grain parameters are checked when the
// grains are built.
func (c *Config) Validate() error {
	if len(c.Grains) == 0 {
		return ErrNoGrains
	}
	for i, g := range c.Grains {
		switch g.Type {
		case TypeBlock, TypeHash, TypeCounting, TypeExact:
		default:
			return fmt.Errorf("grain %d: %w %q", i, ErrUnknownType, g.Type)
		}
	}
	return nil
}

// GrainConfig converts g to the matching mgbloom config.
func (g GrainSpec) GrainConfig() (mgbloom.GrainConfig, error) {
	switch g.Type {
	case TypeBlock:
		return mgbloom.BlockConfig{Size: g.Size, OffsetBits: g.OffsetBits}, nil
	case TypeHash:
		return mgbloom.HashConfig{Size: g.Size, Hashes: g.Hashes, Seed: g.Seed, OffsetBits: g.OffsetBits}, nil
	case TypeCounting:
		return mgbloom.CountingConfig{Size: g.Size, MaxCount: g.MaxCount, Seed: g.Seed, OffsetBits: g.OffsetBits}, nil
	case TypeExact:
		return mgbloom.ExactConfig{OffsetBits: g.OffsetBits}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, g.Type)
}

// GrainConfigs converts every grain, in order.
func (c *Config) GrainConfigs() ([]mgbloom.GrainConfig, error) {
	configs := make([]mgbloom.GrainConfig, 0, len(c.Grains))
	for i, g := range c.Grains {
		gc, err := g.GrainConfig()
		if err != nil {
			return nil, fmt.Errorf("grain %d: %w", i, err)
		}
		configs = append(configs, gc)
	}
	return configs, nil
}

// Build creates the filter described by c. opts are passed to
// mgbloom.New after the options implied by c.
func (c *Config) Build(opts ...mgbloom.Option) (*mgbloom.MultiGrain, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	configs, err := c.GrainConfigs()
	if err != nil {
		return nil, err
	}
	if c.DistinctEstimate {
		opts = append([]mgbloom.Option{mgbloom.WithDistinctEstimate()}, opts...)
	}
	return mgbloom.New(configs, c.Threshold, opts...)
}
