package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/heatsim/internal/diffuse"
)

const (
	DefaultNx     = 41
	DefaultNt     = 201
	DefaultAlpha  = 0.01
	DefaultLength = 1.0
	DefaultTmax   = 1.0
)

type Config struct {
	Profile string     `yaml:"profile"`
	Nx      int        `yaml:"nx"`
	Nt      int        `yaml:"nt"`
	Alpha   float64    `yaml:"alpha"`
	Length  float64    `yaml:"length"`
	Tmax    float64    `yaml:"tmax"`
	Workers int        `yaml:"workers"`
	Init    InitConfig `yaml:"init"`
}

// InitConfig shapes the initial temperature distribution. Left and
// Right are the fixed boundary values; the remaining fields only apply
// to the generators that use them (pulse position/width, amplitude).
type InitConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Left      float64 `yaml:"left"`
	Right     float64 `yaml:"right"`
	Center    float64 `yaml:"center"`
	Width     float64 `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Profile: "sine",
		Nx:      DefaultNx,
		Nt:      DefaultNt,
		Alpha:   DefaultAlpha,
		Length:  DefaultLength,
		Tmax:    DefaultTmax,
		Init: InitConfig{
			Amplitude: 1.0,
			Center:    DefaultLength / 2,
			Width:     DefaultLength / 4,
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

// Grid returns the diffuse.Grid this configuration describes.
func (c *Config) Grid() diffuse.Grid {
	return diffuse.Grid{
		Nx:     c.Nx,
		Nt:     c.Nt,
		Length: c.Length,
		Alpha:  c.Alpha,
		Tmax:   c.Tmax,
	}
}
