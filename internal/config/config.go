package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGasConstant       = 8.314
	DefaultLaminar           = 2000.0
	DefaultTurbulent         = 4000.0
	DefaultGasPrecision      = 4
	DefaultReynoldsPrecision = 2
	DefaultLogLevel          = "warn"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	GasConstant float64                `yaml:"gas_constant"`
	Thresholds  ThresholdsConfig       `yaml:"thresholds"`
	Precision   PrecisionConfig        `yaml:"precision"`
	LogLevel    string                 `yaml:"log_level"`
	Fluids      map[string]FluidConfig `yaml:"fluids"`
}

type ThresholdsConfig struct {
	Laminar   float64 `yaml:"laminar"`
	Turbulent float64 `yaml:"turbulent"`
}

type PrecisionConfig struct {
	Gas      int `yaml:"gas"`
	Reynolds int `yaml:"reynolds"`
}

// FluidConfig holds reference properties of a fluid.
type FluidConfig struct {
	Description string  `yaml:"description"`
	Density     float64 `yaml:"density"`
	Viscosity   float64 `yaml:"viscosity"`
}

func builtinConfig() *Config {
	return &Config{
		GasConstant: DefaultGasConstant,
		Thresholds: ThresholdsConfig{
			Laminar:   DefaultLaminar,
			Turbulent: DefaultTurbulent,
		},
		Precision: PrecisionConfig{
			Gas:      DefaultGasPrecision,
			Reynolds: DefaultReynoldsPrecision,
		},
		LogLevel: DefaultLogLevel,
	}
}

// DefaultConfig returns the embedded configuration. It falls back to the
// compiled-in constants if the embedded document is unusable.
func DefaultConfig() *Config {
	cfg, err := Parse(defaultsYAML)
	if err != nil {
		return builtinConfig()
	}
	return cfg
}

// Parse decodes a YAML document over the built-in defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := builtinConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GasConstant <= 0 {
		return fmt.Errorf("config: gas_constant must be positive, got %g", c.GasConstant)
	}
	if c.Thresholds.Laminar <= 0 || c.Thresholds.Laminar > c.Thresholds.Turbulent {
		return fmt.Errorf("config: thresholds must satisfy 0 < laminar <= turbulent, got %g and %g",
			c.Thresholds.Laminar, c.Thresholds.Turbulent)
	}
	if c.Precision.Gas < 0 || c.Precision.Reynolds < 0 {
		return fmt.Errorf("config: precision must not be negative")
	}
	for name, f := range c.Fluids {
		if f.Density <= 0 || f.Viscosity <= 0 {
			return fmt.Errorf("config: fluid %s needs positive density and viscosity", name)
		}
	}
	return nil
}
