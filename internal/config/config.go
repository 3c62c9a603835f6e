// Package config defines the application configuration and loads it from a
// YAML file and LIVING_COST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/living-cost/pkg/calculator"
	"github.com/iwvelando/living-cost/pkg/constants"
	"github.com/iwvelando/living-cost/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for living-cost.
type Configuration struct {
	Logging    LoggingConfig    `yaml:"logging,omitempty" mapstructure:"logging"`
	Output     OutputConfig     `yaml:"output,omitempty" mapstructure:"output"`
	Calculator CalculatorConfig `yaml:"calculator,omitempty" mapstructure:"calculator"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `yaml:"format,omitempty" mapstructure:"format" validate:"omitempty,oneof=json console"`
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format" validate:"omitempty,oneof=pretty csv json"`
}

// CalculatorConfig holds the calculator's UI limits.
type CalculatorConfig struct {
	MaxHouseholdSize int `yaml:"maxHouseholdSize,omitempty" mapstructure:"maxHouseholdSize" validate:"min=1,max=1000"`
}

// Options converts the calculator settings into calculator options.
func (c CalculatorConfig) Options() []calculator.Option {
	return []calculator.Option{calculator.WithMaxHouseholdSize(c.MaxHouseholdSize)}
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Calculator: CalculatorConfig{MaxHouseholdSize: constants.DefaultMaxHouseholdSize},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults register every key so environment overrides are honored
	// even when the file omits them.
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	v.SetDefault("calculator.maxHouseholdSize", constants.DefaultMaxHouseholdSize)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields defaults plus environment
// overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Validate checks every field against its allowed values.
func (c *Configuration) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
