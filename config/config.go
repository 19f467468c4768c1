package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyInputPath    = "input.path"
	KeyExportFormat = "export.format"
	KeyExportOutput = "export.output"
)

type Config struct {
	Input  InputConfig  `mapstructure:"input" validate:"required"`
	Export ExportConfig `mapstructure:"export"`
}

type InputConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type ExportConfig struct {
	Format string `mapstructure:"format" validate:"omitempty,oneof=csv excel xlsx sqlite"`
	Output string `mapstructure:"output"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# timelog configuration
input:
  path: "log.txt"

export:
  format: "csv"
  output: "timelog-report.csv"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyInputPath, "log.txt")
	v.SetDefault(KeyExportFormat, "csv")
	v.SetDefault(KeyExportOutput, "timelog-report.csv")
}
