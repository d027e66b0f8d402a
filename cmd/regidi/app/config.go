package app

import (
	"fmt"
	"os"

	"github.com/jsundh/regidi/internal/keyspace"
	"github.com/jsundh/regidi/internal/maintenance"
	"github.com/jsundh/regidi/pkg/logging"
	"github.com/jsundh/regidi/pkg/regidi"
	"gopkg.in/yaml.v3"
)

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type SubstitutionsConfig struct {
	// Path overrides the table shipped with the binary.
	Path string `yaml:"path"`
}

type TableConfig struct {
	FirstOnly int `yaml:"first_only"`
}

type MaintenanceConfig struct {
	Workers      int    `yaml:"workers"`
	BadWordsPath string `yaml:"bad_words_path"`
}

type Config struct {
	Logger        *logging.LoggerConfig `yaml:"logger"`
	Substitutions *SubstitutionsConfig  `yaml:"substitutions"`
	Table         *TableConfig          `yaml:"table"`
	Maintenance   *MaintenanceConfig    `yaml:"maintenance"`
	HTTP          *HTTPConfig           `yaml:"http"`
}

func DefaultConfig() *Config {
	return &Config{
		Logger:        &logging.LoggerConfig{Level: "warn"},
		Substitutions: &SubstitutionsConfig{},
		Table:         &TableConfig{FirstOnly: keyspace.DefaultFirstOnly},
		Maintenance:   &MaintenanceConfig{},
		HTTP:          &HTTPConfig{Port: 8080},
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Logger == nil {
		return fmt.Errorf("logger config is required")
	}

	if c.Substitutions == nil {
		return fmt.Errorf("substitutions config is required")
	}

	if c.Table == nil {
		return fmt.Errorf("table config is required")
	}

	if _, err := keyspace.Auxiliary(c.Table.FirstOnly); err != nil {
		return fmt.Errorf("table first_only: %w", err)
	}

	if c.Maintenance == nil {
		return fmt.Errorf("maintenance config is required")
	}

	if c.Maintenance.Workers < 0 {
		return fmt.Errorf("maintenance workers must not be negative")
	}

	if c.HTTP == nil {
		return fmt.Errorf("http config is required")
	}

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http port %d out of range", c.HTTP.Port)
	}

	return nil
}

// Codec returns the codec for the configured substitution table.
func (c *Config) Codec() *regidi.Codec {
	if c.Substitutions.Path == "" {
		return regidi.Default()
	}
	return regidi.Load(c.Substitutions.Path)
}

// Words returns the configured bad word list.
func (c *Config) Words() ([]string, error) {
	if c.Maintenance.BadWordsPath == "" {
		return maintenance.DefaultWords(), nil
	}
	return maintenance.LoadWords(c.Maintenance.BadWordsPath)
}
