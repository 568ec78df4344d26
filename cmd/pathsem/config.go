package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rfielding/pathsem/catalog"
)

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	if err := configValidate.RegisterValidation("theorem", func(fl validator.FieldLevel) bool {
		_, err := catalog.Lookup(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
}

// Config is the optional YAML configuration of the command.
type Config struct {
	LogLevel string `yaml:"log_level" validate:"required"`
	// Theorems is what audit reports on when no names are given.
	Theorems []string `yaml:"theorems" validate:"dive,theorem"`
	// Format is the audit output format, "table" or "summary".
	Format string `yaml:"format" validate:"oneof=table summary"`
}

// DefaultConfig logs warnings and above and audits as a table.
func DefaultConfig() Config {
	return Config{LogLevel: "warn", Format: "table"}
}

// loadConfig reads path over the defaults. An empty path means defaults
// only.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
