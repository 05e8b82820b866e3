// Package config loads server and CLI configuration: YAML file first, then
// .env and environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can be written as "10s", "1m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the full configuration for both binaries.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Locale LocaleConfig `yaml:"locale"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Listen           string   `yaml:"listen"`
	ReadTimeout      Duration `yaml:"read_timeout"`
	ShutdownTimeout  Duration `yaml:"shutdown_timeout"`
	MetricsNamespace string   `yaml:"metrics_namespace"`
}

// LocaleConfig configures message resolution.
type LocaleConfig struct {
	// Default is used when a request carries no locale preference.
	Default string `yaml:"default"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Listen:           ":8080",
			ReadTimeout:      Duration(10 * time.Second),
			ShutdownTimeout:  Duration(5 * time.Second),
			MetricsNamespace: "trading_simulator",
		},
		Locale: LocaleConfig{
			Default: "fr",
		},
	}
}

// Load reads an optional YAML file at path and applies environment overrides
// on top of the defaults. A missing file is not an error. A .env file in the
// working directory is loaded first, if present.
func Load(path string) (Config, error) {
	// .env is optional; real environment always wins over it.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to defaults + env.
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if v := os.Getenv("TRADSIM_LISTEN"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("TRADSIM_LANG"); v != "" {
		cfg.Locale.Default = v
	}
	if v := os.Getenv("TRADSIM_METRICS_NAMESPACE"); v != "" {
		cfg.Server.MetricsNamespace = v
	}

	return cfg, nil
}
