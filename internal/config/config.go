// Package config loads the optional tada configuration file and applies
// environment overrides on top of it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const appDir = "tada"

// Config is the merged configuration. Flags are applied by the caller last.
type Config struct {
	// File is the todo list location; empty means todos.json in the working directory.
	File string `yaml:"file,omitempty" toml:"file"`

	// Theme is one of classic, neon, mono.
	Theme string `yaml:"theme,omitempty" toml:"theme"`

	// Strict refuses to treat an unreadable todo file as an empty list.
	Strict bool `yaml:"strict,omitempty" toml:"strict"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level,omitempty" toml:"log_level"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Theme:    "classic",
		LogLevel: "warn",
	}
}

// DefaultPath returns config.yaml under the user config dir, or config.toml
// when only that one exists.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	yamlPath := filepath.Join(configDir, appDir, "config.yaml")
	tomlPath := filepath.Join(configDir, appDir, "config.toml")
	if _, err := os.Stat(yamlPath); err != nil {
		if _, terr := os.Stat(tomlPath); terr == nil {
			return tomlPath, nil
		}
	}
	return yamlPath, nil
}

// Load reads path (or DefaultPath when empty) over the defaults, then
// applies TADA_* environment variables. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			// No config dir (e.g. HOME unset): run on defaults.
			applyEnv(&cfg)
			return cfg, nil
		}
		path = p
	}

	if err := loadFile(&cfg, path); err != nil {
		if os.IsNotExist(err) {
			if !explicit {
				applyEnv(&cfg)
				return cfg, nil
			}
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
		return Config{}, err
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("TADA_FILE")); v != "" {
		cfg.File = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_STRICT")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Strict = b
		}
	}
}

// ResolvePath expands a leading ~/ in p.
func ResolvePath(p string) (string, error) {
	if !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return p, fmt.Errorf("could not get user home directory to resolve path '%s': %w", p, err)
	}
	return filepath.Join(homeDir, p[2:]), nil
}
