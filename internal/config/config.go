package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "FORMATION_IMPORTER_CONFIG"
	databaseDSNEnv = "DATABASE_DSN"
	logLevelEnv    = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Imports  ImportsConfig  `yaml:"imports"`
}

// DatabaseConfig describes Postgres connection details.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ImportsConfig groups per-profile import settings.
type ImportsConfig struct {
	Evaluations ProfileConfig `yaml:"evaluations"`
	Projects    ProfileConfig `yaml:"projects"`
}

// ProfileConfig tunes one import profile. Columns remaps logical field names
// to the header names the export actually uses; RequiredFields replaces the
// profile defaults entirely when non-empty.
type ProfileConfig struct {
	RequiredFields []string          `yaml:"requiredFields"`
	Columns        map[string]string `yaml:"columns"`
}

// Load reads YAML configuration from the given path (or the env-configured
// path when empty) and applies environment overrides. Missing or broken
// files fall back to defaults with a log line, never an error.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Database.DSN != "" {
		base.Database = override.Database
	}
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}
	base.Imports.Evaluations = mergeProfile(base.Imports.Evaluations, override.Imports.Evaluations)
	base.Imports.Projects = mergeProfile(base.Imports.Projects, override.Imports.Projects)
	return base
}

func mergeProfile(base, override ProfileConfig) ProfileConfig {
	if len(override.RequiredFields) > 0 {
		base.RequiredFields = override.RequiredFields
	}
	if len(override.Columns) > 0 {
		if base.Columns == nil {
			base.Columns = map[string]string{}
		}
		for logical, header := range override.Columns {
			base.Columns[logical] = header
		}
	}
	return base
}

func defaultConfig() Config {
	return Config{
		Database: DatabaseConfig{DSN: ""},
		Logging:  LoggingConfig{Level: "info"},
	}
}
