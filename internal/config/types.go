package config

import (
	"os"
	"path/filepath"
)

const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"

	LanguageSystem = "system"

	configDirName  = ".inkwell"
	configFileName = "config.yaml"
)

// Config is the user-editable application configuration. It is read from a
// YAML file and then overridden by INKWELL_* environment variables.
type Config struct {
	Language string        `yaml:"language" env:"INKWELL_LANGUAGE" validate:"required,oneof=system en es"`
	DataDir  string        `yaml:"data_dir" env:"INKWELL_DATA_DIR" validate:"required"`
	Storage  string        `yaml:"storage" env:"INKWELL_STORAGE" validate:"required,oneof=json sqlite"`
	Logging  LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"INKWELL_LOG_LEVEL" validate:"required,log_level"`
	Format string `yaml:"format" env:"INKWELL_LOG_FORMAT" validate:"required,oneof=console json"`
	File   string `yaml:"file,omitempty" env:"INKWELL_LOG_FILE"`
}

// Defaults returns the configuration used when no file or environment
// override is present.
func Defaults() Config {
	dataDir := configDirName
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, configDirName)
	}

	return Config{
		Language: LanguageSystem,
		DataDir:  dataDir,
		Storage:  StorageJSON,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultPath returns $HOME/.inkwell/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// LibraryPath returns the location of the persisted library for the
// configured storage backend.
func (c Config) LibraryPath() string {
	if c.Storage == StorageSQLite {
		return filepath.Join(c.DataDir, "library.db")
	}
	return filepath.Join(c.DataDir, "library.json")
}
