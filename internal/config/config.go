// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for stepflow.
type Config struct {
	Theme      string `mapstructure:"theme" yaml:"theme"`
	Language   string `mapstructure:"language" yaml:"language"`
	LocaleFile string `mapstructure:"locale_file" yaml:"locale_file"`
	DataDir    string `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	AutoCommit bool   `mapstructure:"auto_commit" yaml:"auto_commit"`
	Output     string `mapstructure:"output" yaml:"output"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("stepflow")

	// Set defaults
	v.SetDefault("theme", "mocha")
	v.SetDefault("language", "")
	v.SetDefault("locale_file", "")
	v.SetDefault("data_dir", ".stepflow")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("auto_commit", false)
	v.SetDefault("output", "")

	// Setup ENV binding with STEPFLOW_ prefix
	v.SetEnvPrefix("STEPFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better bool parsing
	// Note: BindEnv errors are very rare (only invalid key names), but we check them anyway
	if err := v.BindEnv("theme", "STEPFLOW_THEME"); err != nil {
		return nil, fmt.Errorf("binding theme env: %w", err)
	}
	if err := v.BindEnv("language", "STEPFLOW_LANGUAGE"); err != nil {
		return nil, fmt.Errorf("binding language env: %w", err)
	}
	if err := v.BindEnv("locale_file", "STEPFLOW_LOCALE_FILE"); err != nil {
		return nil, fmt.Errorf("binding locale_file env: %w", err)
	}
	if err := v.BindEnv("data_dir", "STEPFLOW_DATA_DIR"); err != nil {
		return nil, fmt.Errorf("binding data_dir env: %w", err)
	}
	if err := v.BindEnv("log_level", "STEPFLOW_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding log_level env: %w", err)
	}
	if err := v.BindEnv("log_file", "STEPFLOW_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("binding log_file env: %w", err)
	}
	if err := v.BindEnv("auto_commit", "STEPFLOW_AUTO_COMMIT"); err != nil {
		return nil, fmt.Errorf("binding auto_commit env: %w", err)
	}
	if err := v.BindEnv("output", "STEPFLOW_OUTPUT"); err != nil {
		return nil, fmt.Errorf("binding output env: %w", err)
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		// Need to set config file explicitly for merge
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/stepflow/stepflow.yml or $XDG_CONFIG_HOME/stepflow/stepflow.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stepflow", "stepflow.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stepflow", "stepflow.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./stepflow.yml in the current working directory.
func ProjectPath() string {
	return "stepflow.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Write file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	path := ProjectPath()

	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Write file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
