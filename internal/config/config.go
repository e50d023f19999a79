// Package config loads AssetTracker settings from defaults, a YAML config file,
// .env files, ASSETTRACKER_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "ASSETTRACKER"

// Keys understood by Load. Flag names match the keys.
const (
	KeyDB          = "db"
	KeyPageSize    = "page-size"
	KeyTheme       = "theme"
	KeyPlain       = "plain"
	KeyLogLevel    = "log-level"
	KeyLogFile     = "log-file"
	KeyHistoryFile = "history-file"
)

// Config is the resolved application configuration.
type Config struct {
	DB          string `mapstructure:"db"`
	PageSize    int    `mapstructure:"page-size"`
	Theme       string `mapstructure:"theme"`
	Plain       bool   `mapstructure:"plain"`
	LogLevel    string `mapstructure:"log-level"`
	LogFile     string `mapstructure:"log-file"`
	HistoryFile string `mapstructure:"history-file"`
}

// Options control where Load looks for configuration.
type Options struct {
	// ConfigFile overrides the default config file location.
	ConfigFile string
	// ConfigDir is searched for config.yaml and .env when ConfigFile is empty.
	// Defaults to $XDG_CONFIG_HOME/assettracker.
	ConfigDir string
	// EnvFiles are loaded into the process environment. Variables already set win.
	// Defaults to ConfigDir/.env and ./.env.
	EnvFiles []string
	// Flags are bound by name to the matching keys.
	Flags *pflag.FlagSet
}

// New returns a viper instance with the AssetTracker defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDB, "assettracker.db")
	v.SetDefault(KeyPageSize, 20)
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyPlain, false)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyHistoryFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves the configuration and validates it.
func Load(opts Options) (*Config, error) {
	v := New()

	configDir := opts.ConfigDir
	if configDir == "" {
		if dir, err := DefaultConfigDir(); err == nil {
			configDir = dir
		}
	}

	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = []string{filepath.Join(configDir, ".env"), ".env"}
	}
	if err := loadDotEnv(envFiles); err != nil {
		return nil, err
	}

	if err := readConfigFile(v, opts.ConfigFile, configDir); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		if err := v.BindPFlags(opts.Flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page-size must be greater than zero, got %d", c.PageSize)
	}
	if strings.TrimSpace(c.DB) == "" {
		return errors.New("db must not be empty")
	}
	return nil
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/assettracker, falling back to the
// platform user config directory.
func DefaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "assettracker"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "assettracker"), nil
}

func readConfigFile(v *viper.Viper, configFile, configDir string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		return nil
	}

	if configDir == "" {
		return nil
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// loadDotEnv loads each existing file; missing files are skipped.
func loadDotEnv(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to parse .env file %s: %w", path, err)
		}
	}
	return nil
}
