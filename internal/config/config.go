// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists the Mentorlink configuration. Values are
// layered as defaults -> mentorlink.yaml -> MENTORLINK_* environment -> flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	Server struct {
		Addr string `mapstructure:"addr" yaml:"addr"`
	} `mapstructure:"server" yaml:"server"`
	Auth struct {
		Secret   string        `mapstructure:"secret" yaml:"secret"`
		TokenTTL time.Duration `mapstructure:"token_ttl" yaml:"token_ttl"`
	} `mapstructure:"auth" yaml:"auth"`
	Redis struct {
		Addr     string `mapstructure:"addr" yaml:"addr"`
		Password string `mapstructure:"password" yaml:"password"`
		DB       int    `mapstructure:"db" yaml:"db"`
	} `mapstructure:"redis" yaml:"redis"`
	Reaper struct {
		Interval time.Duration `mapstructure:"interval" yaml:"interval"`
	} `mapstructure:"reaper" yaml:"reaper"`
	Log struct {
		Level string `mapstructure:"level" yaml:"level"`
	} `mapstructure:"log" yaml:"log"`
	Language string `mapstructure:"language" yaml:"language"`
}

// Defaults returns the default key/value map used to seed viper.
func Defaults() map[string]any {
	return map[string]any{
		"database.type":   "sqlite",
		"database.dsn":    "./mentorlink.db",
		"server.addr":     ":8080",
		"auth.secret":     "",
		"auth.token_ttl":  "24h",
		"redis.addr":      "",
		"redis.password":  "",
		"redis.db":        0,
		"reaper.interval": "1h",
		"log.level":       "info",
		"language":        "en",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Mentorlink")
		default:
			configDir = "/etc/mentorlink"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "mentorlink")
	}

	return filepath.Join(configDir, "mentorlink.yaml"), nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are ignored; malformed files are reported.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("could not load %s: %w", p, err)
		}
	}
	return nil
}

// LoadConfig resolves configuration into T. cmd may be nil when no flags
// should be bound. A viper.ConfigFileNotFoundError is returned alongside a
// populated T when no config file exists, so callers can write one.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("mentorlink")
	v.SetConfigType("yaml")

	// An explicit --config path wins over the search paths.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix("mentorlink")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile writes c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the file carries the token signing secret.
	return os.WriteFile(path, data, 0600)
}

// Validate reports configuration combinations that cannot start a server.
func (c *Config) Validate() error {
	switch c.Database.Type {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database type %q", c.Database.Type)
	}
	if c.Database.Dsn == "" {
		return errors.New("database.dsn must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.Reaper.Interval < 0 {
		return errors.New("reaper.interval must not be negative")
	}
	return nil
}
