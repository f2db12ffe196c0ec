// Package config loads application configuration. Settings come from an
// optional YAML file with environment variable fallbacks; the resulting
// struct is passed into constructors at startup and never held as
// mutable package state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	DatabasePath string     `yaml:"database_path"`
	SMTP         SMTPConfig `yaml:"smtp"`
}

// SMTPConfig holds the mail transport settings.
type SMTPConfig struct {
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	From     string        `yaml:"from"`
	Timeout  time.Duration `yaml:"timeout"`
}

// LoadConfig builds the configuration from defaults, environment
// variables, and an optional YAML file (highest precedence). An empty
// path skips the file entirely.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		DatabasePath: getEnv("TASKMEISTER_DB_PATH", ""),
		SMTP: SMTPConfig{
			Host:     getEnv("TASKMEISTER_SMTP_HOST", "localhost"),
			Port:     getEnvInt("TASKMEISTER_SMTP_PORT", 587),
			Username: getEnv("TASKMEISTER_SMTP_USER", ""),
			Password: getEnv("TASKMEISTER_SMTP_PASS", ""),
			From:     getEnv("TASKMEISTER_SMTP_FROM", ""),
			Timeout:  15 * time.Second,
		},
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}

	return cfg, nil
}

// DefaultPath returns the default config file location, or "" when the
// file does not exist.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".taskmeister", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// ResolvePath picks the config file to load: an explicitly given path
// wins, otherwise the default location is used when the file exists.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return DefaultPath()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
