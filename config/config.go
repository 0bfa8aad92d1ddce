package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the tradebook CLI needs to run.
type Config struct {
	Database DatabaseConfig `json:"database" yaml:"database"`
	Query    QueryConfig    `json:"query" yaml:"query"`
	Export   ExportConfig   `json:"export" yaml:"export"`
	Backup   BackupConfig   `json:"backup" yaml:"backup"`
}

// DatabaseConfig locates the ledger database.
type DatabaseConfig struct {
	Path string `json:"path" yaml:"path"`
}

// QueryConfig contains browsing defaults.
type QueryConfig struct {
	PageSize int `json:"page_size" yaml:"page_size"`
}

// ExportConfig contains CSV export parameters.
type ExportConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

// BackupConfig contains database backup parameters.
type BackupConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

// LoadFromFile loads configuration from a file (JSON or YAML)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Query.PageSize <= 0 {
		return fmt.Errorf("query.page_size must be positive")
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("export.dir is required")
	}
	if c.Backup.Dir == "" {
		return fmt.Errorf("backup.dir is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "./tradebook.db",
		},
		Query: QueryConfig{
			PageSize: 20,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Backup: BackupConfig{
			Dir: ".",
		},
	}
}
