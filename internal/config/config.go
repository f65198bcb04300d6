// Package config loads and saves the somma.yaml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level somma.yaml configuration.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Remote RemoteConfig `yaml:"remote"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
}

// DataConfig locates the local data files.
type DataConfig struct {
	Dir        string `yaml:"dir"`         // registry JSON files live here
	LedgerPath string `yaml:"ledger_path"` // local CSV ledger
}

// RemoteConfig describes the optional remote spreadsheet. Remote mode
// is attempted only when the credentials file exists.
type RemoteConfig struct {
	CredentialsFile string `yaml:"credentials_file,omitempty"`
	SpreadsheetID   string `yaml:"spreadsheet_id,omitempty"`
	SheetName       string `yaml:"sheet_name,omitempty"`
}

// CacheConfig bounds the read cache in front of ledger loads.
type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ApplyEnv overlays environment variables (typically from a .env file)
// onto the loaded config. Only the remote credentials knobs are
// overridable; everything else lives in the YAML file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SOMMA_CREDENTIALS_FILE"); v != "" {
		c.Remote.CredentialsFile = v
	}
	if v := os.Getenv("SOMMA_SPREADSHEET_ID"); v != "" {
		c.Remote.SpreadsheetID = v
	}
	if v := os.Getenv("SOMMA_SHEET_NAME"); v != "" {
		c.Remote.SheetName = v
	}
}

// RemoteConfigured reports whether remote storage should be probed.
func (c *Config) RemoteConfigured() bool {
	if c.Remote.CredentialsFile == "" || c.Remote.SpreadsheetID == "" {
		return false
	}
	_, err := os.Stat(c.Remote.CredentialsFile)
	return err == nil
}

// Load reads a somma.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config rooted at dataDir with sensible defaults.
func Default(dataDir string) *Config {
	return &Config{
		Data: DataConfig{
			Dir:        dataDir,
			LedgerPath: filepath.Join(dataDir, "ledger.csv"),
		},
		Remote: RemoteConfig{
			SheetName: "Sheet1",
		},
		Cache: CacheConfig{
			TTLSeconds: 60,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
