package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all crmdash configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Sheets     SheetsConfig     `toml:"sheets"`
	SMTP       SMTPConfig       `toml:"smtp"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Owner       string `toml:"owner"`
	DefaultCity string `toml:"default_city"`
}

// SheetsConfig holds the Google Sheets seed source settings.
type SheetsConfig struct {
	SheetID string `toml:"sheet_id,omitempty"`
	APIKey  string `toml:"api_key,omitempty"`
	BaseURL string `toml:"base_url,omitempty"`
}

// SMTPConfig holds outbound mail settings. They are stored for the
// follow-up automation, nothing in the dashboard sends mail yet.
type SMTPConfig struct {
	Host     string `toml:"host,omitempty"`
	Port     int    `toml:"port"`
	User     string `toml:"user,omitempty"`
	Password string `toml:"password,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Owner:       "Juan Riquelme",
			DefaultCity: "Antofagasta",
		},
		SMTP: SMTPConfig{
			Port: 587,
		},
		Appearance: AppearanceConfig{
			Theme: "corporate-blue",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "crmdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "crmdash")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetSheetsAPIKey returns the API key from env var or config, in that order.
func GetSheetsAPIKey(cfg Config) string {
	if key := os.Getenv("CRMDASH_SHEETS_KEY"); key != "" {
		return key
	}
	return cfg.Sheets.APIKey
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
