package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Defaults applied when neither the config file nor the environment sets
// a value.
const (
	DefaultStudioEmail = "studio@thegardenarchitect.ca"
	DefaultAdminAddr   = "127.0.0.1:7373"
)

// Config represents the flat studio configuration.
type Config struct {
	Version       string `json:"version"`
	DataDir       string `json:"data_dir,omitempty"`       // where the store and its mirror live
	StudioEmail   string `json:"studio_email,omitempty"`   // dispatch report recipient
	DesktopAlerts bool   `json:"desktop_alerts"`           // terminal alert banner on dispatch
	AdminAddr     string `json:"admin_addr,omitempty"`     // listen address for `admin serve`
}

// DefaultDataDir returns ~/.gardenarchitect.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".gardenarchitect"), nil
}

// Load reads config.json from dir, overlays a .env file from the current
// directory if one exists, and finally applies environment overrides.
// A missing config file is not an error: defaults are returned.
func Load(dir string) (*Config, error) {
	// Best effort: .env is optional.
	_ = godotenv.Load()

	cfg := &Config{
		Version:       "1",
		DataDir:       dir,
		StudioEmail:   DefaultStudioEmail,
		DesktopAlerts: true,
		AdminAddr:     DefaultAdminAddr,
	}

	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	cfg.StudioEmail = getEnv("STUDIO_EMAIL", cfg.StudioEmail)
	cfg.AdminAddr = getEnv("STUDIO_ADMIN_ADDR", cfg.AdminAddr)
	if v := os.Getenv("STUDIO_DESKTOP_ALERTS"); v != "" {
		cfg.DesktopAlerts = v == "1" || v == "true"
	}

	return cfg, nil
}

// Save writes config.json into dir, creating the directory if needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
