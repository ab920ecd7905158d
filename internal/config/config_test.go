package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "http://localhost:5000/arcrooms" {
		t.Errorf("expected default base_url, got %s", cfg.API.BaseURL)
	}
	if cfg.Schedule.TimeZone != "Europe/Amsterdam" {
		t.Errorf("expected time_zone Europe/Amsterdam, got %s", cfg.Schedule.TimeZone)
	}
	if cfg.Schedule.RefreshMinutes != 5 {
		t.Errorf("expected refresh_minutes 5, got %d", cfg.Schedule.RefreshMinutes)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Schedule.TimeZone != "Europe/Amsterdam" {
		t.Errorf("expected default time_zone, got %s", cfg.Schedule.TimeZone)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	content := `
[api]
base_url = "https://rooms.example.org/arcrooms"

[schedule]
time_zone = "Europe/Berlin"
refresh_minutes = 10

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "https://rooms.example.org/arcrooms" {
		t.Errorf("expected file base_url, got %s", cfg.API.BaseURL)
	}
	if cfg.Schedule.TimeZone != "Europe/Berlin" {
		t.Errorf("expected time_zone Europe/Berlin, got %s", cfg.Schedule.TimeZone)
	}
	if cfg.Schedule.RefreshMinutes != 10 {
		t.Errorf("expected refresh_minutes 10, got %d", cfg.Schedule.RefreshMinutes)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_PartialFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	content := `
[ui]
theme = "mocha"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	// Untouched sections keep defaults
	if cfg.Schedule.TimeZone != "Europe/Amsterdam" {
		t.Errorf("expected default time_zone, got %s", cfg.Schedule.TimeZone)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	if err := os.WriteFile(configPath, []byte("this is not [valid toml"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ROOMBOARD_API_BASE_URL", "https://override.example.org/arcrooms")
	t.Setenv("ROOMBOARD_API_TOKEN", "secret-token")
	t.Setenv("ROOMBOARD_TIME_ZONE", "UTC")
	t.Setenv("ROOMBOARD_UI_THEME", "macchiato")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "https://override.example.org/arcrooms" {
		t.Errorf("expected env base_url, got %s", cfg.API.BaseURL)
	}
	if cfg.API.Token != "secret-token" {
		t.Errorf("expected env token, got %s", cfg.API.Token)
	}
	if cfg.Schedule.TimeZone != "UTC" {
		t.Errorf("expected env time_zone, got %s", cfg.Schedule.TimeZone)
	}
	if cfg.UI.Theme != "macchiato" {
		t.Errorf("expected env theme, got %s", cfg.UI.Theme)
	}
}

func TestEnvOverridesTakePrecedenceOverFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	content := `
[schedule]
time_zone = "Europe/Berlin"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("ROOMBOARD_TIME_ZONE", "Europe/Madrid")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Schedule.TimeZone != "Europe/Madrid" {
		t.Errorf("expected env to win over file, got %s", cfg.Schedule.TimeZone)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"empty base_url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"non-http base_url", func(c *Config) { c.API.BaseURL = "ftp://rooms" }, true},
		{"empty time_zone", func(c *Config) { c.Schedule.TimeZone = "" }, true},
		{"unknown time_zone", func(c *Config) { c.Schedule.TimeZone = "Mars/Olympus" }, true},
		{"zero refresh", func(c *Config) { c.Schedule.RefreshMinutes = 0 }, true},
		{"negative refresh", func(c *Config) { c.Schedule.RefreshMinutes = -1 }, true},
		{"empty db_path", func(c *Config) { c.Storage.DBPath = "" }, true},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"latte theme", func(c *Config) { c.UI.Theme = "latte" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestZoneAndRefreshInterval(t *testing.T) {
	cfg := Default()

	if cfg.Zone().String() != "Europe/Amsterdam" {
		t.Errorf("expected Europe/Amsterdam, got %s", cfg.Zone())
	}
	if cfg.RefreshInterval() != 5*time.Minute {
		t.Errorf("expected 5m refresh interval, got %s", cfg.RefreshInterval())
	}
}
