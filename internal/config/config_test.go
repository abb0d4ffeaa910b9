package config

import (
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.Owner != "Juan Riquelme" {
		t.Errorf("default owner = %q", cfg.General.Owner)
	}
	if cfg.SMTP.Port != 587 {
		t.Errorf("default SMTP port = %d, want 587", cfg.SMTP.Port)
	}
	if cfg.Appearance.Theme != "corporate-blue" {
		t.Errorf("default theme = %q", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists() should be false before Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Sheets.SheetID = "1abc"
	cfg.Sheets.APIKey = "AIzaKey"
	cfg.SMTP.Host = "smtp.gmail.com"
	cfg.SMTP.User = "ventas@iamagencia.cl"
	cfg.General.DefaultCity = "Calama"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() should be true after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Sheets.SheetID != "1abc" || got.SMTP.Host != "smtp.gmail.com" {
		t.Errorf("round trip = %+v", got)
	}
	if got.General.DefaultCity != "Calama" {
		t.Errorf("default city = %q", got.General.DefaultCity)
	}
}

func TestGetSheetsAPIKeyPrefersEnv(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sheets.APIKey = "from-config"

	t.Setenv("CRMDASH_SHEETS_KEY", "from-env")
	if got := GetSheetsAPIKey(cfg); got != "from-env" {
		t.Errorf("key = %q, want env value", got)
	}

	t.Setenv("CRMDASH_SHEETS_KEY", "")
	if got := GetSheetsAPIKey(cfg); got != "from-config" {
		t.Errorf("key = %q, want config value", got)
	}
}
