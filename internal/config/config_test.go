package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Calendar.FirstWeekday != 0 {
		t.Errorf("FirstWeekday = %d, want 0", cfg.Calendar.FirstWeekday)
	}
	if cfg.UI.ColumnWidth != 3 {
		t.Errorf("ColumnWidth = %d, want 3", cfg.UI.ColumnWidth)
	}
	if !cfg.UI.AbbreviatedHeader {
		t.Error("AbbreviatedHeader = false, want true")
	}
	if !cfg.UI.Color {
		t.Error("Color = false, want true")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Calendar.FirstWeekday = 1
	cfg.UI.ColumnWidth = 4
	cfg.UI.Color = false

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Calendar.FirstWeekday != 1 {
		t.Errorf("FirstWeekday = %d, want 1", loaded.Calendar.FirstWeekday)
	}
	if loaded.UI.ColumnWidth != 4 {
		t.Errorf("ColumnWidth = %d, want 4", loaded.UI.ColumnWidth)
	}
	if loaded.UI.Color {
		t.Error("Color = true, want false")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "gocal")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	partial := []byte("calendar:\n  first_weekday: 1\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), partial, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Calendar.FirstWeekday != 1 {
		t.Errorf("FirstWeekday = %d, want 1", cfg.Calendar.FirstWeekday)
	}
	// Unset fields keep their defaults.
	if cfg.UI.ColumnWidth != 3 {
		t.Errorf("ColumnWidth = %d, want 3", cfg.UI.ColumnWidth)
	}
	if !cfg.UI.Color {
		t.Error("Color = false, want true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "saturday first is valid", mutate: func(c *Config) { c.Calendar.FirstWeekday = 6 }},
		{name: "negative weekday", mutate: func(c *Config) { c.Calendar.FirstWeekday = -1 }, wantErr: true},
		{name: "weekday seven", mutate: func(c *Config) { c.Calendar.FirstWeekday = 7 }, wantErr: true},
		{name: "column width one", mutate: func(c *Config) { c.UI.ColumnWidth = 1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
