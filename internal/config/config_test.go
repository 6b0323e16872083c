package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Texture != "./data/s" {
		t.Errorf("expected texture ./data/s, got %s", cfg.Texture)
	}
	if cfg.Step != math.Pi/90 {
		t.Errorf("expected step pi/90, got %v", cfg.Step)
	}
	if cfg.Presenter != "ansi" {
		t.Errorf("expected ansi presenter, got %s", cfg.Presenter)
	}
	if cfg.Frames != 0 {
		t.Error("default run should be unbounded")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		fps      int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{1, time.Second},
		{0, time.Second / 60},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.FPS = tt.fps
		if got := cfg.Interval(); got != tt.expected {
			t.Errorf("fps %d: expected %v, got %v", tt.fps, tt.expected, got)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero step", func(c *Config) { c.Step = 0 }, ErrInvalidStep},
		{"negative step", func(c *Config) { c.Step = -1 }, ErrInvalidStep},
		{"nan step", func(c *Config) { c.Step = math.NaN() }, ErrInvalidStep},
		{"zero fps", func(c *Config) { c.FPS = 0 }, ErrInvalidFPS},
		{"negative frames", func(c *Config) { c.Frames = -3 }, ErrInvalidFrames},
		{"bad presenter", func(c *Config) { c.Presenter = "gpu" }, ErrInvalidPresenter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spinglobe.yaml")
	data := "glyphs: braille\nfps: 30\nignore_write_errors: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Glyphs != "braille" || cfg.FPS != 30 || !cfg.IgnoreWriteErrors {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Step != DefaultStep || cfg.Texture != DefaultTexture {
		t.Errorf("omitted keys should keep defaults: %+v", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := GetPreset("fast")
	cfg.Frames = 120

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("fast")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Step != math.Pi/30 {
		t.Errorf("expected step pi/30, got %v", cfg.Step)
	}

	cfg.Step = 1
	if Presets["fast"].Step == 1 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
	if *GetPreset("classic") != *DefaultConfig() {
		t.Error("classic preset should match the defaults")
	}
}
