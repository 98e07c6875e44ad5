package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfig_SaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKLIST_CONFIG_DIR", dir)
	t.Setenv("TASKLIST_TUI_GLYPHS", "")
	t.Setenv("TASKLIST_TUI_THEME", "")

	// Missing file => defaults.
	cfg0, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg0.TUI != nil {
		t.Fatalf("expected default config, got %#v", cfg0)
	}

	want := &Config{TUI: &TUIConfig{Glyphs: "ascii", Theme: "dark"}}
	if err := SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig (after save): %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}
	if got.TUIGlyphs() != "ascii" || got.TUITheme() != "dark" {
		t.Fatalf("unexpected prefs: %q %q", got.TUIGlyphs(), got.TUITheme())
	}
}

func TestConfig_InvalidFileIsError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKLIST_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("TASKLIST_TUI_GLYPHS", "ASCII")
	t.Setenv("TASKLIST_TUI_THEME", "")
	cfg := &Config{TUI: &TUIConfig{Glyphs: "unicode", Theme: "light"}}
	if got := cfg.TUIGlyphs(); got != "ascii" {
		t.Fatalf("expected env glyphs, got %q", got)
	}
	if got := cfg.TUITheme(); got != "light" {
		t.Fatalf("expected file theme, got %q", got)
	}
}

func TestDataDir_Precedence(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("TASKLIST_CONFIG_DIR", cfgDir)
	t.Setenv("TASKLIST_DIR", "")

	got, err := DataDir("")
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if want := filepath.Join(cfgDir, "data"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	t.Setenv("TASKLIST_DIR", "/tmp/from-env")
	if got, _ := DataDir(""); got != "/tmp/from-env" {
		t.Fatalf("expected env dir, got %q", got)
	}
	if got, _ := DataDir("/tmp/explicit"); got != "/tmp/explicit" {
		t.Fatalf("expected explicit dir, got %q", got)
	}
}
