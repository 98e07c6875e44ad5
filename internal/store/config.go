package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string `json:"glyphs,omitempty"`
	// Theme forces background detection ("auto", "light" or "dark").
	Theme string `json:"theme,omitempty"`
}

// ConfigDir is $TASKLIST_CONFIG_DIR or ~/.tasklist.
func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.tasklist).
	if v := strings.TrimSpace(os.Getenv("TASKLIST_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tasklist"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DataDir resolves where the database lives: explicit dir, then
// $TASKLIST_DIR, then <config dir>/data.
func DataDir(explicit string) (string, error) {
	if v := strings.TrimSpace(explicit); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(os.Getenv("TASKLIST_DIR")); v != "" {
		return v, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

// LoadConfig returns defaults when the file is missing. A file that exists but
// doesn't parse is an error so user edits aren't silently ignored.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SaveConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

// TUIGlyphs returns the configured glyph set, with env taking precedence.
func (c *Config) TUIGlyphs() string {
	if v := strings.TrimSpace(os.Getenv("TASKLIST_TUI_GLYPHS")); v != "" {
		return strings.ToLower(v)
	}
	if c == nil || c.TUI == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(c.TUI.Glyphs))
}

// TUITheme returns the configured theme, with env taking precedence.
func (c *Config) TUITheme() string {
	if v := strings.TrimSpace(os.Getenv("TASKLIST_TUI_THEME")); v != "" {
		return strings.ToLower(v)
	}
	if c == nil || c.TUI == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(c.TUI.Theme))
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
