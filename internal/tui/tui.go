// Package tui is the interactive two-pane terminal UI. Keys become app
// commands; the panes are repainted from the controller's Display.
package tui

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"tasklist-cli/internal/app"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Glyphs is "unicode" or "ascii".
	Glyphs string
	// Theme is "auto", "light" or "dark".
	Theme string
}

func Run(ctx context.Context, ctrl *app.Controller, opt Options) error {
	applyColorProfilePreference()
	applyThemePreference(opt.Theme)
	applyGlyphPreference(opt.Glyphs)

	m, err := newAppModel(ctx, ctrl)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// DebugLogger returns a logger writing to $TASKLIST_DEBUG, or nil when unset.
// Stdout belongs to the UI, so diagnostics have to go to a file.
func DebugLogger() (*log.Logger, func() error, error) {
	path := strings.TrimSpace(os.Getenv("TASKLIST_DEBUG"))
	if path == "" {
		return nil, func() error { return nil }, nil
	}
	l := log.New(io.Discard, "", log.LstdFlags)
	f, err := tea.LogToFileWith(path, "tasklist", l)
	if err != nil {
		return nil, nil, err
	}
	return l, f.Close, nil
}
