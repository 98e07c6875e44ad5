package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Terminal apps can't change the user's font, so affordances (checkboxes,
// markers, borders) come in a Unicode and an ASCII flavor.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference takes the resolved TASKLIST_TUI_GLYPHS/config value.
// Unknown values are ignored.
func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphActive() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "▸"
}

func glyphCheckbox(checked bool) string {
	switch {
	case checked && glyphs() == glyphSetASCII:
		return "[x]"
	case checked:
		return "[✓]"
	default:
		return "[ ]"
	}
}

func glyphBorder() lipgloss.Border {
	if glyphs() == glyphSetASCII {
		return lipgloss.ASCIIBorder()
	}
	return lipgloss.RoundedBorder()
}
