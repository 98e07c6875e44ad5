package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TextSurface writes a plain terminal rendering to W. Styling degrades to plain
// text when W is not a terminal.
type TextSurface struct {
	W io.Writer
	// ASCII selects ASCII-only markers.
	ASCII bool
}

func (s TextSurface) Paint(d Display) error {
	_, err := io.WriteString(s.W, RenderText(d, lipgloss.NewRenderer(s.W), s.ASCII))
	return err
}

// RenderText renders d using styles from r.
func RenderText(d Display, r *lipgloss.Renderer, ascii bool) string {
	heading := r.NewStyle().Bold(true)
	active := r.NewStyle().Bold(true).Underline(true)
	muted := r.NewStyle().Faint(true)
	done := r.NewStyle().Strikethrough(true)

	activeMark := "▸ "
	if ascii {
		activeMark = "> "
	}

	var b strings.Builder
	b.WriteString(heading.Render("My lists"))
	b.WriteString("\n")
	if len(d.Lists) == 0 {
		b.WriteString(muted.Render("  (no lists)"))
		b.WriteString("\n")
	}
	for _, l := range d.Lists {
		if l.Active {
			b.WriteString(activeMark + active.Render(l.Name))
		} else {
			b.WriteString("  " + l.Name)
		}
		b.WriteString("\n")
	}

	if !d.Detail.Visible {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(heading.Render(d.Detail.Title))
	b.WriteString("  ")
	b.WriteString(muted.Render(d.Detail.Count))
	b.WriteString("\n")
	for _, row := range d.Detail.Rows {
		name := row.Name
		if row.Checked {
			name = done.Render(name)
		}
		fmt.Fprintf(&b, "  %s %s\n", checkbox(row.Checked, ascii), name)
	}
	return b.String()
}

func checkbox(checked bool, ascii bool) string {
	switch {
	case checked && ascii:
		return "[x]"
	case checked:
		return "[✓]"
	default:
		return "[ ]"
	}
}
