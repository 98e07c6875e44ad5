package view

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Markdown renders d as a Markdown document. Only the list names are shown
// when no list is selected.
func Markdown(d Display) string {
	var b strings.Builder
	writeLn := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
	}

	writeLn("## Lists")
	writeLn("")
	if len(d.Lists) == 0 {
		writeLn("_No lists yet._")
	}
	for _, l := range d.Lists {
		if l.Active {
			writeLn("- **" + escapeMarkdown(l.Name) + "**")
		} else {
			writeLn("- " + escapeMarkdown(l.Name))
		}
	}

	if !d.Detail.Visible {
		return b.String()
	}

	writeLn("")
	writeLn("# " + escapeMarkdown(d.Detail.Title))
	writeLn("")
	writeLn("_" + d.Detail.Count + "_")
	writeLn("")
	for _, row := range d.Detail.Rows {
		box := "[ ]"
		if row.Checked {
			box = "[x]"
		}
		writeLn("- " + box + " " + escapeMarkdown(row.Name))
	}
	return b.String()
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	r := strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`)
	return r.Replace(s)
}

// MarkdownSurface renders the display through glamour and writes it to W.
type MarkdownSurface struct {
	W     io.Writer
	Width int
	// Style is a glamour standard style name; empty means "dark".
	Style string
}

func (s MarkdownSurface) Paint(d Display) error {
	out, err := renderGlamour(Markdown(d), s.Style, s.Width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.W, out)
	return err
}

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style and wrap width; building one is not free.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func renderGlamour(md, style string, width int) (string, error) {
	if style == "" {
		style = styles.DarkStyle
	}
	if width < 20 {
		width = 80
	}

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()
	key := style + ":" + strconv.Itoa(width)
	r := mdRenderers[key]
	if r == nil {
		// Avoid WithAutoStyle(): it can block waiting on terminal queries.
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		mdRenderers[key] = rr
		r = rr
	}
	return r.Render(md)
}
