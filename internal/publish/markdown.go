package publish

import (
	"bytes"
	"strings"

	"tasklist-cli/internal/model"
	"tasklist-cli/internal/view"
)

type RenderOptions struct {
	// SkipCompleted leaves completed tasks out of the checklists.
	SkipCompleted bool
}

// RenderStateMarkdown renders every list as a Markdown checklist, in list
// order. The selected list is marked.
func RenderStateMarkdown(st model.AppState, opt RenderOptions) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# Task lists")
	if len(st.Lists) == 0 {
		writeLn("")
		writeLn("_No lists yet._")
		return buf.String()
	}

	for _, l := range st.Lists {
		writeLn("")
		title := "## " + inline(l.Name)
		if l.ID == st.SelectedListID {
			title += " (selected)"
		}
		writeLn(title)
		writeLn("")
		writeLn("_" + view.CountText(l.Remaining()) + "_")
		if len(l.Tasks) > 0 {
			writeLn("")
		}
		for _, t := range l.Tasks {
			if t.Complete && opt.SkipCompleted {
				continue
			}
			box := "[ ]"
			if t.Complete {
				box = "[x]"
			}
			writeLn("- " + box + " " + inline(t.Name))
		}
	}
	return buf.String()
}

// inline keeps a name on one Markdown line.
func inline(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}
