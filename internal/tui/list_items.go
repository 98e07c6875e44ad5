package tui

import (
	"strings"

	"tasklist-cli/internal/view"

	"github.com/charmbracelet/bubbles/list"
)

type listItem struct {
	entry view.ListEntry
}

func (i listItem) FilterValue() string { return i.entry.Name }
func (i listItem) Title() string {
	if i.entry.Active {
		return glyphActive() + " " + displayName(i.entry.Name)
	}
	return "  " + displayName(i.entry.Name)
}

type taskItem struct {
	row view.TaskRow
}

func (i taskItem) FilterValue() string { return i.row.Name }
func (i taskItem) Title() string {
	return glyphCheckbox(i.row.Checked) + " " + displayName(i.row.Name)
}

// displayName shows names verbatim, like the text view, except fully blank
// ones.
func displayName(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, newCompactItemDelegate(false), 0, 0)
	l.Title = title
	// We render our own headings and footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// q and esc belong to the app, not the list.
	l.DisableQuitKeybindings()

	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

// selectListItemByID moves the cursor to the item with id and reports whether
// it was found.
func selectListItemByID(l *list.Model, id string) bool {
	if id == "" {
		return false
	}
	for i, it := range l.Items() {
		switch it := it.(type) {
		case listItem:
			if it.entry.ID == id {
				l.Select(i)
				return true
			}
		case taskItem:
			if it.row.ID == id {
				l.Select(i)
				return true
			}
		}
	}
	return false
}

func selectedItemID(l list.Model) string {
	switch it := l.SelectedItem().(type) {
	case listItem:
		return it.entry.ID
	case taskItem:
		return it.row.ID
	default:
		return ""
	}
}

// clampSelection keeps the cursor on a real row after items shrink.
func clampSelection(l *list.Model) {
	n := len(l.Items())
	if n == 0 {
		l.Select(0)
		return
	}
	if l.Index() >= n {
		l.Select(n - 1)
	}
}
