package tui

import (
	"testing"

	"tasklist-cli/internal/view"

	"github.com/charmbracelet/bubbles/list"
)

func TestNewList_LeavesQuitToTheApp(t *testing.T) {
	t.Parallel()

	l := newList("t", nil)
	if l.KeyMap.Quit.Enabled() || l.KeyMap.ForceQuit.Enabled() {
		t.Fatalf("expected list quit bindings disabled")
	}
	if l.FilteringEnabled() {
		t.Fatalf("expected filtering disabled")
	}

	has := false
	for _, k := range l.KeyMap.CursorDown.Keys() {
		if k == "ctrl+n" {
			has = true
		}
	}
	if !has {
		t.Fatalf("expected ctrl+n cursor alias; got %v", l.KeyMap.CursorDown.Keys())
	}
}

func TestSelectListItemByID(t *testing.T) {
	t.Parallel()

	l := newList("t", []list.Item{
		taskItem{row: view.TaskRow{ID: "task-1"}},
		taskItem{row: view.TaskRow{ID: "task-2"}},
	})
	l.SetSize(40, 10)

	if !selectListItemByID(&l, "task-2") || selectedItemID(l) != "task-2" {
		t.Fatalf("expected task-2 selected, got %q", selectedItemID(l))
	}
	if selectListItemByID(&l, "task-9") {
		t.Fatalf("expected missing id to report false")
	}

	l.SetItems([]list.Item{taskItem{row: view.TaskRow{ID: "task-1"}}})
	clampSelection(&l)
	if got := selectedItemID(l); got != "task-1" {
		t.Fatalf("expected cursor clamped to task-1, got %q", got)
	}
}
