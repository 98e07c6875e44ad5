package mutate

import (
	"strings"

	"tasklist-cli/internal/model"
)

// Result describes what a mutation did. Callers are responsible for saving
// state and repainting the display afterwards, whether or not Changed is set.
type Result struct {
	Changed bool
	List    *model.TaskList
	Task    *model.Task
	// Removed counts what was dropped: tasks for ClearCompleted, lists (0 or
	// 1) for DeleteSelectedList.
	Removed int
}

func blank(name string) bool {
	return strings.TrimSpace(name) == ""
}

// AddList appends a new list. Blank names are ignored.
func AddList(st *model.AppState, name string) Result {
	if st == nil || blank(name) {
		return Result{}
	}
	st.Lists = append(st.Lists, model.NewList(name))
	return Result{Changed: true, List: &st.Lists[len(st.Lists)-1]}
}

// SelectList sets the selection without checking that the list exists.
func SelectList(st *model.AppState, id string) Result {
	if st == nil {
		return Result{}
	}
	changed := st.SelectedListID != id
	st.SelectedListID = id
	l, _ := st.FindList(id)
	return Result{Changed: changed, List: l}
}

// DeleteSelectedList removes the selected list and clears the selection.
// A stale selection is still cleared, so Changed is set with Removed 0.
func DeleteSelectedList(st *model.AppState) Result {
	if st == nil {
		return Result{}
	}
	id := st.SelectedListID
	st.SelectedListID = ""
	if id == "" {
		return Result{}
	}
	kept := st.Lists[:0]
	removed := false
	for _, l := range st.Lists {
		if l.ID == id {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	st.Lists = kept
	// The selection went from id to "", which is a change on its own.
	return Result{Changed: true, Removed: boolToInt(removed)}
}

// AddTask appends a task to the selected list. Blank names, no selection and
// a stale selection are no-ops.
func AddTask(st *model.AppState, name string) Result {
	if blank(name) {
		return Result{}
	}
	l, ok := st.SelectedList()
	if !ok {
		return Result{}
	}
	l.Tasks = append(l.Tasks, model.NewTask(name))
	return Result{Changed: true, List: l, Task: &l.Tasks[len(l.Tasks)-1]}
}

// ToggleTask sets a task's completion flag. Unknown tasks and missing
// selections are silently ignored.
func ToggleTask(st *model.AppState, taskID string, checked bool) Result {
	l, ok := st.SelectedList()
	if !ok {
		return Result{}
	}
	t, ok := l.FindTask(taskID)
	if !ok {
		return Result{}
	}
	changed := t.Complete != checked
	t.Complete = checked
	return Result{Changed: changed, List: l, Task: t}
}

// ClearCompleted drops completed tasks from the selected list, keeping order.
func ClearCompleted(st *model.AppState) Result {
	l, ok := st.SelectedList()
	if !ok {
		return Result{}
	}
	kept := make([]model.Task, 0, len(l.Tasks))
	for _, t := range l.Tasks {
		if !t.Complete {
			kept = append(kept, t)
		}
	}
	removed := len(l.Tasks) - len(kept)
	l.Tasks = kept
	return Result{Changed: removed > 0, List: l, Removed: removed}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
