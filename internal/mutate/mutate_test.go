package mutate

import (
	"testing"

	"tasklist-cli/internal/model"

	"github.com/google/go-cmp/cmp"
)

func seeded() *model.AppState {
	return &model.AppState{
		Lists: []model.TaskList{
			{ID: "l1", Name: "Groceries", Tasks: []model.Task{
				{ID: "t1", Name: "Milk"},
				{ID: "t2", Name: "Eggs", Complete: true},
				{ID: "t3", Name: "Bread"},
				{ID: "t4", Name: "Jam", Complete: true},
			}},
			{ID: "l2", Name: "Work", Tasks: []model.Task{}},
		},
		SelectedListID: "l1",
	}
}

func TestAddList(t *testing.T) {
	t.Parallel()

	st := &model.AppState{}
	res := AddList(st, "Groceries")
	if !res.Changed || len(st.Lists) != 1 {
		t.Fatalf("expected one list; got %#v", st.Lists)
	}
	if len(st.Lists[0].Tasks) != 0 || st.Lists[0].Name != "Groceries" {
		t.Fatalf("unexpected list %#v", st.Lists[0])
	}
	if res.List == nil || res.List.ID != st.Lists[0].ID {
		t.Fatalf("expected result to reference new list")
	}
	if st.SelectedListID != "" {
		t.Fatalf("creating a list must not select it")
	}
}

func TestAddList_BlankNamesIgnored(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "   ", "\t\n"} {
		st := seeded()
		before := st.Clone()
		if res := AddList(st, name); res.Changed {
			t.Fatalf("name %q: expected no change", name)
		}
		if diff := cmp.Diff(before, *st); diff != "" {
			t.Fatalf("name %q: state changed (-want +got):\n%s", name, diff)
		}
	}
}

func TestSelectList_Unconditional(t *testing.T) {
	t.Parallel()

	st := seeded()
	SelectList(st, "l2")
	if st.SelectedListID != "l2" {
		t.Fatalf("expected l2 selected, got %q", st.SelectedListID)
	}
	res := SelectList(st, "missing")
	if st.SelectedListID != "missing" || res.List != nil {
		t.Fatalf("expected unconditional select of unknown id; got %q %#v", st.SelectedListID, res.List)
	}
}

func TestDeleteSelectedList(t *testing.T) {
	t.Parallel()

	st := seeded()
	DeleteSelectedList(st)
	if st.SelectedListID != "" {
		t.Fatalf("expected selection reset")
	}
	want := []model.TaskList{{ID: "l2", Name: "Work", Tasks: []model.Task{}}}
	if diff := cmp.Diff(want, st.Lists); diff != "" {
		t.Fatalf("lists mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteSelectedList_NoSelectionIsNoop(t *testing.T) {
	t.Parallel()

	st := seeded()
	st.SelectedListID = ""
	before := st.Clone()
	if res := DeleteSelectedList(st); res.Changed {
		t.Fatalf("expected no change")
	}
	if diff := cmp.Diff(before, *st); diff != "" {
		t.Fatalf("state changed (-want +got):\n%s", diff)
	}
}

func TestDeleteSelectedList_StaleSelection(t *testing.T) {
	t.Parallel()

	st := seeded()
	st.SelectedListID = "gone"
	res := DeleteSelectedList(st)
	if !res.Changed || res.Removed != 0 {
		t.Fatalf("expected selection cleared without removing a list, got %#v", res)
	}
	if st.SelectedListID != "" || len(st.Lists) != 2 {
		t.Fatalf("unexpected state %#v", st)
	}

	st = seeded()
	if res := DeleteSelectedList(st); !res.Changed || res.Removed != 1 {
		t.Fatalf("expected one list removed, got %#v", res)
	}
}

func TestAddTask(t *testing.T) {
	t.Parallel()

	st := seeded()
	res := AddTask(st, "Butter")
	if !res.Changed || res.Task == nil {
		t.Fatalf("expected task added")
	}
	tasks := st.Lists[0].Tasks
	last := tasks[len(tasks)-1]
	if last.Name != "Butter" || last.Complete {
		t.Fatalf("unexpected task %#v", last)
	}
	if len(st.Lists[1].Tasks) != 0 {
		t.Fatalf("other list must be untouched")
	}
}

func TestAddTask_Noops(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		selected string
		task     string
	}{
		{name: "blank name", selected: "l1", task: " "},
		{name: "no selection", selected: "", task: "Butter"},
		{name: "stale selection", selected: "gone", task: "Butter"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := seeded()
			st.SelectedListID = tc.selected
			before := st.Clone()
			if res := AddTask(st, tc.task); res.Changed {
				t.Fatalf("expected no-op")
			}
			if diff := cmp.Diff(before, *st); diff != "" {
				t.Fatalf("state changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToggleTask_ChangesOnlyThatTask(t *testing.T) {
	t.Parallel()

	st := seeded()
	want := st.Clone()
	want.Lists[0].Tasks[0].Complete = true

	res := ToggleTask(st, "t1", true)
	if !res.Changed {
		t.Fatalf("expected change")
	}
	if diff := cmp.Diff(want, *st); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}

	// Setting the same value again is not a change.
	if res := ToggleTask(st, "t1", true); res.Changed {
		t.Fatalf("expected idempotent toggle")
	}
	ToggleTask(st, "t2", false)
	if st.Lists[0].Tasks[1].Complete {
		t.Fatalf("expected t2 unchecked")
	}
}

func TestToggleTask_StaleReferencesAreNoops(t *testing.T) {
	t.Parallel()

	st := seeded()
	before := st.Clone()
	if res := ToggleTask(st, "missing", true); res.Changed {
		t.Fatalf("expected no-op for unknown task")
	}
	st.SelectedListID = ""
	if res := ToggleTask(st, "t1", true); res.Changed {
		t.Fatalf("expected no-op without selection")
	}
	st.SelectedListID = "l2"
	if res := ToggleTask(st, "t1", true); res.Changed {
		t.Fatalf("expected no-op for task outside selected list")
	}
	before.SelectedListID = "l2"
	if diff := cmp.Diff(before, *st); diff != "" {
		t.Fatalf("state changed (-want +got):\n%s", diff)
	}
}

func TestClearCompleted_KeepsOrder(t *testing.T) {
	t.Parallel()

	st := seeded()
	res := ClearCompleted(st)
	if res.Removed != 2 || !res.Changed {
		t.Fatalf("expected 2 removed, got %#v", res)
	}
	want := []model.Task{{ID: "t1", Name: "Milk"}, {ID: "t3", Name: "Bread"}}
	if diff := cmp.Diff(want, st.Lists[0].Tasks); diff != "" {
		t.Fatalf("tasks mismatch (-want +got):\n%s", diff)
	}

	if res := ClearCompleted(st); res.Changed || res.Removed != 0 {
		t.Fatalf("expected second clear to be a no-op, got %#v", res)
	}
}

func TestClearCompleted_NoSelection(t *testing.T) {
	t.Parallel()

	st := seeded()
	st.SelectedListID = ""
	if res := ClearCompleted(st); res.Changed {
		t.Fatalf("expected no-op")
	}
	if len(st.Lists[0].Tasks) != 4 {
		t.Fatalf("tasks must be untouched")
	}
}
