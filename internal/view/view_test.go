package view

import (
	"bytes"
	"strings"
	"testing"

	"tasklist-cli/internal/model"

	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"
)

func TestCountText(t *testing.T) {
	t.Parallel()

	cases := map[int]string{
		0: "0 tasks remaining",
		1: "1 task remaining",
		2: "2 tasks remaining",
		3: "3 tasks remaining",
	}
	for n, want := range cases {
		if got := CountText(n); got != want {
			t.Fatalf("CountText(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestProject_NoSelectionHidesDetail(t *testing.T) {
	t.Parallel()

	st := model.AppState{Lists: []model.TaskList{{ID: "l1", Name: "A"}, {ID: "l2", Name: "B"}}}
	got := Project(st)
	want := Display{
		Lists: []ListEntry{{ID: "l1", Name: "A"}, {ID: "l2", Name: "B"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("display mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_StaleSelectionHidesDetail(t *testing.T) {
	t.Parallel()

	st := model.AppState{Lists: []model.TaskList{{ID: "l1", Name: "A"}}, SelectedListID: "gone"}
	got := Project(st)
	if got.Detail.Visible {
		t.Fatalf("expected hidden detail for stale selection")
	}
	if got.Lists[0].Active {
		t.Fatalf("no list should be active")
	}
}

func TestProject_SelectedList(t *testing.T) {
	t.Parallel()

	st := model.AppState{
		Lists: []model.TaskList{
			{ID: "l1", Name: "Work", Tasks: []model.Task{}},
			{ID: "l2", Name: "Groceries", Tasks: []model.Task{
				{ID: "t1", Name: "Milk", Complete: true},
				{ID: "t2", Name: "Eggs"},
			}},
		},
		SelectedListID: "l2",
	}
	got := Project(st)
	want := Display{
		Lists: []ListEntry{
			{ID: "l1", Name: "Work"},
			{ID: "l2", Name: "Groceries", Active: true},
		},
		Detail: Detail{
			Visible: true,
			ListID:  "l2",
			Title:   "Groceries",
			Count:   "1 task remaining",
			Rows: []TaskRow{
				{ID: "t1", Name: "Milk", Checked: true},
				{ID: "t2", Name: "Eggs"},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("display mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderText_PlainRenderer(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)

	d := Display{
		Lists: []ListEntry{{ID: "l1", Name: "Work"}, {ID: "l2", Name: "Groceries", Active: true}},
		Detail: Detail{
			Visible: true,
			Title:   "Groceries",
			Count:   "1 task remaining",
			Rows:    []TaskRow{{ID: "t1", Name: "Milk", Checked: true}, {ID: "t2", Name: "Eggs"}},
		},
	}
	got := RenderText(d, r, true)
	want := strings.Join([]string{
		"My lists",
		"  Work",
		"> Groceries",
		"",
		"Groceries  1 task remaining",
		"  [x] Milk",
		"  [ ] Eggs",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("text mismatch:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestTextSurface_HiddenDetail(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := (TextSurface{W: &buf, ASCII: true}).Paint(Display{}); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "(no lists)") {
		t.Fatalf("expected empty marker, got %q", out)
	}
	if strings.Contains(out, "remaining") {
		t.Fatalf("detail must be hidden, got %q", out)
	}
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	d := Display{
		Lists: []ListEntry{{ID: "l1", Name: "Groceries", Active: true}},
		Detail: Detail{
			Visible: true,
			Title:   "Groceries",
			Count:   "2 tasks remaining",
			Rows:    []TaskRow{{ID: "t1", Name: "Milk *fresh*"}, {ID: "t2", Name: "Eggs", Checked: true}},
		},
	}
	got := Markdown(d)
	for _, want := range []string{
		"- **Groceries**",
		"# Groceries",
		"_2 tasks remaining_",
		`- [ ] Milk \*fresh\*`,
		"- [x] Eggs",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in markdown:\n%s", want, got)
		}
	}
}

func TestMarkdownSurface_Paint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := MarkdownSurface{W: &buf, Width: 60, Style: styles.NoTTYStyle}
	d := Display{Lists: []ListEntry{{ID: "l1", Name: "Groceries"}}}
	if err := s.Paint(d); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if !strings.Contains(buf.String(), "Groceries") {
		t.Fatalf("expected list name in output, got %q", buf.String())
	}
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder
	_ = r.Paint(Display{Lists: []ListEntry{{ID: "a"}}})
	_ = r.Paint(Display{})
	if r.Paints != 2 || len(r.Last.Lists) != 0 {
		t.Fatalf("expected last paint to win, got %#v", r)
	}
}
