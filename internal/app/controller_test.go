package app

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"tasklist-cli/internal/model"
	"tasklist-cli/internal/store"
	"tasklist-cli/internal/view"

	"github.com/google/go-cmp/cmp"
)

type bogusCommand struct{}

func (bogusCommand) Kind() string { return "bogus" }

type failingKV struct {
	store.MemoryKV
	err error
}

func (kv *failingKV) Set(context.Context, map[string]string, ...string) error { return kv.err }

func openTest(t *testing.T, kv store.KV) (*Controller, *view.Recorder) {
	t.Helper()
	rec := &view.Recorder{}
	c, err := Open(context.Background(), kv, rec)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return c, rec
}

func mustDispatch(t *testing.T, c *Controller, cmd Command) {
	t.Helper()
	if _, err := c.Dispatch(context.Background(), cmd); err != nil {
		t.Fatalf("Dispatch %s: %v", cmd.Kind(), err)
	}
}

func TestOpen_PaintsInitialDisplay(t *testing.T) {
	t.Parallel()

	_, rec := openTest(t, store.NewMemoryKV(nil))
	if rec.Paints != 1 {
		t.Fatalf("expected initial paint, got %d", rec.Paints)
	}
	if rec.Last.Detail.Visible {
		t.Fatalf("expected hidden detail on first run")
	}
}

func TestGroceriesScenario(t *testing.T) {
	t.Parallel()

	c, rec := openTest(t, store.NewMemoryKV(nil))

	mustDispatch(t, c, CreateList{Name: "Groceries"})
	listID := c.State().Lists[0].ID
	mustDispatch(t, c, SelectList{ID: listID})
	mustDispatch(t, c, CreateTask{Name: "Milk"})
	mustDispatch(t, c, CreateTask{Name: "Eggs"})
	milkID := c.State().Lists[0].Tasks[0].ID
	mustDispatch(t, c, ToggleTask{ID: milkID, Checked: true})

	d := rec.Last
	if d.Detail.Count != "1 task remaining" {
		t.Fatalf("expected count line, got %q", d.Detail.Count)
	}
	if len(d.Lists) != 1 || d.Lists[0].Name != "Groceries" || !d.Lists[0].Active {
		t.Fatalf("unexpected lists region: %#v", d.Lists)
	}
	if len(d.Detail.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %#v", d.Detail.Rows)
	}
	checked := 0
	for _, r := range d.Detail.Rows {
		if r.Checked {
			checked++
		}
	}
	if checked != 1 || !d.Detail.Rows[0].Checked {
		t.Fatalf("expected only Milk checked, got %#v", d.Detail.Rows)
	}
	if rec.Paints != 6 {
		t.Fatalf("expected one paint per dispatch plus initial, got %d", rec.Paints)
	}
}

func TestDispatch_PersistsEveryCommand(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := store.NewMemoryKV(nil)
	c, _ := openTest(t, kv)

	mustDispatch(t, c, CreateList{Name: "Work"})
	mustDispatch(t, c, SelectList{ID: c.State().Lists[0].ID})
	mustDispatch(t, c, CreateTask{Name: "Ship it"})

	reloaded, err := store.Load(ctx, kv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(c.State(), reloaded); diff != "" {
		t.Fatalf("persisted copy diverged (-mem +disk):\n%s", diff)
	}

	// A fresh controller over the same store sees the same state.
	c2, rec2 := openTest(t, kv)
	if diff := cmp.Diff(c.State(), c2.State()); diff != "" {
		t.Fatalf("reopen mismatch (-want +got):\n%s", diff)
	}
	if rec2.Last.Detail.Title != "Work" {
		t.Fatalf("expected reopened display to show selected list, got %#v", rec2.Last.Detail)
	}
}

func TestDispatch_DeleteSelectedAndClear(t *testing.T) {
	// Not parallel: swaps the package-wide id generator.
	restore := model.SetIDFunc(model.SequentialIDs())
	defer restore()

	c, rec := openTest(t, store.NewMemoryKV(nil))
	mustDispatch(t, c, CreateList{Name: "A"})
	mustDispatch(t, c, CreateList{Name: "B"})
	mustDispatch(t, c, SelectList{ID: "list-2"})
	mustDispatch(t, c, CreateTask{Name: "x"})
	mustDispatch(t, c, CreateTask{Name: "y"})
	mustDispatch(t, c, ToggleTask{ID: "task-1", Checked: true})

	res, err := c.Dispatch(context.Background(), ClearCompleted{})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if res.Removed != 1 {
		t.Fatalf("expected 1 removed, got %d", res.Removed)
	}
	if got := rec.Last.Detail.Rows; len(got) != 1 || got[0].ID != "task-2" {
		t.Fatalf("unexpected rows after clear: %#v", got)
	}

	mustDispatch(t, c, DeleteSelectedList{})
	st := c.State()
	if st.SelectedListID != "" || len(st.Lists) != 1 || st.Lists[0].ID != "list-1" {
		t.Fatalf("unexpected state after delete: %#v", st)
	}
	if rec.Last.Detail.Visible {
		t.Fatalf("expected detail hidden after deleting the selected list")
	}
}

func TestDispatch_ResultIsDetached(t *testing.T) {
	t.Parallel()

	c, _ := openTest(t, store.NewMemoryKV(nil))
	res, err := c.Dispatch(context.Background(), CreateList{Name: "A"})
	if err != nil {
		t.Fatal(err)
	}
	res.List.Name = "mutated"
	if got := c.State().Lists[0].Name; got != "A" {
		t.Fatalf("result aliases controller state: %q", got)
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	t.Parallel()

	c, rec := openTest(t, store.NewMemoryKV(nil))
	if _, err := c.Dispatch(context.Background(), bogusCommand{}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
	if _, err := c.Dispatch(context.Background(), nil); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand for nil, got %v", err)
	}
	if rec.Paints != 1 {
		t.Fatalf("unknown commands must not repaint")
	}
}

func TestDispatch_SaveErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	c, err := Open(context.Background(), &failingKV{err: boom}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := c.Dispatch(context.Background(), CreateList{Name: "A"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c, err := Open(context.Background(), store.NewMemoryKV(nil), nil, WithLogger(log.New(&buf, "", 0)))
	if err != nil {
		t.Fatal(err)
	}
	mustDispatch(t, c, CreateList{Name: ""})
	if !strings.Contains(buf.String(), "list.create changed=false") {
		t.Fatalf("expected dispatch log line, got %q", buf.String())
	}
}

func TestOpen_NilStore(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected error")
	}
}
