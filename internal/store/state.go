package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tasklist-cli/internal/model"
)

// nullMarker is what older builds wrote for "nothing selected".
const nullMarker = "null"

// Load reads the app state from kv.
//
// Loading is best effort for content: a missing or unparseable list blob is a
// first run, and a selection that is empty, "null" or points at no list means
// nothing is selected. Only store errors are returned.
func Load(ctx context.Context, kv KV) (model.AppState, error) {
	st := model.AppState{Lists: []model.TaskList{}}

	raw, ok, err := kv.Get(ctx, KeyLists)
	if err != nil {
		return st, fmt.Errorf("read %s: %w", KeyLists, err)
	}
	if ok {
		var lists []model.TaskList
		if err := json.Unmarshal([]byte(raw), &lists); err == nil && lists != nil {
			st.Lists = normalizeLists(lists)
		}
	}

	sel, ok, err := kv.Get(ctx, KeySelectedListID)
	if err != nil {
		return st, fmt.Errorf("read %s: %w", KeySelectedListID, err)
	}
	sel = strings.TrimSpace(sel)
	if ok && sel != "" && sel != nullMarker {
		if _, found := st.FindList(sel); found {
			st.SelectedListID = sel
		}
	}
	return st, nil
}

// Save writes lists as one JSON blob and the selection as a scalar. When
// nothing is selected the selection entry is removed.
func Save(ctx context.Context, kv KV, st model.AppState) error {
	// Clone yields non-nil slices without touching the caller's state.
	b, err := json.Marshal(st.Clone().Lists)
	if err != nil {
		return err
	}
	entries := map[string]string{KeyLists: string(b)}
	var deletes []string
	if st.SelectedListID != "" {
		entries[KeySelectedListID] = st.SelectedListID
	} else {
		deletes = append(deletes, KeySelectedListID)
	}
	if err := kv.Set(ctx, entries, deletes...); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// normalizeLists makes nil task slices empty so the wire format always
// carries "tasks": [].
func normalizeLists(lists []model.TaskList) []model.TaskList {
	for i := range lists {
		if lists[i].Tasks == nil {
			lists[i].Tasks = []model.Task{}
		}
	}
	return lists
}
