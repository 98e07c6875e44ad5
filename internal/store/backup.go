package store

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SnapshotEntry is one stored key. Value is nil when the key is absent.
type SnapshotEntry struct {
	Key   string  `json:"k"`
	Value *string `json:"v"`
}

// snapshotKeys are the keys a snapshot carries, in file order.
var snapshotKeys = []string{KeyLists, KeySelectedListID}

// ReadSnapshot captures the stored entries verbatim; values are not parsed.
func ReadSnapshot(ctx context.Context, kv KV) ([]SnapshotEntry, error) {
	out := make([]SnapshotEntry, 0, len(snapshotKeys))
	for _, k := range snapshotKeys {
		v, ok, err := kv.Get(ctx, k)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", k, err)
		}
		e := SnapshotEntry{Key: k}
		if ok {
			e.Value = &v
		}
		out = append(out, e)
	}
	return out, nil
}

// RestoreSnapshot replaces the stored entries with entries in one write.
// Keys the snapshot marks absent are deleted; unknown keys are rejected.
func RestoreSnapshot(ctx context.Context, kv KV, entries []SnapshotEntry) error {
	known := map[string]bool{}
	for _, k := range snapshotKeys {
		known[k] = true
	}
	set := map[string]string{}
	var deletes []string
	for _, e := range entries {
		if !known[e.Key] {
			return fmt.Errorf("backup: unknown key %q", e.Key)
		}
		if e.Value == nil {
			deletes = append(deletes, e.Key)
			continue
		}
		set[e.Key] = *e.Value
	}
	if len(set) == 0 && len(deletes) == 0 {
		return errors.New("backup: snapshot is empty")
	}
	return kv.Set(ctx, set, deletes...)
}

// WriteSnapshotJSONL writes one entry per line.
func WriteSnapshotJSONL(path string, entries []SnapshotEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadSnapshotJSONL reads entries written by WriteSnapshotJSONL.
func ReadSnapshotJSONL(path string) ([]SnapshotEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []SnapshotEntry
	sc := bufio.NewScanner(f)
	// Lists blobs can outgrow the default 64KiB token size.
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var e SnapshotEntry
		if err := json.Unmarshal([]byte(text), &e); err != nil {
			return nil, fmt.Errorf("parse snapshot line %d: %w", line, err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []SnapshotEntry{}
	}
	return out, nil
}
