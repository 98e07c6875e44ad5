package store

import (
	"context"
	"sort"
	"sync"
)

// Keys under which the app state is stored. Both values are opaque text.
const (
	KeyLists          = "task.lists"
	KeySelectedListID = "task.selectedListId"
)

// KV is a durable string key-value store.
type KV interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set writes entries and removes deletes as one unit.
	Set(ctx context.Context, entries map[string]string, deletes ...string) error
	Close() error
}

// MemoryKV is a map-backed KV. The zero value is ready to use.
type MemoryKV struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemoryKV(seed map[string]string) *MemoryKV {
	kv := &MemoryKV{m: map[string]string{}}
	for k, v := range seed {
		kv.m[k] = v
	}
	return kv
}

func (kv *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.m[key]
	return v, ok, nil
}

func (kv *MemoryKV) Set(_ context.Context, entries map[string]string, deletes ...string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.m == nil {
		kv.m = map[string]string{}
	}
	for k, v := range entries {
		kv.m[k] = v
	}
	for _, k := range deletes {
		delete(kv.m, k)
	}
	return nil
}

func (kv *MemoryKV) Close() error { return nil }

// Keys returns the stored keys in sorted order.
func (kv *MemoryKV) Keys() []string {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	out := make([]string, 0, len(kv.m))
	for k := range kv.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
