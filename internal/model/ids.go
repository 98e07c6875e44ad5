package model

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDFunc returns a fresh identifier for the given kind ("list", "task").
type IDFunc func(kind string) string

var (
	idMu   sync.RWMutex
	idFunc IDFunc = randomID
)

// randomID returns kind-<uuid v4>. Random ids don't collide when several
// entities are created within the same clock tick.
func randomID(kind string) string {
	return kind + "-" + uuid.NewString()
}

// NewID returns a fresh identifier using the current generator.
func NewID(kind string) string {
	idMu.RLock()
	f := idFunc
	idMu.RUnlock()
	return f(kind)
}

// SetIDFunc swaps the generator and returns a func restoring the previous one.
// Intended for tests that need stable ids.
func SetIDFunc(f IDFunc) (restore func()) {
	idMu.Lock()
	prev := idFunc
	if f == nil {
		f = randomID
	}
	idFunc = f
	idMu.Unlock()
	return func() {
		idMu.Lock()
		idFunc = prev
		idMu.Unlock()
	}
}

// SequentialIDs returns a deterministic generator yielding kind-1, kind-2, ...
// with a separate counter per kind.
func SequentialIDs() IDFunc {
	var mu sync.Mutex
	next := map[string]int{}
	return func(kind string) string {
		mu.Lock()
		defer mu.Unlock()
		next[kind]++
		return fmt.Sprintf("%s-%d", kind, next[kind])
	}
}
