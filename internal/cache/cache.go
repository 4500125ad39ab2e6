// Package cache implements the client-side query cache the pages read
// through: last-known results keyed by (operation name, parameters), with
// explicit prefix invalidation. Freshness is achieved only by
// invalidate-then-refetch; mutations never write entries directly.
package cache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Status describes the state of a cached query.
type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusSuccess Status = "success"
)

// Entry is the cached outcome of one query.
type Entry struct {
	Status    Status
	Data      interface{}
	Err       error
	UpdatedAt time.Time

	// gen identifies the fetch that produced this entry, so a slow fetch can
	// tell whether the placeholder it planted is still the live one.
	gen uint64
}

// Key builds a cache key from an operation name and its scoping parameters.
// Parameters are serialized in sorted order so equal parameter sets always
// produce the same key, e.g. "exercise.getExercises?workoutId=662a...".
// A scoped key limits the blast radius of an invalidation to one list.
func Key(op string, params map[string]string) string {
	if len(params) == 0 {
		return op
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(op)
	for i, name := range names {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}
	return b.String()
}

// FetchFunc loads fresh data for a query on a cache miss.
type FetchFunc func(ctx context.Context) (interface{}, error)

// Cache is a process-wide in-memory query cache. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	lastGen uint64
	entries map[string]Entry
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// Query returns the cached entry for key, fetching it first when absent or
// invalidated. While one caller fetches, concurrent callers observe a loading
// entry instead of piling onto the remote call. Failed fetches are returned
// as an error entry but not cached, so the next read retries.
func (c *Cache) Query(ctx context.Context, key string, fetch FetchFunc) Entry {
	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return entry
	}
	c.lastGen++
	loading := Entry{Status: StatusLoading, UpdatedAt: time.Now(), gen: c.lastGen}
	c.entries[key] = loading
	c.mu.Unlock()

	data, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	// Only the fetch whose placeholder is still the live entry may write. An
	// invalidation mid-fetch drops the placeholder, and a fetch started after
	// that invalidation plants one with a newer generation; in either case the
	// result we hold is already stale, so it is returned one-shot and the
	// cache is left to the newer fetch.
	current, ok := c.entries[key]
	ours := ok && current.Status == StatusLoading && current.gen == loading.gen
	if err != nil {
		// Errors are not retained so a later read refetches instead of
		// pinning the error branch forever.
		if ours {
			delete(c.entries, key)
		}
		return Entry{Status: StatusError, Err: err, UpdatedAt: time.Now()}
	}
	entry := Entry{Status: StatusSuccess, Data: data, UpdatedAt: time.Now(), gen: loading.gen}
	if ours {
		c.entries[key] = entry
	}
	return entry
}

// Peek returns the cached entry without fetching.
func (c *Cache) Peek(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// Invalidate marks every entry whose key starts with prefix as stale by
// removing it; the next Query for those keys refetches. It returns the number
// of entries dropped. Passing a fully scoped key ("exercise.getExercises?
// workoutId=w1") touches one list; passing the bare operation name touches
// every parameterization of it.
func (c *Cache) Invalidate(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	dropped := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			dropped++
		}
	}
	return dropped
}

// Clear empties the whole cache. Used when the session changes (login,
// logout, account deletion) so one user's data never bleeds into another's
// view.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Entry)
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
