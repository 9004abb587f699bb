package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/metrics"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid input")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Entity is anything a Collection can hold.
type Entity interface {
	Key() string
}

// Collection is the in-memory state of one tracker. Mutations are applied
// synchronously and in call order; the matching backend write runs in the
// background and is never rolled back. A failed write only sets the banner.
type Collection[T Entity] struct {
	entity   string
	plural   string
	fallback *localstore.Store[T]

	mu          sync.Mutex
	items       []T
	banner      string
	imageFailed map[string]bool

	writes sync.WaitGroup
}

func NewCollection[T Entity](entity, plural string, fallback *localstore.Store[T]) *Collection[T] {
	return &Collection[T]{
		entity:      entity,
		plural:      plural,
		fallback:    fallback,
		items:       []T{},
		imageFailed: map[string]bool{},
	}
}

// Load replaces the state with fresh rows from fetch and clears the banner.
// When the backend cannot be read the last fallback snapshot is served
// instead and the banner is set.
func (c *Collection[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		slog.Error("failed to load from backend", "error", err, "entity", c.plural)
		metrics.FallbackReads.WithLabelValues(c.plural).Inc()
		c.items = c.fallback.Get()
		c.banner = fmt.Sprintf("failed to load %s from backend", c.plural)
		return err
	}

	if items == nil {
		items = []T{}
	}
	c.items = items
	c.banner = ""
	c.mirror()
	return nil
}

// Items returns a copy of the current state.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Snapshot returns the items together with the current banner.
func (c *Collection[T]) Snapshot() ([]T, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items), c.banner
}

func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

func (c *Collection[T]) Banner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner
}

func (c *Collection[T]) DismissBanner() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.banner = ""
}

// Mutate swaps in the state computed by fn and then runs write in the
// background on a context that outlives ctx. If fn fails nothing changes
// and write is not called. A nil write only updates local state.
func (c *Collection[T]) Mutate(ctx context.Context, action string, fn func([]T) ([]T, error), write func(context.Context) error) error {
	c.mu.Lock()
	next, err := fn(slices.Clone(c.items))
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.items = next
	c.mirror()
	c.mu.Unlock()

	if write == nil {
		return nil
	}

	bg := context.WithoutCancel(ctx)
	c.writes.Add(1)
	go func() {
		defer c.writes.Done()

		err := write(bg)
		metrics.BackendWrites.WithLabelValues(c.plural, action, metrics.Outcome(err)).Inc()
		if err != nil {
			slog.Error("failed to write to backend", "error", err, "entity", c.entity, "action", action)
			c.mu.Lock()
			c.banner = fmt.Sprintf("failed to %s %s in backend", action, c.entity)
			c.mu.Unlock()
		}
	}()
	return nil
}

// Wait blocks until every background write started so far has finished.
func (c *Collection[T]) Wait() {
	c.writes.Wait()
}

// MarkImageFailed records that the image of id could not be loaded. The flag
// lives only in memory and is cleared when the item is edited.
func (c *Collection[T]) MarkImageFailed(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index(id) < 0 {
		return ErrNotFound
	}
	c.imageFailed[id] = true
	return nil
}

func (c *Collection[T]) ImageFailed(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.imageFailed[id]
}

// FailedImages lists the ids whose image failed to load.
func (c *Collection[T]) FailedImages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(c.imageFailed))
	for id := range c.imageFailed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (c *Collection[T]) clearImageFailed(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.imageFailed, id)
}

// Fallback returns the store mirroring this collection.
func (c *Collection[T]) Fallback() *localstore.Store[T] {
	return c.fallback
}

// index must be called with mu held.
func (c *Collection[T]) index(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool { return item.Key() == id })
}

// mirror must be called with mu held.
func (c *Collection[T]) mirror() {
	err := c.fallback.Set(c.items)
	if err != nil {
		slog.Warn("failed to update fallback store", "error", err, "entity", c.plural)
	}
}

func appendItem[T Entity](item T) func([]T) ([]T, error) {
	return func(items []T) ([]T, error) {
		return append(items, item), nil
	}
}

// updateItem applies fn to the item with id, returning ErrNotFound when absent.
func updateItem[T Entity](id string, fn func(*T) error) func([]T) ([]T, error) {
	return func(items []T) ([]T, error) {
		i := slices.IndexFunc(items, func(item T) bool { return item.Key() == id })
		if i < 0 {
			return nil, ErrNotFound
		}
		err := fn(&items[i])
		if err != nil {
			return nil, err
		}
		return items, nil
	}
}

// removeItem drops the item with id. Removing a missing item is not an error.
func removeItem[T Entity](id string) func([]T) ([]T, error) {
	return func(items []T) ([]T, error) {
		return slices.DeleteFunc(items, func(item T) bool { return item.Key() == id }), nil
	}
}

// edit applies fn to the item with id and returns the updated copy. The
// write closure runs only after fn succeeded.
func (c *Collection[T]) edit(ctx context.Context, action, id string, fn func(*T) error, write func(context.Context) error) (T, error) {
	var updated T
	err := c.Mutate(ctx, action, updateItem(id, func(item *T) error {
		err := fn(item)
		if err != nil {
			return err
		}
		updated = *item
		return nil
	}), write)
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// remove drops id locally and deletes it in the background.
func (c *Collection[T]) remove(ctx context.Context, id string, write func(context.Context) error) error {
	c.clearImageFailed(id)
	return c.Mutate(ctx, "delete", removeItem[T](id), write)
}
