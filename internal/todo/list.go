// Package todo implements the todo commands on top of a store handle.
// Each call is one load -> mutate -> save cycle; nothing is cached between calls.
package todo

import (
	"errors"
	"fmt"
	"time"

	"github.com/Makepad-fr/tada/internal/logger"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
)

var ErrNotFound = errors.New("todo not found")

// Store is what List needs from persistence.
type Store interface {
	Load() ([]model.Item, error)
	Save(items []model.Item) error
}

// List runs commands against a Store.
type List struct {
	store  Store
	now    func() time.Time
	strict bool
}

// Option tunes a List.
type Option func(*List)

// WithClock overrides time.Now for created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(l *List) { l.now = now }
}

// WithStrict makes a corrupt store an error instead of an empty list.
func WithStrict(strict bool) Option {
	return func(l *List) { l.strict = strict }
}

func New(store Store, opts ...Option) *List {
	l := &List{store: store, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *List) load() ([]model.Item, error) {
	items, err := l.store.Load()
	if err != nil {
		if !l.strict && errors.Is(err, jsonstore.ErrCorrupt) {
			logger.Warn("unreadable todo file, starting from an empty list", "err", err)
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("load: %w", err)
	}
	for i := range items {
		items[i].EnsureID()
	}
	return items, nil
}

func (l *List) save(items []model.Item) error {
	start := time.Now()
	if err := l.store.Save(items); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	logger.Debug("saved", "items", len(items), "took", time.Since(start))
	return nil
}

// Items returns the current list without touching the file.
func (l *List) Items() ([]model.Item, error) {
	return l.load()
}

// Add appends a pending item and returns it with its 1-based position.
// Any description is accepted verbatim, including an empty one.
func (l *List) Add(description string) (model.Item, int, error) {
	items, err := l.load()
	if err != nil {
		return model.Item{}, 0, err
	}
	it := model.NewItem(description, l.now())
	items = append(items, it)
	if err := l.save(items); err != nil {
		return model.Item{}, 0, err
	}
	return it, len(items), nil
}

// Done marks the referenced item completed. There is no way back to pending.
func (l *List) Done(ref Ref) (model.Item, error) {
	items, err := l.load()
	if err != nil {
		return model.Item{}, err
	}
	idx, err := resolve(items, ref)
	if err != nil {
		return model.Item{}, err
	}
	items[idx].Completed = true
	if err := l.save(items); err != nil {
		return model.Item{}, err
	}
	return items[idx], nil
}

// Remove deletes the referenced item; later positions move up by one.
func (l *List) Remove(ref Ref) (model.Item, error) {
	items, err := l.load()
	if err != nil {
		return model.Item{}, err
	}
	idx, err := resolve(items, ref)
	if err != nil {
		return model.Item{}, err
	}
	removed := items[idx]
	items = append(items[:idx], items[idx+1:]...)
	if err := l.save(items); err != nil {
		return model.Item{}, err
	}
	return removed, nil
}

// ClearCompleted drops every completed item. The file is only rewritten
// when something was dropped.
func (l *List) ClearCompleted() (int, error) {
	items, err := l.load()
	if err != nil {
		return 0, err
	}
	kept := items[:0]
	for _, it := range items {
		if !it.Completed {
			kept = append(kept, it)
		}
	}
	n := len(items) - len(kept)
	if n == 0 {
		return 0, nil
	}
	if err := l.save(kept); err != nil {
		return 0, err
	}
	return n, nil
}

// Replace persists a whole list edited elsewhere (the interactive browser).
func (l *List) Replace(items []model.Item) error {
	return l.save(items)
}

// Stats counts completed and pending items.
func Stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
