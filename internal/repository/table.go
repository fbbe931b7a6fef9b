package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/store"
)

// ErrNotFound is returned when no entity with the requested id is visible.
var ErrNotFound = errors.New("not found")

// Table is a collection materialized as an id-keyed map. Reads and edits are
// O(1); the whole-collection form only exists at Load and Flush.
type Table[T domain.Entity] struct {
	name  domain.Collection
	coll  store.Collection[T]
	order []string
	byID  map[string]T
	dirty bool
}

// LoadTable reads collection name from b into a Table.
func LoadTable[T domain.Entity](ctx context.Context, b store.Backend, name domain.Collection) (*Table[T], error) {
	coll := store.Open[T](b, name)
	items, err := coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	t := &Table[T]{
		name:  name,
		coll:  coll,
		order: make([]string, 0, len(items)),
		byID:  make(map[string]T, len(items)),
	}
	for _, it := range items {
		id := it.EntityID()
		if _, dup := t.byID[id]; !dup {
			t.order = append(t.order, id)
		}
		t.byID[id] = it
	}
	return t, nil
}

// Name returns the collection this table was loaded from.
func (t *Table[T]) Name() domain.Collection {
	return t.name
}

func (t *Table[T]) Len() int {
	return len(t.order)
}

func (t *Table[T]) Has(id string) bool {
	_, ok := t.byID[id]
	return ok
}

func (t *Table[T]) Get(id string) (T, error) {
	it, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", singular(t.name), id, ErrNotFound)
	}
	return it, nil
}

// Put replaces the entity with the same id in place, or appends it.
func (t *Table[T]) Put(item T) {
	id := item.EntityID()
	if _, ok := t.byID[id]; !ok {
		t.order = append(t.order, id)
	}
	t.byID[id] = item
	t.dirty = true
}

// Remove deletes id and reports whether it was present.
func (t *Table[T]) Remove(id string) bool {
	if _, ok := t.byID[id]; !ok {
		return false
	}
	delete(t.byID, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	t.dirty = true
	return true
}

// All returns every entity in insertion order.
func (t *Table[T]) All() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

// Filter returns the entities matching keep, in insertion order.
func (t *Table[T]) Filter(keep func(T) bool) []T {
	var out []T
	for _, id := range t.order {
		if it := t.byID[id]; keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Dirty reports whether the table holds edits not yet flushed.
func (t *Table[T]) Dirty() bool {
	return t.dirty
}

// Flush writes the table back as a whole collection when it has changed.
func (t *Table[T]) Flush(ctx context.Context) error {
	if !t.dirty {
		return nil
	}
	if err := t.coll.ReplaceAll(ctx, t.All()); err != nil {
		return err
	}
	t.dirty = false
	return nil
}

// GetScoped returns id when it exists and belongs to scope's company.
// Entities owned by other companies are reported as not found.
func GetScoped[T domain.CompanyOwned](t *Table[T], scope domain.Scope, id string) (T, error) {
	it, err := t.Get(id)
	if err != nil {
		return it, err
	}
	if !scope.Owns(it.OwnerCompany()) {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", singular(t.name), id, ErrNotFound)
	}
	return it, nil
}

// Scoped returns every entity owned by scope's company, in insertion order.
func Scoped[T domain.CompanyOwned](t *Table[T], scope domain.Scope) []T {
	return domain.BelongsTo(t.All(), scope.CompanyID)
}

func singular(name domain.Collection) string {
	switch name {
	case domain.CollectionGoals:
		return "goal"
	case domain.CollectionObjectives:
		return "objective"
	case domain.CollectionActionPlans:
		return "action plan"
	case domain.CollectionValues:
		return "value"
	case domain.CollectionVisions:
		return "vision"
	case domain.CollectionMissions:
		return "mission"
	case domain.CollectionUsers:
		return "user"
	default:
		return string(name)
	}
}

// GetReference resolves id as a parent or assignee reference. A missing id is
// ErrNotFound; an id owned by another company is domain.ErrOutOfScope.
func GetReference[T domain.CompanyOwned](t *Table[T], scope domain.Scope, id string) (T, error) {
	it, err := t.Get(id)
	if err != nil {
		return it, err
	}
	if !scope.Owns(it.OwnerCompany()) {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", singular(t.name), id, domain.ErrOutOfScope)
	}
	return it, nil
}
