package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/strata/internal/domain"
)

// Collection is the typed view of one stored collection.
type Collection[T any] interface {
	// Load returns the full collection in insertion order. An empty or
	// never-written collection yields an empty slice, not an error.
	Load(ctx context.Context) ([]T, error)
	// ReplaceAll overwrites the entire collection with items.
	ReplaceAll(ctx context.Context, items []T) error
}

type jsonCollection[T any] struct {
	backend Backend
	name    domain.Collection
}

// Open returns the typed collection name on b.
func Open[T any](b Backend, name domain.Collection) Collection[T] {
	return &jsonCollection[T]{backend: b, name: name}
}

func (c *jsonCollection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.backend.Get(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.name, err)
	}
	items := []T{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.name, err)
	}
	return items, nil
}

func (c *jsonCollection[T]) ReplaceAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.name, err)
	}
	if err := c.backend.Set(ctx, c.name, raw); err != nil {
		return fmt.Errorf("replacing %s: %w", c.name, err)
	}
	return nil
}
