// Package store is the entity store adapter: a key-collection store whose
// only primitives are "load a whole collection" and "replace a whole
// collection". Collections are JSON arrays addressed by domain.Collection.
package store

import (
	"context"

	"github.com/alexanderramin/strata/internal/domain"
)

// Backend reads and writes raw collection payloads. Get returns nil for a
// collection that has never been written.
type Backend interface {
	Get(ctx context.Context, name domain.Collection) ([]byte, error)
	Set(ctx context.Context, name domain.Collection, payload []byte) error
}

// UnitOfWork scopes a group of collection writes. Either every Set made
// through the Backend handed to fn is kept, or none is.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, b Backend) error) error
	WithinReadTx(ctx context.Context, fn func(ctx context.Context, b Backend) error) error
}
