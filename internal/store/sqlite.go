package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/strata/internal/db"
	"github.com/alexanderramin/strata/internal/domain"
)

// SQLiteBackend stores each collection as one row of the collections table.
type SQLiteBackend struct {
	db db.DBTX
}

// NewSQLiteBackend creates a backend on conn, which may be a *sql.DB or a *sql.Tx.
func NewSQLiteBackend(conn db.DBTX) *SQLiteBackend {
	return &SQLiteBackend{db: conn}
}

func (b *SQLiteBackend) Get(ctx context.Context, name domain.Collection) ([]byte, error) {
	var payload string
	err := b.db.QueryRowContext(ctx, `SELECT payload FROM collections WHERE name = ?`, string(name)).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading collection %s: %w", name, err)
	}
	return []byte(payload), nil
}

func (b *SQLiteBackend) Set(ctx context.Context, name domain.Collection, payload []byte) error {
	query := `INSERT INTO collections (name, payload, updated_at, revision)
		VALUES (?, ?, ?, 1)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at,
			revision = collections.revision + 1`
	_, err := b.db.ExecContext(ctx, query, string(name), string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing collection %s: %w", name, err)
	}
	return nil
}

// Revision returns how many times name has been replaced.
func (b *SQLiteBackend) Revision(ctx context.Context, name domain.Collection) (int, error) {
	var rev int
	err := b.db.QueryRowContext(ctx, `SELECT revision FROM collections WHERE name = ?`, string(name)).Scan(&rev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading revision of %s: %w", name, err)
	}
	return rev, nil
}

// SQLiteUnitOfWork adapts db.UnitOfWork so each transaction hands out a
// tx-scoped SQLiteBackend.
type SQLiteUnitOfWork struct {
	uow db.UnitOfWork
}

func NewSQLiteUnitOfWork(uow db.UnitOfWork) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{uow: uow}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, b Backend) error) error {
	return u.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, NewSQLiteBackend(tx))
	})
}

func (u *SQLiteUnitOfWork) WithinReadTx(ctx context.Context, fn func(ctx context.Context, b Backend) error) error {
	return u.uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, NewSQLiteBackend(tx))
	})
}
