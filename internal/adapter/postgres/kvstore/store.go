// Package kvstore implements the key-value backend on a PostgreSQL table.
package kvstore

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/teambuilder/internal/adapter/postgres"
	"github.com/heartmarshall/teambuilder/internal/domain"
)

const table = "kv_entries"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Store keeps one row per key in kv_entries.
type Store struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a Store on pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, tx: postgres.NewTxManager(pool)}
}

// Get returns the value stored under key, or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := builder.
		Select("value").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var value []byte
	if err := postgres.QuerierFromCtx(ctx, s.pool).QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return nil, postgres.MapError(err, "key", key)
	}
	return value, nil
}

// Set inserts or overwrites key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := upsert(key, value)
	if err != nil {
		return err
	}
	if _, err := postgres.QuerierFromCtx(ctx, s.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "key", key)
	}
	return nil
}

// Delete removes key. A missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	query, args, err := builder.
		Delete(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, s.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "key", key)
	}
	return nil
}

// Update reads key, applies fn and writes the result in one transaction.
// A transaction-scoped advisory lock on the key serialises writers,
// including the first write of a key that does not exist yet.
func (s *Store) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, s.pool)

		if _, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
			return postgres.MapError(err, "key", key)
		}

		old, err := s.Get(ctx, key)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		next, err := fn(old)
		if err != nil {
			return err
		}
		return s.Set(ctx, key, next)
	})
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func upsert(key string, value []byte) (string, []any, error) {
	query, args, err := builder.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build upsert: %w", err)
	}
	return query, args, nil
}
