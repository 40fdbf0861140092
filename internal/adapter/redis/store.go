// Package redis implements the key-value backend on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/teambuilder/internal/config"
	"github.com/heartmarshall/teambuilder/internal/domain"
)

// maxUpdateTries bounds optimistic retries when a watched key changes
// under an Update.
const maxUpdateTries = 10

// Store maps keys onto Redis strings, optionally under a key prefix.
type Store struct {
	rdb    goredis.UniversalClient
	prefix string
}

// Dial connects to Redis and pings it.
func Dial(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// New creates a Store on rdb.
func New(rdb goredis.UniversalClient, prefix string) *Store {
	return &Store{rdb: rdb, prefix: prefix}
}

func (s *Store) key(k string) string { return s.prefix + k }

// Get returns the value stored under key, or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("key %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("key %s: %w", key, err)
	}
	return v, nil
}

// Set overwrites key with no expiry.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("key %s: %w", key, err)
	}
	return nil
}

// Delete removes key. A missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("key %s: %w", key, err)
	}
	return nil
}

// Update runs fn inside WATCH/MULTI and retries when another client
// modifies key before the write commits.
func (s *Store) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	k := s.key(key)

	txf := func(tx *goredis.Tx) error {
		old, err := tx.Get(ctx, k).Bytes()
		if errors.Is(err, goredis.Nil) {
			old, err = nil, nil
		}
		if err != nil {
			return fmt.Errorf("key %s: %w", key, err)
		}

		next, err := fn(old)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, k, next, 0)
			return nil
		})
		return err
	}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := s.rdb.Watch(ctx, txf, k)
		if err == nil || errors.Is(err, goredis.TxFailedErr) {
			return struct{}{}, err
		}
		return struct{}{}, backoff.Permanent(err)
	},
		backoff.WithBackOff(&backoff.ExponentialBackOff{
			InitialInterval:     5 * time.Millisecond,
			RandomizationFactor: 0.5,
			Multiplier:          2,
			MaxInterval:         200 * time.Millisecond,
		}),
		backoff.WithMaxTries(maxUpdateTries),
	)
	return err
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
