// Package memory is an in-process key-value backend. Contents are lost on
// restart; it backs tests and the "memory" storage setting.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

// KV is a map guarded by a RWMutex. Values are copied in and out.
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKV returns an empty store.
func NewKV() *KV {
	return &KV{data: make(map[string][]byte)}
}

// Get returns a copy of the value at key, or domain.ErrNotFound.
func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	v, ok := kv.data[key]
	if !ok {
		return nil, fmt.Errorf("key %s: %w", key, domain.ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value at key.
func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (kv *KV) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	kv.mu.Lock()
	defer kv.mu.Unlock()

	delete(kv.data, key)
	return nil
}

// Update runs fn on the current value of key under the write lock and
// stores its result. fn sees nil for a missing key.
func (kv *KV) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	kv.mu.Lock()
	defer kv.mu.Unlock()

	var old []byte
	if v, ok := kv.data[key]; ok {
		old = append([]byte(nil), v...)
	}
	next, err := fn(old)
	if err != nil {
		return err
	}
	kv.data[key] = append([]byte(nil), next...)
	return nil
}

// Ping always succeeds.
func (kv *KV) Ping(context.Context) error { return nil }

// Len returns the number of stored keys.
func (kv *KV) Len() int {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	return len(kv.data)
}
