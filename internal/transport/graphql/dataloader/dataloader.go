// Package dataloader provides per-request DataLoaders that batch catalog
// lookups made while resolving saved-team units. Every batch reads one
// catalog snapshot, so a reload mid-request cannot mix two catalogs in one
// batch.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type entityCatalog interface {
	CharactersByIDs(ids []string) []domain.Character
	PsychubesByIDs(ids []string) []domain.Psychube
}

// Loaders holds the per-request DataLoaders. Created per request via
// NewLoaders. A missing entity loads as nil.
type Loaders struct {
	CharacterByID *dataloader.Loader[string, *domain.Character]
	PsychubeByID  *dataloader.Loader[string, *domain.Psychube]
}

// NewLoaders creates a set of DataLoaders over catalog.
// Must be called per request (loaders cache results within a single request).
func NewLoaders(catalog entityCatalog) *Loaders {
	return &Loaders{
		CharacterByID: newLoader(newCharactersBatchFn(catalog)),
		PsychubeByID:  newLoader(newPsychubesBatchFn(catalog)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (the middleware is not configured).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context; is the middleware configured?")
	}
	return l
}
