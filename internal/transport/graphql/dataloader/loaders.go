package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

func newCharactersBatchFn(catalog entityCatalog) dataloader.BatchFunc[string, *domain.Character] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.Character] {
		if err := ctx.Err(); err != nil {
			return errorResults[*domain.Character](len(keys), err)
		}

		found := catalog.CharactersByIDs(keys)
		byID := make(map[string]*domain.Character, len(found))
		for i := range found {
			byID[found[i].ID] = &found[i]
		}
		return mapResults(keys, byID)
	}
}

func newPsychubesBatchFn(catalog entityCatalog) dataloader.BatchFunc[string, *domain.Psychube] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.Psychube] {
		if err := ctx.Err(); err != nil {
			return errorResults[*domain.Psychube](len(keys), err)
		}

		found := catalog.PsychubesByIDs(keys)
		byID := make(map[string]*domain.Psychube, len(found))
		for i := range found {
			byID[found[i].ID] = &found[i]
		}
		return mapResults(keys, byID)
	}
}

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults orders found by keys. Keys without an entry get the zero value.
func mapResults[V any](keys []string, found map[string]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, k := range keys {
		results[i] = &dataloader.Result[V]{Data: found[k]}
	}
	return results
}
