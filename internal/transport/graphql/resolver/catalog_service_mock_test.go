package resolver

import (
	"context"
	"sync"

	"github.com/heartmarshall/teambuilder/internal/catalog"
	"github.com/heartmarshall/teambuilder/internal/domain"
	catalogsvc "github.com/heartmarshall/teambuilder/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	CharactersFunc func(ctx context.Context, f catalogsvc.CharacterFilter) ([]domain.Character, error)
	FacetsFunc     func(ctx context.Context) catalog.Facets
	PsychubesFunc  func(ctx context.Context, f catalogsvc.PsychubeFilter) ([]domain.Psychube, error)

	calls struct {
		Characters []struct {
			Ctx context.Context
			F   catalogsvc.CharacterFilter
		}
		Facets []struct {
			Ctx context.Context
		}
		Psychubes []struct {
			Ctx context.Context
			F   catalogsvc.PsychubeFilter
		}
	}
	lockCharacters sync.RWMutex
	lockFacets     sync.RWMutex
	lockPsychubes  sync.RWMutex
}

func (mock *catalogServiceMock) Characters(ctx context.Context, f catalogsvc.CharacterFilter) ([]domain.Character, error) {
	if mock.CharactersFunc == nil {
		panic("catalogServiceMock.CharactersFunc: method is nil but catalogService.Characters was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   catalogsvc.CharacterFilter
	}{Ctx: ctx, F: f}
	mock.lockCharacters.Lock()
	mock.calls.Characters = append(mock.calls.Characters, callInfo)
	mock.lockCharacters.Unlock()
	return mock.CharactersFunc(ctx, f)
}

func (mock *catalogServiceMock) CharactersCalls() []struct {
	Ctx context.Context
	F   catalogsvc.CharacterFilter
} {
	mock.lockCharacters.RLock()
	calls := mock.calls.Characters
	mock.lockCharacters.RUnlock()
	return calls
}

func (mock *catalogServiceMock) Facets(ctx context.Context) catalog.Facets {
	if mock.FacetsFunc == nil {
		panic("catalogServiceMock.FacetsFunc: method is nil but catalogService.Facets was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockFacets.Lock()
	mock.calls.Facets = append(mock.calls.Facets, callInfo)
	mock.lockFacets.Unlock()
	return mock.FacetsFunc(ctx)
}

func (mock *catalogServiceMock) FacetsCalls() []struct {
	Ctx context.Context
} {
	mock.lockFacets.RLock()
	calls := mock.calls.Facets
	mock.lockFacets.RUnlock()
	return calls
}

func (mock *catalogServiceMock) Psychubes(ctx context.Context, f catalogsvc.PsychubeFilter) ([]domain.Psychube, error) {
	if mock.PsychubesFunc == nil {
		panic("catalogServiceMock.PsychubesFunc: method is nil but catalogService.Psychubes was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   catalogsvc.PsychubeFilter
	}{Ctx: ctx, F: f}
	mock.lockPsychubes.Lock()
	mock.calls.Psychubes = append(mock.calls.Psychubes, callInfo)
	mock.lockPsychubes.Unlock()
	return mock.PsychubesFunc(ctx, f)
}

func (mock *catalogServiceMock) PsychubesCalls() []struct {
	Ctx context.Context
	F   catalogsvc.PsychubeFilter
} {
	mock.lockPsychubes.RLock()
	calls := mock.calls.Psychubes
	mock.lockPsychubes.RUnlock()
	return calls
}
