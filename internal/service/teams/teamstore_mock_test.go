package teams

import (
	"context"
	"sync"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

var _ teamStore = &teamStoreMock{}

type teamStoreMock struct {
	DeleteFunc    func(ctx context.Context, profile string, id string) error
	GetFunc       func(ctx context.Context, profile string, id string) (domain.SavedTeam, error)
	ListSavedFunc func(ctx context.Context, profile string) ([]domain.SavedTeam, error)
	UpdateFunc    func(ctx context.Context, profile string, id string, fn func(*domain.SavedTeam)) (domain.SavedTeam, error)

	calls struct {
		Delete []struct {
			Ctx     context.Context
			Profile string
			ID      string
		}
		Get []struct {
			Ctx     context.Context
			Profile string
			ID      string
		}
		ListSaved []struct {
			Ctx     context.Context
			Profile string
		}
		Update []struct {
			Ctx     context.Context
			Profile string
			ID      string
			Fn      func(*domain.SavedTeam)
		}
	}
	lockDelete    sync.RWMutex
	lockGet       sync.RWMutex
	lockListSaved sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *teamStoreMock) Delete(ctx context.Context, profile string, id string) error {
	if mock.DeleteFunc == nil {
		panic("teamStoreMock.DeleteFunc: method is nil but teamStore.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Profile string
		ID      string
	}{Ctx: ctx, Profile: profile, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, profile, id)
}

func (mock *teamStoreMock) DeleteCalls() []struct {
	Ctx     context.Context
	Profile string
	ID      string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *teamStoreMock) Get(ctx context.Context, profile string, id string) (domain.SavedTeam, error) {
	if mock.GetFunc == nil {
		panic("teamStoreMock.GetFunc: method is nil but teamStore.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Profile string
		ID      string
	}{Ctx: ctx, Profile: profile, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, profile, id)
}

func (mock *teamStoreMock) GetCalls() []struct {
	Ctx     context.Context
	Profile string
	ID      string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *teamStoreMock) ListSaved(ctx context.Context, profile string) ([]domain.SavedTeam, error) {
	if mock.ListSavedFunc == nil {
		panic("teamStoreMock.ListSavedFunc: method is nil but teamStore.ListSaved was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Profile string
	}{Ctx: ctx, Profile: profile}
	mock.lockListSaved.Lock()
	mock.calls.ListSaved = append(mock.calls.ListSaved, callInfo)
	mock.lockListSaved.Unlock()
	return mock.ListSavedFunc(ctx, profile)
}

func (mock *teamStoreMock) ListSavedCalls() []struct {
	Ctx     context.Context
	Profile string
} {
	mock.lockListSaved.RLock()
	calls := mock.calls.ListSaved
	mock.lockListSaved.RUnlock()
	return calls
}

func (mock *teamStoreMock) Update(ctx context.Context, profile string, id string, fn func(*domain.SavedTeam)) (domain.SavedTeam, error) {
	if mock.UpdateFunc == nil {
		panic("teamStoreMock.UpdateFunc: method is nil but teamStore.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Profile string
		ID      string
		Fn      func(*domain.SavedTeam)
	}{Ctx: ctx, Profile: profile, ID: id, Fn: fn}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, profile, id, fn)
}

func (mock *teamStoreMock) UpdateCalls() []struct {
	Ctx     context.Context
	Profile string
	ID      string
	Fn      func(*domain.SavedTeam)
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
