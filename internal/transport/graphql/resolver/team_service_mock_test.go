package resolver

import (
	"context"
	"sync"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/service/teams"
)

var _ teamService = &teamServiceMock{}

type teamServiceMock struct {
	DeleteFunc func(ctx context.Context, id string) error
	EditFunc   func(ctx context.Context, id string, input teams.EditInput) (domain.SavedTeam, error)
	ListFunc   func(ctx context.Context) ([]domain.SavedTeam, error)
	ShareFunc  func(ctx context.Context, id string) (teams.ShareResult, error)

	calls struct {
		Delete []struct {
			Ctx context.Context
			ID  string
		}
		Edit []struct {
			Ctx   context.Context
			ID    string
			Input teams.EditInput
		}
		List []struct {
			Ctx context.Context
		}
		Share []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockDelete sync.RWMutex
	lockEdit   sync.RWMutex
	lockList   sync.RWMutex
	lockShare  sync.RWMutex
}

func (mock *teamServiceMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("teamServiceMock.DeleteFunc: method is nil but teamService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *teamServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *teamServiceMock) Edit(ctx context.Context, id string, input teams.EditInput) (domain.SavedTeam, error) {
	if mock.EditFunc == nil {
		panic("teamServiceMock.EditFunc: method is nil but teamService.Edit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Input teams.EditInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockEdit.Lock()
	mock.calls.Edit = append(mock.calls.Edit, callInfo)
	mock.lockEdit.Unlock()
	return mock.EditFunc(ctx, id, input)
}

func (mock *teamServiceMock) EditCalls() []struct {
	Ctx   context.Context
	ID    string
	Input teams.EditInput
} {
	mock.lockEdit.RLock()
	calls := mock.calls.Edit
	mock.lockEdit.RUnlock()
	return calls
}

func (mock *teamServiceMock) List(ctx context.Context) ([]domain.SavedTeam, error) {
	if mock.ListFunc == nil {
		panic("teamServiceMock.ListFunc: method is nil but teamService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *teamServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *teamServiceMock) Share(ctx context.Context, id string) (teams.ShareResult, error) {
	if mock.ShareFunc == nil {
		panic("teamServiceMock.ShareFunc: method is nil but teamService.Share was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockShare.Lock()
	mock.calls.Share = append(mock.calls.Share, callInfo)
	mock.lockShare.Unlock()
	return mock.ShareFunc(ctx, id)
}

func (mock *teamServiceMock) ShareCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockShare.RLock()
	calls := mock.calls.Share
	mock.lockShare.RUnlock()
	return calls
}
