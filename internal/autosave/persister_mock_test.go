package autosave

import (
	"context"
	"sync"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

var _ persister = &persisterMock{}

type persisterMock struct {
	ClearDraftFunc func(ctx context.Context, profile string) error
	UpdateFunc     func(ctx context.Context, profile string, id string, fn func(*domain.SavedTeam)) (domain.SavedTeam, error)
	WriteDraftFunc func(ctx context.Context, profile string, l domain.Layout) error

	calls struct {
		ClearDraft []struct {
			Ctx     context.Context
			Profile string
		}
		Update []struct {
			Ctx     context.Context
			Profile string
			ID      string
			Fn      func(*domain.SavedTeam)
		}
		WriteDraft []struct {
			Ctx     context.Context
			Profile string
			L       domain.Layout
		}
	}
	lockClearDraft sync.RWMutex
	lockUpdate     sync.RWMutex
	lockWriteDraft sync.RWMutex
}

func (mock *persisterMock) ClearDraft(ctx context.Context, profile string) error {
	if mock.ClearDraftFunc == nil {
		panic("persisterMock.ClearDraftFunc: method is nil but persister.ClearDraft was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Profile string
	}{Ctx: ctx, Profile: profile}
	mock.lockClearDraft.Lock()
	mock.calls.ClearDraft = append(mock.calls.ClearDraft, callInfo)
	mock.lockClearDraft.Unlock()
	return mock.ClearDraftFunc(ctx, profile)
}

func (mock *persisterMock) ClearDraftCalls() []struct {
	Ctx     context.Context
	Profile string
} {
	mock.lockClearDraft.RLock()
	calls := mock.calls.ClearDraft
	mock.lockClearDraft.RUnlock()
	return calls
}

func (mock *persisterMock) Update(ctx context.Context, profile string, id string, fn func(*domain.SavedTeam)) (domain.SavedTeam, error) {
	if mock.UpdateFunc == nil {
		panic("persisterMock.UpdateFunc: method is nil but persister.Update was just called")
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

func (mock *persisterMock) UpdateCalls() []struct {
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

func (mock *persisterMock) WriteDraft(ctx context.Context, profile string, l domain.Layout) error {
	if mock.WriteDraftFunc == nil {
		panic("persisterMock.WriteDraftFunc: method is nil but persister.WriteDraft was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Profile string
		L       domain.Layout
	}{Ctx: ctx, Profile: profile, L: l}
	mock.lockWriteDraft.Lock()
	mock.calls.WriteDraft = append(mock.calls.WriteDraft, callInfo)
	mock.lockWriteDraft.Unlock()
	return mock.WriteDraftFunc(ctx, profile, l)
}

func (mock *persisterMock) WriteDraftCalls() []struct {
	Ctx     context.Context
	Profile string
	L       domain.Layout
} {
	mock.lockWriteDraft.RLock()
	calls := mock.calls.WriteDraft
	mock.lockWriteDraft.RUnlock()
	return calls
}
