package resolver

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/service/builder"
)

var _ builderService = &builderServiceMock{}

type builderServiceMock struct {
	ClearFunc         func(ctx context.Context, id uuid.UUID, input builder.ClearInput) (builder.MutationResult, error)
	ClickFunc         func(ctx context.Context, id uuid.UUID, input builder.ClickInput) (builder.MutationResult, error)
	CloseSessionFunc  func(ctx context.Context, id uuid.UUID) error
	CreateSessionFunc func(ctx context.Context, input builder.CreateSessionInput) (builder.View, error)
	DropFunc          func(ctx context.Context, id uuid.UUID, input builder.DropInput) (builder.MutationResult, error)
	GetSessionFunc    func(ctx context.Context, id uuid.UUID) (builder.View, error)
	ImportFunc        func(ctx context.Context, id uuid.UUID, input builder.ImportInput) (builder.View, error)
	LoadTeamFunc      func(ctx context.Context, id uuid.UUID, input builder.LoadInput) (builder.View, error)
	PlaceFunc         func(ctx context.Context, id uuid.UUID, input builder.PlaceInput) (builder.MutationResult, error)
	ResetFunc         func(ctx context.Context, id uuid.UUID, input builder.ResetInput) (builder.MutationResult, error)
	SaveAsNewFunc     func(ctx context.Context, id uuid.UUID, input builder.SaveInput) (domain.SavedTeam, error)
	SetMetaFunc       func(ctx context.Context, id uuid.UUID, input builder.MetaInput) (builder.MutationResult, error)
	SetModeFunc       func(ctx context.Context, id uuid.UUID, input builder.ModeInput) (builder.MutationResult, error)
	ShareFunc         func(ctx context.Context, id uuid.UUID) (builder.ShareResult, error)
	SwapFunc          func(ctx context.Context, id uuid.UUID, input builder.SwapInput) (builder.MutationResult, error)

	calls struct {
		Clear []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input builder.ClearInput
		}
		Click []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input builder.ClickInput
		}
		CloseSession []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateSession []struct {
			Ctx   context.Context
			Input builder.CreateSessionInput
		}
		Drop []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input builder.DropInput
		}
		GetSession []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Import []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input builder.ImportInput
		}
		LoadTeam []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input builder.LoadInput
		}
		Place []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input builder.PlaceInput
		}
		Reset []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input builder.ResetInput
		}
		SaveAsNew []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input builder.SaveInput
		}
		SetMeta []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input builder.MetaInput
		}
		SetMode []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input builder.ModeInput
		}
		Share []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Swap []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input builder.SwapInput
		}
	}
	lockClear         sync.RWMutex
	lockClick         sync.RWMutex
	lockCloseSession  sync.RWMutex
	lockCreateSession sync.RWMutex
	lockDrop          sync.RWMutex
	lockGetSession    sync.RWMutex
	lockImport        sync.RWMutex
	lockLoadTeam      sync.RWMutex
	lockPlace         sync.RWMutex
	lockReset         sync.RWMutex
	lockSaveAsNew     sync.RWMutex
	lockSetMeta       sync.RWMutex
	lockSetMode       sync.RWMutex
	lockShare         sync.RWMutex
	lockSwap          sync.RWMutex
}

func (mock *builderServiceMock) Clear(ctx context.Context, id uuid.UUID, input builder.ClearInput) (builder.MutationResult, error) {
	if mock.ClearFunc == nil {
		panic("builderServiceMock.ClearFunc: method is nil but builderService.Clear was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input builder.ClearInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx, id, input)
}

func (mock *builderServiceMock) ClearCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input builder.ClearInput
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}

func (mock *builderServiceMock) Click(ctx context.Context, id uuid.UUID, input builder.ClickInput) (builder.MutationResult, error) {
	if mock.ClickFunc == nil {
		panic("builderServiceMock.ClickFunc: method is nil but builderService.Click was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input builder.ClickInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockClick.Lock()
	mock.calls.Click = append(mock.calls.Click, callInfo)
	mock.lockClick.Unlock()
	return mock.ClickFunc(ctx, id, input)
}

func (mock *builderServiceMock) ClickCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input builder.ClickInput
} {
	mock.lockClick.RLock()
	calls := mock.calls.Click
	mock.lockClick.RUnlock()
	return calls
}

func (mock *builderServiceMock) CloseSession(ctx context.Context, id uuid.UUID) error {
	if mock.CloseSessionFunc == nil {
		panic("builderServiceMock.CloseSessionFunc: method is nil but builderService.CloseSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockCloseSession.Lock()
	mock.calls.CloseSession = append(mock.calls.CloseSession, callInfo)
	mock.lockCloseSession.Unlock()
	return mock.CloseSessionFunc(ctx, id)
}

func (mock *builderServiceMock) CloseSessionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockCloseSession.RLock()
	calls := mock.calls.CloseSession
	mock.lockCloseSession.RUnlock()
	return calls
}

func (mock *builderServiceMock) CreateSession(ctx context.Context, input builder.CreateSessionInput) (builder.View, error) {
	if mock.CreateSessionFunc == nil {
		panic("builderServiceMock.CreateSessionFunc: method is nil but builderService.CreateSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input builder.CreateSessionInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateSession.Lock()
	mock.calls.CreateSession = append(mock.calls.CreateSession, callInfo)
	mock.lockCreateSession.Unlock()
	return mock.CreateSessionFunc(ctx, input)
}

func (mock *builderServiceMock) CreateSessionCalls() []struct {
	Ctx   context.Context
	Input builder.CreateSessionInput
} {
	mock.lockCreateSession.RLock()
	calls := mock.calls.CreateSession
	mock.lockCreateSession.RUnlock()
	return calls
}

func (mock *builderServiceMock) Drop(ctx context.Context, id uuid.UUID, input builder.DropInput) (builder.MutationResult, error) {
	if mock.DropFunc == nil {
		panic("builderServiceMock.DropFunc: method is nil but builderService.Drop was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input builder.DropInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockDrop.Lock()
	mock.calls.Drop = append(mock.calls.Drop, callInfo)
	mock.lockDrop.Unlock()
	return mock.DropFunc(ctx, id, input)
}

func (mock *builderServiceMock) DropCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input builder.DropInput
} {
	mock.lockDrop.RLock()
	calls := mock.calls.Drop
	mock.lockDrop.RUnlock()
	return calls
}

func (mock *builderServiceMock) GetSession(ctx context.Context, id uuid.UUID) (builder.View, error) {
	if mock.GetSessionFunc == nil {
		panic("builderServiceMock.GetSessionFunc: method is nil but builderService.GetSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetSession.Lock()
	mock.calls.GetSession = append(mock.calls.GetSession, callInfo)
	mock.lockGetSession.Unlock()
	return mock.GetSessionFunc(ctx, id)
}

func (mock *builderServiceMock) GetSessionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetSession.RLock()
	calls := mock.calls.GetSession
	mock.lockGetSession.RUnlock()
	return calls
}

func (mock *builderServiceMock) Import(ctx context.Context, id uuid.UUID, input builder.ImportInput) (builder.View, error) {
	if mock.ImportFunc == nil {
		panic("builderServiceMock.ImportFunc: method is nil but builderService.Import was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input builder.ImportInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, id, input)
}

func (mock *builderServiceMock) ImportCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input builder.ImportInput
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}

func (mock *builderServiceMock) LoadTeam(ctx context.Context, id uuid.UUID, input builder.LoadInput) (builder.View, error) {
	if mock.LoadTeamFunc == nil {
		panic("builderServiceMock.LoadTeamFunc: method is nil but builderService.LoadTeam was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input builder.LoadInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockLoadTeam.Lock()
	mock.calls.LoadTeam = append(mock.calls.LoadTeam, callInfo)
	mock.lockLoadTeam.Unlock()
	return mock.LoadTeamFunc(ctx, id, input)
}

func (mock *builderServiceMock) LoadTeamCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input builder.LoadInput
} {
	mock.lockLoadTeam.RLock()
	calls := mock.calls.LoadTeam
	mock.lockLoadTeam.RUnlock()
	return calls
}

func (mock *builderServiceMock) Place(ctx context.Context, id uuid.UUID, input builder.PlaceInput) (builder.MutationResult, error) {
	if mock.PlaceFunc == nil {
		panic("builderServiceMock.PlaceFunc: method is nil but builderService.Place was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input builder.PlaceInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockPlace.Lock()
	mock.calls.Place = append(mock.calls.Place, callInfo)
	mock.lockPlace.Unlock()
	return mock.PlaceFunc(ctx, id, input)
}

func (mock *builderServiceMock) PlaceCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input builder.PlaceInput
} {
	mock.lockPlace.RLock()
	calls := mock.calls.Place
	mock.lockPlace.RUnlock()
	return calls
}

func (mock *builderServiceMock) Reset(ctx context.Context, id uuid.UUID, input builder.ResetInput) (builder.MutationResult, error) {
	if mock.ResetFunc == nil {
		panic("builderServiceMock.ResetFunc: method is nil but builderService.Reset was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input builder.ResetInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, callInfo)
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx, id, input)
}

func (mock *builderServiceMock) ResetCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input builder.ResetInput
} {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
}

func (mock *builderServiceMock) SaveAsNew(ctx context.Context, id uuid.UUID, input builder.SaveInput) (domain.SavedTeam, error) {
	if mock.SaveAsNewFunc == nil {
		panic("builderServiceMock.SaveAsNewFunc: method is nil but builderService.SaveAsNew was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input builder.SaveInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockSaveAsNew.Lock()
	mock.calls.SaveAsNew = append(mock.calls.SaveAsNew, callInfo)
	mock.lockSaveAsNew.Unlock()
	return mock.SaveAsNewFunc(ctx, id, input)
}

func (mock *builderServiceMock) SaveAsNewCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input builder.SaveInput
} {
	mock.lockSaveAsNew.RLock()
	calls := mock.calls.SaveAsNew
	mock.lockSaveAsNew.RUnlock()
	return calls
}

func (mock *builderServiceMock) SetMeta(ctx context.Context, id uuid.UUID, input builder.MetaInput) (builder.MutationResult, error) {
	if mock.SetMetaFunc == nil {
		panic("builderServiceMock.SetMetaFunc: method is nil but builderService.SetMeta was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input builder.MetaInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockSetMeta.Lock()
	mock.calls.SetMeta = append(mock.calls.SetMeta, callInfo)
	mock.lockSetMeta.Unlock()
	return mock.SetMetaFunc(ctx, id, input)
}

func (mock *builderServiceMock) SetMetaCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input builder.MetaInput
} {
	mock.lockSetMeta.RLock()
	calls := mock.calls.SetMeta
	mock.lockSetMeta.RUnlock()
	return calls
}

func (mock *builderServiceMock) SetMode(ctx context.Context, id uuid.UUID, input builder.ModeInput) (builder.MutationResult, error) {
	if mock.SetModeFunc == nil {
		panic("builderServiceMock.SetModeFunc: method is nil but builderService.SetMode was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input builder.ModeInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockSetMode.Lock()
	mock.calls.SetMode = append(mock.calls.SetMode, callInfo)
	mock.lockSetMode.Unlock()
	return mock.SetModeFunc(ctx, id, input)
}

func (mock *builderServiceMock) SetModeCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input builder.ModeInput
} {
	mock.lockSetMode.RLock()
	calls := mock.calls.SetMode
	mock.lockSetMode.RUnlock()
	return calls
}

func (mock *builderServiceMock) Share(ctx context.Context, id uuid.UUID) (builder.ShareResult, error) {
	if mock.ShareFunc == nil {
		panic("builderServiceMock.ShareFunc: method is nil but builderService.Share was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockShare.Lock()
	mock.calls.Share = append(mock.calls.Share, callInfo)
	mock.lockShare.Unlock()
	return mock.ShareFunc(ctx, id)
}

func (mock *builderServiceMock) ShareCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockShare.RLock()
	calls := mock.calls.Share
	mock.lockShare.RUnlock()
	return calls
}

func (mock *builderServiceMock) Swap(ctx context.Context, id uuid.UUID, input builder.SwapInput) (builder.MutationResult, error) {
	if mock.SwapFunc == nil {
		panic("builderServiceMock.SwapFunc: method is nil but builderService.Swap was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input builder.SwapInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockSwap.Lock()
	mock.calls.Swap = append(mock.calls.Swap, callInfo)
	mock.lockSwap.Unlock()
	return mock.SwapFunc(ctx, id, input)
}

func (mock *builderServiceMock) SwapCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input builder.SwapInput
} {
	mock.lockSwap.RLock()
	calls := mock.calls.Swap
	mock.lockSwap.RUnlock()
	return calls
}
