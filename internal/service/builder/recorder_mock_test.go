package builder

import (
	"context"
	"sync"

	"github.com/heartmarshall/teambuilder/internal/autosave"
	"github.com/heartmarshall/teambuilder/internal/engine"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	AutosaveDoneFunc  func(ctx context.Context, outcome autosave.Outcome, err error)
	LayoutChangedFunc func(ctx context.Context, reason engine.Reason)
	ShareDecodedFunc  func(ctx context.Context, err error)

	calls struct {
		AutosaveDone []struct {
			Ctx     context.Context
			Outcome autosave.Outcome
			Err     error
		}
		LayoutChanged []struct {
			Ctx    context.Context
			Reason engine.Reason
		}
		ShareDecoded []struct {
			Ctx context.Context
			Err error
		}
	}
	lockAutosaveDone  sync.RWMutex
	lockLayoutChanged sync.RWMutex
	lockShareDecoded  sync.RWMutex
}

func (mock *recorderMock) AutosaveDone(ctx context.Context, outcome autosave.Outcome, err error) {
	if mock.AutosaveDoneFunc == nil {
		panic("recorderMock.AutosaveDoneFunc: method is nil but recorder.AutosaveDone was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Outcome autosave.Outcome
		Err     error
	}{Ctx: ctx, Outcome: outcome, Err: err}
	mock.lockAutosaveDone.Lock()
	mock.calls.AutosaveDone = append(mock.calls.AutosaveDone, callInfo)
	mock.lockAutosaveDone.Unlock()
	mock.AutosaveDoneFunc(ctx, outcome, err)
}

func (mock *recorderMock) AutosaveDoneCalls() []struct {
	Ctx     context.Context
	Outcome autosave.Outcome
	Err     error
} {
	mock.lockAutosaveDone.RLock()
	calls := mock.calls.AutosaveDone
	mock.lockAutosaveDone.RUnlock()
	return calls
}

func (mock *recorderMock) LayoutChanged(ctx context.Context, reason engine.Reason) {
	if mock.LayoutChangedFunc == nil {
		panic("recorderMock.LayoutChangedFunc: method is nil but recorder.LayoutChanged was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Reason engine.Reason
	}{Ctx: ctx, Reason: reason}
	mock.lockLayoutChanged.Lock()
	mock.calls.LayoutChanged = append(mock.calls.LayoutChanged, callInfo)
	mock.lockLayoutChanged.Unlock()
	mock.LayoutChangedFunc(ctx, reason)
}

func (mock *recorderMock) LayoutChangedCalls() []struct {
	Ctx    context.Context
	Reason engine.Reason
} {
	mock.lockLayoutChanged.RLock()
	calls := mock.calls.LayoutChanged
	mock.lockLayoutChanged.RUnlock()
	return calls
}

func (mock *recorderMock) ShareDecoded(ctx context.Context, err error) {
	if mock.ShareDecodedFunc == nil {
		panic("recorderMock.ShareDecodedFunc: method is nil but recorder.ShareDecoded was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Err error
	}{Ctx: ctx, Err: err}
	mock.lockShareDecoded.Lock()
	mock.calls.ShareDecoded = append(mock.calls.ShareDecoded, callInfo)
	mock.lockShareDecoded.Unlock()
	mock.ShareDecodedFunc(ctx, err)
}

func (mock *recorderMock) ShareDecodedCalls() []struct {
	Ctx context.Context
	Err error
} {
	mock.lockShareDecoded.RLock()
	calls := mock.calls.ShareDecoded
	mock.lockShareDecoded.RUnlock()
	return calls
}
