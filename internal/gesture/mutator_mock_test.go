package gesture

import (
	"sync"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

var _ mutator = &mutatorMock{}

type mutatorMock struct {
	ClearFunc    func(index int, kind domain.SlotKind) bool
	OccupantFunc func(index int, kind domain.SlotKind) string
	PlaceFunc    func(index int, kind domain.SlotKind, entityID string) bool
	SwapFunc     func(src int, srcKind domain.SlotKind, dst int, dstKind domain.SlotKind) bool

	calls struct {
		Clear []struct {
			Index int
			Kind  domain.SlotKind
		}
		Occupant []struct {
			Index int
			Kind  domain.SlotKind
		}
		Place []struct {
			Index    int
			Kind     domain.SlotKind
			EntityID string
		}
		Swap []struct {
			Src     int
			SrcKind domain.SlotKind
			Dst     int
			DstKind domain.SlotKind
		}
	}
	lockClear    sync.RWMutex
	lockOccupant sync.RWMutex
	lockPlace    sync.RWMutex
	lockSwap     sync.RWMutex
}

func (mock *mutatorMock) Clear(index int, kind domain.SlotKind) bool {
	if mock.ClearFunc == nil {
		panic("mutatorMock.ClearFunc: method is nil but mutator.Clear was just called")
	}
	callInfo := struct {
		Index int
		Kind  domain.SlotKind
	}{Index: index, Kind: kind}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(index, kind)
}

func (mock *mutatorMock) ClearCalls() []struct {
	Index int
	Kind  domain.SlotKind
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}

func (mock *mutatorMock) Occupant(index int, kind domain.SlotKind) string {
	if mock.OccupantFunc == nil {
		panic("mutatorMock.OccupantFunc: method is nil but mutator.Occupant was just called")
	}
	callInfo := struct {
		Index int
		Kind  domain.SlotKind
	}{Index: index, Kind: kind}
	mock.lockOccupant.Lock()
	mock.calls.Occupant = append(mock.calls.Occupant, callInfo)
	mock.lockOccupant.Unlock()
	return mock.OccupantFunc(index, kind)
}

func (mock *mutatorMock) OccupantCalls() []struct {
	Index int
	Kind  domain.SlotKind
} {
	mock.lockOccupant.RLock()
	calls := mock.calls.Occupant
	mock.lockOccupant.RUnlock()
	return calls
}

func (mock *mutatorMock) Place(index int, kind domain.SlotKind, entityID string) bool {
	if mock.PlaceFunc == nil {
		panic("mutatorMock.PlaceFunc: method is nil but mutator.Place was just called")
	}
	callInfo := struct {
		Index    int
		Kind     domain.SlotKind
		EntityID string
	}{Index: index, Kind: kind, EntityID: entityID}
	mock.lockPlace.Lock()
	mock.calls.Place = append(mock.calls.Place, callInfo)
	mock.lockPlace.Unlock()
	return mock.PlaceFunc(index, kind, entityID)
}

func (mock *mutatorMock) PlaceCalls() []struct {
	Index    int
	Kind     domain.SlotKind
	EntityID string
} {
	mock.lockPlace.RLock()
	calls := mock.calls.Place
	mock.lockPlace.RUnlock()
	return calls
}

func (mock *mutatorMock) Swap(src int, srcKind domain.SlotKind, dst int, dstKind domain.SlotKind) bool {
	if mock.SwapFunc == nil {
		panic("mutatorMock.SwapFunc: method is nil but mutator.Swap was just called")
	}
	callInfo := struct {
		Src     int
		SrcKind domain.SlotKind
		Dst     int
		DstKind domain.SlotKind
	}{Src: src, SrcKind: srcKind, Dst: dst, DstKind: dstKind}
	mock.lockSwap.Lock()
	mock.calls.Swap = append(mock.calls.Swap, callInfo)
	mock.lockSwap.Unlock()
	return mock.SwapFunc(src, srcKind, dst, dstKind)
}

func (mock *mutatorMock) SwapCalls() []struct {
	Src     int
	SrcKind domain.SlotKind
	Dst     int
	DstKind domain.SlotKind
} {
	mock.lockSwap.RLock()
	calls := mock.calls.Swap
	mock.lockSwap.RUnlock()
	return calls
}
