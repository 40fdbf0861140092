// Package engine owns the live team layout of one builder session and
// applies every placement mutation to it.
//
// All operations are serialised by one mutex and run to completion before
// the next is accepted. Listeners are invoked synchronously inside the
// mutating operation, so anything derived from the layout (the mirror view,
// the autosave timer) is updated before the caller observes the result.
package engine

import (
	"sync"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/layout"
)

// entityLookup is the part of the catalog the engine needs.
type entityLookup interface {
	Has(kind domain.SlotKind, id string) bool
}

// Reason names the operation that produced a Change.
type Reason string

const (
	ReasonMode     Reason = "mode"
	ReasonPlace    Reason = "place"
	ReasonClear    Reason = "clear"
	ReasonSwap     Reason = "swap"
	ReasonLoad     Reason = "load"
	ReasonClearAll Reason = "clear_all"
	ReasonMeta     Reason = "meta"
)

// Change is delivered to listeners after every successful mutation.
// Layout is a private copy; listeners may keep it.
type Change struct {
	Reason   Reason
	Layout   domain.Layout
	LoadedID string
}

// State is the complete session state held by the engine.
type State struct {
	Layout   domain.Layout
	LoadedID string // id of the saved record the layout came from, "" if none
}

// Engine is the slot assembly engine. The zero value is not usable; use New.
type Engine struct {
	catalog entityLookup

	mu        sync.Mutex
	topo      layout.Topology
	state     State
	listeners map[int]func(Change)
	nextID    int
}

// New returns an engine holding an empty single-party layout.
func New(catalog entityLookup) *Engine {
	topo := layout.Generate(domain.ModeSingle)
	return &Engine{
		catalog: catalog,
		topo:    topo,
		state: State{
			Layout: domain.Layout{Mode: topo.Mode, Slots: topo.EmptySlots()},
		},
		listeners: make(map[int]func(Change)),
	}
}

// Subscribe registers fn for every change and returns a function that
// removes it. fn runs with the engine locked and must not call back into
// the engine.
func (e *Engine) Subscribe(fn func(Change)) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.listeners[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners, id)
	}
}

// notify must be called with e.mu held.
func (e *Engine) notify(reason Reason) {
	if len(e.listeners) == 0 {
		return
	}
	ch := Change{
		Reason:   reason,
		Layout:   e.state.Layout.Clone(),
		LoadedID: e.state.LoadedID,
	}
	for id := 0; id < e.nextID; id++ {
		if fn, ok := e.listeners[id]; ok {
			fn(ch)
		}
	}
}

// Mode returns the current mode.
func (e *Engine) Mode() domain.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Layout.Mode
}

// Occupant returns the id in the kind slot at index, or "" when the slot is
// empty or out of range.
func (e *Engine) Occupant(index int, kind domain.SlotKind) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.topo.InRange(index) {
		return ""
	}
	return e.state.Layout.Slots[index].Get(kind)
}

// Snapshot returns a copy of the live layout.
func (e *Engine) Snapshot() domain.Layout {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Layout.Clone()
}

// State returns a copy of the layout together with the loaded record id,
// read atomically.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{Layout: e.state.Layout.Clone(), LoadedID: e.state.LoadedID}
}

// LoadedID returns the id of the saved record being edited, or "".
func (e *Engine) LoadedID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.LoadedID
}

// SetLoadedID marks the layout as belonging to a saved record. It does not notify.
func (e *Engine) SetLoadedID(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.LoadedID = id
}

// Export returns a copy of the layout, or nil when every slot is empty.
func (e *Engine) Export() *domain.Layout {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Layout.IsEmpty() {
		return nil
	}
	l := e.state.Layout.Clone()
	return &l
}
