package engine

import (
	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/layout"
)

// SetMode switches the topology and empties every slot. Name and
// description survive. Placements are dropped without confirmation.
func (e *Engine) SetMode(mode domain.Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.topo = layout.Generate(mode)
	e.state.Layout.Mode = e.topo.Mode
	e.state.Layout.Slots = e.topo.EmptySlots()
	e.notify(ReasonMode)
}

// Place puts entityID into the kind slot at index, replacing any occupant.
// It reports false and changes nothing when the index is out of range or
// the id is not an entity of that kind.
func (e *Engine) Place(index int, kind domain.SlotKind, entityID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.topo.InRange(index) || !kind.IsValid() || entityID == "" {
		return false
	}
	if !e.catalog.Has(kind, entityID) {
		return false
	}

	e.state.Layout.Slots[index] = e.state.Layout.Slots[index].With(kind, entityID)
	e.notify(ReasonPlace)
	return true
}

// Clear empties the kind slot at index. Clearing an empty slot is a no-op.
func (e *Engine) Clear(index int, kind domain.SlotKind) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.topo.InRange(index) || !kind.IsValid() {
		return false
	}
	if e.state.Layout.Slots[index].Get(kind) == "" {
		return false
	}

	e.state.Layout.Slots[index] = e.state.Layout.Slots[index].With(kind, "")
	e.notify(ReasonClear)
	return true
}

// Swap exchanges the occupants of (src, srcKind) and (dst, dstKind). When
// one side is empty the occupant moves and its old slot is left empty, so
// swapping the same pair twice restores the layout. Cross-kind swaps,
// same-slot swaps and swaps between two empty slots are ignored. Listeners
// see one change for both writes.
func (e *Engine) Swap(src int, srcKind domain.SlotKind, dst int, dstKind domain.SlotKind) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if srcKind != dstKind || !srcKind.IsValid() {
		return false
	}
	if !e.topo.InRange(src) || !e.topo.InRange(dst) || src == dst {
		return false
	}

	slots := e.state.Layout.Slots
	moving := slots[src].Get(srcKind)
	target := slots[dst].Get(dstKind)
	if moving == "" && target == "" {
		return false
	}

	slots[dst] = slots[dst].With(dstKind, moving)
	slots[src] = slots[src].With(srcKind, target)
	e.notify(ReasonSwap)
	return true
}

// LoadLayout replaces the whole session state in one step: mode, every
// slot, name and description. Ids the catalog does not know are skipped
// and leave their slot empty. loadedID is "" for layouts that do not come
// from a saved record.
func (e *Engine) LoadLayout(l domain.Layout, loadedID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.topo = layout.Generate(l.Mode)
	slots := e.topo.Normalize(l.Slots)
	for i, u := range slots {
		if u.Character != "" && !e.catalog.Has(domain.SlotKindCharacter, u.Character) {
			slots[i].Character = ""
		}
		if u.Psychube != "" && !e.catalog.Has(domain.SlotKindPsychube, u.Psychube) {
			slots[i].Psychube = ""
		}
	}

	e.state = State{
		Layout: domain.Layout{
			Mode:        e.topo.Mode,
			Slots:       slots,
			Name:        l.Name,
			Description: l.Description,
		},
		LoadedID: loadedID,
	}
	e.notify(ReasonLoad)
}

// ClearAll empties every slot, drops the name and description and detaches
// the layout from any saved record. The mode is kept.
func (e *Engine) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = State{
		Layout: domain.Layout{Mode: e.topo.Mode, Slots: e.topo.EmptySlots()},
	}
	e.notify(ReasonClearAll)
}

// SetMeta edits the layout's name and description.
func (e *Engine) SetMeta(name, description string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Layout.Name = name
	e.state.Layout.Description = description
	e.notify(ReasonMeta)
}
