package gesture

import "github.com/heartmarshall/teambuilder/internal/domain"

type mutator interface {
	Place(index int, kind domain.SlotKind, entityID string) bool
	Clear(index int, kind domain.SlotKind) bool
	Swap(src int, srcKind domain.SlotKind, dst int, dstKind domain.SlotKind) bool
	Occupant(index int, kind domain.SlotKind) string
}

type kindResolver interface {
	KindOf(id string) (domain.SlotKind, bool)
}

// Action is the engine operation a gesture was translated into.
type Action string

const (
	ActionNone  Action = "none"
	ActionPlace Action = "place"
	ActionSwap  Action = "swap"
	ActionClear Action = "clear"
)

// Result reports what a gesture did. Applied is false when the gesture was
// recognised but the engine ignored it.
type Result struct {
	Action  Action
	Applied bool
}

var ignored = Result{Action: ActionNone}

// Translator turns drops and clicks into engine operations.
type Translator struct {
	engine  mutator
	catalog kindResolver
}

func NewTranslator(engine mutator, catalog kindResolver) *Translator {
	return &Translator{engine: engine, catalog: catalog}
}

// Drop handles a drag from source released over target. A catalog entry
// dropped on a slot is placed there if the slot is of the entry's kind.
// A slot dropped on another slot is swapped; an empty slot cannot be
// dragged.
func (t *Translator) Drop(source, target Ref) Result {
	if target.IsEntity() {
		return ignored
	}

	if source.IsEntity() {
		kind, ok := t.catalog.KindOf(source.Entity)
		if !ok || kind != target.Kind {
			return ignored
		}
		return Result{Action: ActionPlace, Applied: t.engine.Place(target.Index, target.Kind, source.Entity)}
	}

	if t.engine.Occupant(source.Index, source.Kind) == "" {
		return ignored
	}
	return Result{Action: ActionSwap, Applied: t.engine.Swap(source.Index, source.Kind, target.Index, target.Kind)}
}

// Click on a filled slot clears it. Clicks anywhere else do nothing.
func (t *Translator) Click(target Ref) Result {
	if target.IsEntity() {
		return ignored
	}
	return Result{Action: ActionClear, Applied: t.engine.Clear(target.Index, target.Kind)}
}
