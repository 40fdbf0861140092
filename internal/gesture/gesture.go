// Package gesture translates pointer gestures captured by a client into
// the engine's named operations. It knows nothing about how the gesture
// was performed; the engine knows nothing about gestures.
package gesture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

// Ref addresses either a catalog entity (the source of a drag from the
// list) or one slot of the layout.
type Ref struct {
	Entity string
	Index  int
	Kind   domain.SlotKind
}

// EntityRef refers to a catalog entry.
func EntityRef(id string) Ref { return Ref{Entity: id, Index: -1} }

// SlotRef refers to the kind slot at index.
func SlotRef(index int, kind domain.SlotKind) Ref { return Ref{Index: index, Kind: kind} }

// IsEntity reports whether r refers to a catalog entry.
func (r Ref) IsEntity() bool { return r.Entity != "" }

const (
	slotPrefix   = "slot-"
	entityPrefix = "entity-"
)

// NodeID is the stable view-node id for r: "slot-<index>-<kind>" or
// "entity-<id>".
func (r Ref) NodeID() string {
	if r.IsEntity() {
		return entityPrefix + r.Entity
	}
	return SlotNodeID(r.Index, r.Kind)
}

// SlotNodeID formats the view-node id of a slot.
func SlotNodeID(index int, kind domain.SlotKind) string {
	return slotPrefix + strconv.Itoa(index) + "-" + string(kind)
}

// ParseNodeID resolves a view-node id back to a Ref.
func ParseNodeID(id string) (Ref, error) {
	switch {
	case strings.HasPrefix(id, entityPrefix):
		entity := strings.TrimPrefix(id, entityPrefix)
		if entity == "" {
			return Ref{}, fmt.Errorf("node %q: empty entity id", id)
		}
		return EntityRef(entity), nil
	case strings.HasPrefix(id, slotPrefix):
		rest := strings.TrimPrefix(id, slotPrefix)
		idx, kind, ok := strings.Cut(rest, "-")
		if !ok {
			return Ref{}, fmt.Errorf("node %q: missing slot kind", id)
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 {
			return Ref{}, fmt.Errorf("node %q: bad slot index", id)
		}
		k := domain.SlotKind(kind)
		if !k.IsValid() {
			return Ref{}, fmt.Errorf("node %q: unknown slot kind %q", id, kind)
		}
		return SlotRef(n, k), nil
	}
	return Ref{}, fmt.Errorf("node %q: unknown node type", id)
}
