// Package layout maps a team mode to its slot topology: how many parties,
// which labels they carry, and which flat slot indexes belong to each.
package layout

import (
	"fmt"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

// Group is one party row of the topology.
type Group struct {
	Label string // empty for the single-party mode
	Start int    // flat index of the first slot in the group
}

// Topology is the slot shape produced for a mode.
type Topology struct {
	Mode          domain.Mode
	Groups        []Group
	SlotsPerGroup int
}

var labels = map[domain.Mode][]string{
	domain.ModeSingle: {""},
	domain.ModeDual:   {"Party A", "Party B"},
	domain.ModeQuad:   {"Party 1", "Party 2", "Party 3", "Party 4"},
}

// Generate returns the topology for mode. Unrecognised modes fail closed to
// the single-party topology.
func Generate(mode domain.Mode) Topology {
	names, ok := labels[mode]
	if !ok {
		mode = domain.ModeSingle
		names = labels[mode]
	}

	groups := make([]Group, len(names))
	for i, label := range names {
		groups[i] = Group{Label: label, Start: i * domain.SlotsPerParty}
	}

	return Topology{
		Mode:          mode,
		Groups:        groups,
		SlotsPerGroup: domain.SlotsPerParty,
	}
}

// TotalSlots returns the number of slot units in mode's topology.
func TotalSlots(mode domain.Mode) int {
	return Generate(mode).TotalSlots()
}

// TotalSlots returns groups × slots-per-group.
func (t Topology) TotalSlots() int {
	return len(t.Groups) * t.SlotsPerGroup
}

// InRange reports whether index addresses a slot unit of the topology.
func (t Topology) InRange(index int) bool {
	return index >= 0 && index < t.TotalSlots()
}

// GroupOf returns the group index holding the flat slot index.
func (t Topology) GroupOf(index int) int {
	return index / t.SlotsPerGroup
}

// Placeholder is the caption shown in an empty character slot ("Slot 1".."Slot 4").
func (t Topology) Placeholder(index int) string {
	return fmt.Sprintf("Slot %d", index%t.SlotsPerGroup+1)
}

// EmptySlots allocates an all-empty slot sequence for the topology.
func (t Topology) EmptySlots() []domain.SlotUnit {
	return make([]domain.SlotUnit, t.TotalSlots())
}

// Normalize returns slots resized to the topology: extra units are dropped,
// missing units are appended empty.
func (t Topology) Normalize(slots []domain.SlotUnit) []domain.SlotUnit {
	out := t.EmptySlots()
	copy(out, slots)
	return out
}
