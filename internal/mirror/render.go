// Package mirror derives the view tree of a layout and keeps every
// presentation target (the main view, the compact mirror, websocket
// clients) in step with the engine.
package mirror

import (
	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/gesture"
	"github.com/heartmarshall/teambuilder/internal/layout"
)

type entityCatalog interface {
	Character(id string) (domain.Character, bool)
	Psychube(id string) (domain.Psychube, bool)
}

// ViewTree is the presentation of one layout. It carries no visibility
// state; whether the mirror is on screen is the client's concern.
type ViewTree struct {
	Revision    uint64      `json:"revision"`
	Mode        domain.Mode `json:"mode"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Empty       bool        `json:"empty"`
	Groups      []GroupView `json:"groups"`
}

// GroupView is one party row.
type GroupView struct {
	Label string     `json:"label,omitempty"`
	Units []UnitView `json:"units"`
}

// UnitView is the co-located character and psychube slot at one index.
type UnitView struct {
	Index     int      `json:"index"`
	Character SlotView `json:"character"`
	Psychube  SlotView `json:"psychube"`
}

// SlotView is a filled card or a placeholder.
type SlotView struct {
	NodeID      string            `json:"node_id"`
	Kind        domain.SlotKind   `json:"kind"`
	Filled      bool              `json:"filled"`
	Placeholder string            `json:"placeholder,omitempty"`
	EntityID    string            `json:"entity_id,omitempty"`
	Name        string            `json:"name,omitempty"`
	Rarity      int               `json:"rarity,omitempty"`
	Attribute   domain.Attribute  `json:"attribute,omitempty"`
	DamageType  domain.DamageType `json:"damage_type,omitempty"`
	// Missing marks an occupant the catalog no longer has, e.g. after a reload.
	Missing bool `json:"missing,omitempty"`
}

const psychubePlaceholder = "Psychube"

// Render derives the view tree of l. It is pure: the same layout and
// catalog always produce the same tree.
func Render(l domain.Layout, catalog entityCatalog) ViewTree {
	topo := layout.Generate(l.Mode)
	slots := topo.Normalize(l.Slots)

	tree := ViewTree{
		Mode:        topo.Mode,
		Name:        l.Name,
		Description: l.Description,
		Empty:       l.IsEmpty(),
		Groups:      make([]GroupView, len(topo.Groups)),
	}

	for g, group := range topo.Groups {
		units := make([]UnitView, topo.SlotsPerGroup)
		for j := range units {
			idx := group.Start + j
			units[j] = UnitView{
				Index:     idx,
				Character: characterView(idx, slots[idx].Character, topo, catalog),
				Psychube:  psychubeView(idx, slots[idx].Psychube, catalog),
			}
		}
		tree.Groups[g] = GroupView{Label: group.Label, Units: units}
	}
	return tree
}

func characterView(idx int, id string, topo layout.Topology, catalog entityCatalog) SlotView {
	v := SlotView{
		NodeID: gesture.SlotNodeID(idx, domain.SlotKindCharacter),
		Kind:   domain.SlotKindCharacter,
	}
	if id == "" {
		v.Placeholder = topo.Placeholder(idx)
		return v
	}

	v.Filled = true
	v.EntityID = id
	c, ok := catalog.Character(id)
	if !ok {
		v.Missing = true
		return v
	}
	v.Name = c.Name
	v.Rarity = c.Rarity
	v.Attribute = c.Attribute
	v.DamageType = c.DamageType
	return v
}

func psychubeView(idx int, id string, catalog entityCatalog) SlotView {
	v := SlotView{
		NodeID: gesture.SlotNodeID(idx, domain.SlotKindPsychube),
		Kind:   domain.SlotKindPsychube,
	}
	if id == "" {
		v.Placeholder = psychubePlaceholder
		return v
	}

	v.Filled = true
	v.EntityID = id
	p, ok := catalog.Psychube(id)
	if !ok {
		v.Missing = true
		return v
	}
	v.Name = p.Name
	v.Rarity = p.Rarity
	return v
}
