package domain

import "strings"

// Mode selects the layout shape of a team: how many parties of four slots it has.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeDual   Mode = "dual"
	ModeQuad   Mode = "quad"
)

// legacyModes maps mode names written by older share links to current modes.
var legacyModes = map[string]Mode{
	"mode1":    ModeSingle,
	"limbo":    ModeDual,
	"4parties": ModeQuad,
}

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	switch m {
	case ModeSingle, ModeDual, ModeQuad:
		return true
	}
	return false
}

// ParseMode resolves a wire value (current or legacy) to a Mode.
// The second result is false when the value is not recognised; callers that
// must fail closed use the returned ModeSingle.
func ParseMode(s string) (Mode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if m := Mode(s); m.IsValid() {
		return m, true
	}
	if m, ok := legacyModes[s]; ok {
		return m, true
	}
	return ModeSingle, false
}

// SlotKind distinguishes the two slots of a slot unit.
type SlotKind string

const (
	SlotKindCharacter SlotKind = "character"
	SlotKindPsychube  SlotKind = "psychube"
)

func (k SlotKind) String() string { return string(k) }

func (k SlotKind) IsValid() bool {
	switch k {
	case SlotKindCharacter, SlotKindPsychube:
		return true
	}
	return false
}

// Attribute is the afflatus of a character.
type Attribute string

const (
	AttributeBeast     Attribute = "Beast"
	AttributeIntellect Attribute = "Intellect"
	AttributeMineral   Attribute = "Mineral"
	AttributePlant     Attribute = "Plant"
	AttributeSpirit    Attribute = "Spirit"
	AttributeStar      Attribute = "Star"
)

func (a Attribute) String() string { return string(a) }

func (a Attribute) IsValid() bool {
	switch a {
	case AttributeBeast, AttributeIntellect, AttributeMineral,
		AttributePlant, AttributeSpirit, AttributeStar:
		return true
	}
	return false
}

// DamageType is the damage a character deals.
type DamageType string

const (
	DamageTypeReality DamageType = "Reality"
	DamageTypeMental  DamageType = "Mental"
)

func (d DamageType) String() string { return string(d) }

func (d DamageType) IsValid() bool {
	switch d {
	case DamageTypeReality, DamageTypeMental:
		return true
	}
	return false
}

// SortOrder is the ordering applied to catalog listings.
type SortOrder string

const (
	SortDefault     SortOrder = "default"
	SortIDDesc      SortOrder = "id-desc"
	SortIDAsc       SortOrder = "id-asc"
	SortRarityDesc  SortOrder = "rarity-desc"
	SortRarityAsc   SortOrder = "rarity-asc"
	SortVersionDesc SortOrder = "version-desc"
	SortVersionAsc  SortOrder = "version-asc"
)

func (s SortOrder) String() string { return string(s) }

func (s SortOrder) IsValid() bool {
	switch s {
	case SortDefault, SortIDDesc, SortIDAsc, SortRarityDesc, SortRarityAsc, SortVersionDesc, SortVersionAsc:
		return true
	}
	return false
}
