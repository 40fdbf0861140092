package domain

// SlotsPerParty is the number of slot units in one party row.
const SlotsPerParty = 4

// SlotUnit is the pair of co-located slots at one flat index.
// An empty string means the slot is empty.
type SlotUnit struct {
	Character string
	Psychube  string
}

// IsEmpty reports whether both slots of the unit are empty.
func (u SlotUnit) IsEmpty() bool {
	return u.Character == "" && u.Psychube == ""
}

// Get returns the occupant of the slot of the given kind.
func (u SlotUnit) Get(kind SlotKind) string {
	if kind == SlotKindPsychube {
		return u.Psychube
	}
	return u.Character
}

// With returns a copy of the unit with the slot of the given kind set to id.
func (u SlotUnit) With(kind SlotKind, id string) SlotUnit {
	if kind == SlotKindPsychube {
		u.Psychube = id
	} else {
		u.Character = id
	}
	return u
}

// Layout is an assembled team: the placement state for one mode.
type Layout struct {
	Mode        Mode
	Slots       []SlotUnit
	Name        string
	Description string
}

// IsEmpty reports whether every slot of every kind is empty.
func (l Layout) IsEmpty() bool {
	for _, u := range l.Slots {
		if !u.IsEmpty() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	out := l
	out.Slots = append([]SlotUnit(nil), l.Slots...)
	return out
}

// Teams groups the flat slot sequence into parties of SlotsPerParty.
// A trailing partial party is kept as is.
func (l Layout) Teams() [][]SlotUnit {
	teams := make([][]SlotUnit, 0, (len(l.Slots)+SlotsPerParty-1)/SlotsPerParty)
	for i := 0; i < len(l.Slots); i += SlotsPerParty {
		end := min(i+SlotsPerParty, len(l.Slots))
		teams = append(teams, append([]SlotUnit(nil), l.Slots[i:end]...))
	}
	return teams
}

// FlattenTeams concatenates party groups into a flat slot sequence.
func FlattenTeams(teams [][]SlotUnit) []SlotUnit {
	var n int
	for _, t := range teams {
		n += len(t)
	}
	flat := make([]SlotUnit, 0, n)
	for _, t := range teams {
		flat = append(flat, t...)
	}
	return flat
}

// SavedTeam is a named, persisted layout snapshot.
type SavedTeam struct {
	ID          string
	Name        string
	Description string
	Mode        Mode
	Teams       [][]SlotUnit
}

// Layout converts the record into a live layout shape (without normalising slot count).
func (t SavedTeam) Layout() Layout {
	return Layout{
		Mode:        t.Mode,
		Slots:       FlattenTeams(t.Teams),
		Name:        t.Name,
		Description: t.Description,
	}
}
