// Package catalog holds the loaded character and psychube lists and answers
// lookups, filtered listings, and facet queries over them.
//
// The store is read-only between loads. A reload (see Watcher) swaps the whole
// snapshot atomically, so readers never observe a half-replaced catalog.
package catalog

import (
	"slices"
	"sync/atomic"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

type snapshot struct {
	characters  []domain.Character
	psychubes   []domain.Psychube
	characterIx map[string]int
	psychubeIx  map[string]int
}

// Store is the in-memory catalog.
type Store struct {
	snap atomic.Pointer[snapshot]
}

// NewStore builds a store from the given lists. Entries with an empty id are
// dropped; for duplicate ids the first entry wins.
func NewStore(characters []domain.Character, psychubes []domain.Psychube) *Store {
	s := &Store{}
	s.Replace(characters, psychubes)
	return s
}

// Replace atomically swaps the catalog contents.
func (s *Store) Replace(characters []domain.Character, psychubes []domain.Psychube) {
	snap := &snapshot{
		characters:  make([]domain.Character, 0, len(characters)),
		psychubes:   make([]domain.Psychube, 0, len(psychubes)),
		characterIx: make(map[string]int, len(characters)),
		psychubeIx:  make(map[string]int, len(psychubes)),
	}
	for _, c := range characters {
		if c.ID == "" {
			continue
		}
		if _, dup := snap.characterIx[c.ID]; dup {
			continue
		}
		snap.characterIx[c.ID] = len(snap.characters)
		snap.characters = append(snap.characters, c)
	}
	for _, p := range psychubes {
		if p.ID == "" {
			continue
		}
		if _, dup := snap.psychubeIx[p.ID]; dup {
			continue
		}
		snap.psychubeIx[p.ID] = len(snap.psychubes)
		snap.psychubes = append(snap.psychubes, p)
	}
	s.snap.Store(snap)
}

func (s *Store) load() *snapshot {
	if snap := s.snap.Load(); snap != nil {
		return snap
	}
	return &snapshot{}
}

// Character returns the character with the given id.
func (s *Store) Character(id string) (domain.Character, bool) {
	snap := s.load()
	i, ok := snap.characterIx[id]
	if !ok {
		return domain.Character{}, false
	}
	return snap.characters[i], true
}

// Psychube returns the psychube with the given id.
func (s *Store) Psychube(id string) (domain.Psychube, bool) {
	snap := s.load()
	i, ok := snap.psychubeIx[id]
	if !ok {
		return domain.Psychube{}, false
	}
	return snap.psychubes[i], true
}

// CharactersByIDs returns the characters with the given ids, in id order,
// from one snapshot. Unknown ids are skipped.
func (s *Store) CharactersByIDs(ids []string) []domain.Character {
	snap := s.load()
	out := make([]domain.Character, 0, len(ids))
	for _, id := range ids {
		if i, ok := snap.characterIx[id]; ok {
			out = append(out, snap.characters[i])
		}
	}
	return out
}

// PsychubesByIDs is CharactersByIDs for psychubes.
func (s *Store) PsychubesByIDs(ids []string) []domain.Psychube {
	snap := s.load()
	out := make([]domain.Psychube, 0, len(ids))
	for _, id := range ids {
		if i, ok := snap.psychubeIx[id]; ok {
			out = append(out, snap.psychubes[i])
		}
	}
	return out
}

// Has reports whether id exists in the list matching kind.
func (s *Store) Has(kind domain.SlotKind, id string) bool {
	snap := s.load()
	switch kind {
	case domain.SlotKindCharacter:
		_, ok := snap.characterIx[id]
		return ok
	case domain.SlotKindPsychube:
		_, ok := snap.psychubeIx[id]
		return ok
	}
	return false
}

// KindOf resolves which list an id belongs to. Characters are checked first.
func (s *Store) KindOf(id string) (domain.SlotKind, bool) {
	snap := s.load()
	if _, ok := snap.characterIx[id]; ok {
		return domain.SlotKindCharacter, true
	}
	if _, ok := snap.psychubeIx[id]; ok {
		return domain.SlotKindPsychube, true
	}
	return "", false
}

// Counts returns the number of characters and psychubes loaded.
func (s *Store) Counts() (characters, psychubes int) {
	snap := s.load()
	return len(snap.characters), len(snap.psychubes)
}

// Facets lists the distinct filter values present in the character list.
type Facets struct {
	Attributes  []domain.Attribute
	DamageTypes []domain.DamageType
	Tags        []string
	Specialties []string
}

// Facets collects sorted, de-duplicated filter values for building filter controls.
func (s *Store) Facets() Facets {
	snap := s.load()

	attrs := map[domain.Attribute]struct{}{}
	damage := map[domain.DamageType]struct{}{}
	tags := map[string]struct{}{}
	specs := map[string]struct{}{}
	for _, c := range snap.characters {
		if c.Attribute != "" {
			attrs[c.Attribute] = struct{}{}
		}
		if c.DamageType != "" {
			damage[c.DamageType] = struct{}{}
		}
		for _, t := range c.Tags {
			tags[t] = struct{}{}
		}
		for _, sp := range c.Specialties {
			specs[sp] = struct{}{}
		}
	}

	return Facets{
		Attributes:  sortedKeys(attrs),
		DamageTypes: sortedKeys(damage),
		Tags:        sortedKeys(tags),
		Specialties: sortedKeys(specs),
	}
}

func sortedKeys[K ~string](m map[K]struct{}) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
