package catalog

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

// CharacterQuery filters and orders the character list.
// Zero-valued fields do not filter.
type CharacterQuery struct {
	Search      string
	Attribute   domain.Attribute
	DamageType  domain.DamageType
	Tags        []string // every tag must be present
	Specialties []string // every specialty must be present
	Sort        domain.SortOrder
}

// PsychubeQuery filters and orders the psychube list.
type PsychubeQuery struct {
	Search string
	Sort   domain.SortOrder
}

// Characters returns the characters matching q in q.Sort order.
func (s *Store) Characters(q CharacterQuery) []domain.Character {
	snap := s.load()

	out := make([]domain.Character, 0, len(snap.characters))
	for i := range snap.characters {
		c := &snap.characters[i]
		if !c.MatchesName(q.Search) {
			continue
		}
		if q.Attribute != "" && c.Attribute != q.Attribute {
			continue
		}
		if q.DamageType != "" && c.DamageType != q.DamageType {
			continue
		}
		if !hasAll(q.Tags, c.HasTag) || !hasAll(q.Specialties, c.HasSpecialty) {
			continue
		}
		out = append(out, *c)
	}

	sortCharacters(out, q.Sort)
	return out
}

// Psychubes returns the psychubes matching q in q.Sort order. Version
// orderings do not apply to psychubes and fall back to the default order,
// which is id-desc.
func (s *Store) Psychubes(q PsychubeQuery) []domain.Psychube {
	snap := s.load()

	out := make([]domain.Psychube, 0, len(snap.psychubes))
	for i := range snap.psychubes {
		if snap.psychubes[i].MatchesName(q.Search) {
			out = append(out, snap.psychubes[i])
		}
	}

	switch q.Sort {
	case domain.SortRarityDesc:
		slices.SortStableFunc(out, func(a, b domain.Psychube) int { return cmp.Compare(b.Rarity, a.Rarity) })
	case domain.SortRarityAsc:
		slices.SortStableFunc(out, func(a, b domain.Psychube) int { return cmp.Compare(a.Rarity, b.Rarity) })
	case domain.SortIDAsc:
		slices.SortStableFunc(out, func(a, b domain.Psychube) int { return compareIDs(a.ID, b.ID) })
	default:
		slices.SortStableFunc(out, func(a, b domain.Psychube) int { return compareIDs(b.ID, a.ID) })
	}
	return out
}

func hasAll(want []string, has func(string) bool) bool {
	for _, w := range want {
		if !has(w) {
			return false
		}
	}
	return true
}

func sortCharacters(cs []domain.Character, order domain.SortOrder) {
	switch order {
	case domain.SortIDAsc:
		slices.SortStableFunc(cs, func(a, b domain.Character) int { return compareIDs(a.ID, b.ID) })
	case domain.SortRarityDesc:
		slices.SortStableFunc(cs, func(a, b domain.Character) int { return cmp.Compare(b.Rarity, a.Rarity) })
	case domain.SortRarityAsc:
		slices.SortStableFunc(cs, func(a, b domain.Character) int { return cmp.Compare(a.Rarity, b.Rarity) })
	case domain.SortVersionDesc:
		slices.SortStableFunc(cs, func(a, b domain.Character) int {
			if c := cmp.Compare(versionOf(b), versionOf(a)); c != 0 {
				return c
			}
			return compareIDs(b.ID, a.ID)
		})
	case domain.SortVersionAsc:
		slices.SortStableFunc(cs, func(a, b domain.Character) int {
			if c := cmp.Compare(versionOf(a), versionOf(b)); c != 0 {
				return c
			}
			return compareIDs(b.ID, a.ID)
		})
	default:
		slices.SortStableFunc(cs, func(a, b domain.Character) int { return compareIDs(b.ID, a.ID) })
	}
}

// versionOf parses the optional version string; absent or unparsable is 0.
func versionOf(c domain.Character) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Version), 64)
	if err != nil {
		return 0
	}
	return v
}

// compareIDs orders numeric ids before the others. Numeric ids compare by
// value, the rest lexically; equal values fall back to the raw text so the
// order stays total.
func compareIDs(a, b string) int {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	numA, numB := errA == nil, errB == nil

	switch {
	case numA && !numB:
		return -1
	case !numA && numB:
		return 1
	case numA && numB:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
	}
	return cmp.Compare(a, b)
}
