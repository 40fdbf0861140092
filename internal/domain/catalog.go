package domain

import "strings"

// Character is a primary catalog entity: it fills the character slot of a slot unit.
type Character struct {
	ID          string
	Name        string
	Rarity      int
	Attribute   Attribute
	DamageType  DamageType
	Specialties []string
	Tags        []string
	Version     string // optional, numeric string such as "1.4"
}

// HasTag reports whether the character carries the given tag.
func (c *Character) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasSpecialty reports whether the character carries the given specialty.
func (c *Character) HasSpecialty(spec string) bool {
	for _, s := range c.Specialties {
		if s == spec {
			return true
		}
	}
	return false
}

// MatchesName performs a case-insensitive substring match on the display name.
func (c *Character) MatchesName(term string) bool {
	return matchesName(c.Name, term)
}

// Psychube is an accessory catalog entity: it fills the psychube slot of a slot unit.
type Psychube struct {
	ID     string
	Name   string
	Rarity int
}

// MatchesName performs a case-insensitive substring match on the display name.
func (p *Psychube) MatchesName(term string) bool {
	return matchesName(p.Name, term)
}

func matchesName(name, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), term)
}
