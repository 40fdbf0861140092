package rest

import (
	"github.com/heartmarshall/teambuilder/internal/catalog"
	"github.com/heartmarshall/teambuilder/internal/domain"
)

type characterResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rarity      int      `json:"rarity"`
	Attribute   string   `json:"attribute"`
	DamageType  string   `json:"damage_type"`
	Specialties []string `json:"specialties"`
	Tags        []string `json:"tags"`
	Version     string   `json:"version,omitempty"`
}

type psychubeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rarity int    `json:"rarity"`
}

type facetsResponse struct {
	Attributes  []domain.Attribute  `json:"attributes"`
	DamageTypes []domain.DamageType `json:"damage_types"`
	Tags        []string            `json:"tags"`
	Specialties []string            `json:"specialties"`
}

type unitResponse struct {
	Character string `json:"character"`
	Psychube  string `json:"psychube"`
}

type teamResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Mode        domain.Mode      `json:"mode"`
	Teams       [][]unitResponse `json:"teams"`
}

func toCharacterResponses(cs []domain.Character) []characterResponse {
	out := make([]characterResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, characterResponse{
			ID:          c.ID,
			Name:        c.Name,
			Rarity:      c.Rarity,
			Attribute:   c.Attribute.String(),
			DamageType:  c.DamageType.String(),
			Specialties: nonNil(c.Specialties),
			Tags:        nonNil(c.Tags),
			Version:     c.Version,
		})
	}
	return out
}

func toPsychubeResponses(ps []domain.Psychube) []psychubeResponse {
	out := make([]psychubeResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, psychubeResponse{ID: p.ID, Name: p.Name, Rarity: p.Rarity})
	}
	return out
}

func toFacetsResponse(f catalog.Facets) facetsResponse {
	return facetsResponse{
		Attributes:  nonNil(f.Attributes),
		DamageTypes: nonNil(f.DamageTypes),
		Tags:        nonNil(f.Tags),
		Specialties: nonNil(f.Specialties),
	}
}

func toTeamResponse(t domain.SavedTeam) teamResponse {
	teams := make([][]unitResponse, 0, len(t.Teams))
	for _, party := range t.Teams {
		units := make([]unitResponse, 0, len(party))
		for _, u := range party {
			units = append(units, unitResponse{Character: u.Character, Psychube: u.Psychube})
		}
		teams = append(teams, units)
	}
	return teamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Mode:        t.Mode,
		Teams:       teams,
	}
}

func toTeamResponses(ts []domain.SavedTeam) []teamResponse {
	out := make([]teamResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTeamResponse(t))
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
