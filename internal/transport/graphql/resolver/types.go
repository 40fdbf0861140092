package resolver

import (
	"context"

	catalogstore "github.com/heartmarshall/teambuilder/internal/catalog"
	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/layout"
	"github.com/heartmarshall/teambuilder/internal/mirror"
	"github.com/heartmarshall/teambuilder/internal/service/builder"
	gql "github.com/heartmarshall/teambuilder/internal/transport/graphql"
	"github.com/heartmarshall/teambuilder/internal/transport/graphql/dataloader"
)

// field adapts a plain getter on T to a field resolver.
func field[T any](get func(T) any) gql.Resolve {
	return func(_ context.Context, obj any, _ map[string]any) (any, error) {
		return get(obj.(T)), nil
	}
}

// groupNode and unitNode carry the topology the view was rendered for.
type groupNode struct {
	topo  layout.Topology
	group mirror.GroupView
}

type unitNode struct {
	topo layout.Topology
	unit mirror.UnitView
}

type teamUnitNode struct {
	index int
	group int
	unit  domain.SlotUnit
}

type shareNode struct {
	token string
	url   string
}

var characterType = &gql.Object{Name: "Character", Fields: map[string]gql.Resolve{
	"id":          field(func(c domain.Character) any { return c.ID }),
	"name":        field(func(c domain.Character) any { return c.Name }),
	"rarity":      field(func(c domain.Character) any { return c.Rarity }),
	"attribute":   field(func(c domain.Character) any { return optional(string(c.Attribute)) }),
	"damageType":  field(func(c domain.Character) any { return optional(string(c.DamageType)) }),
	"specialties": field(func(c domain.Character) any { return c.Specialties }),
	"tags":        field(func(c domain.Character) any { return c.Tags }),
	"version":     field(func(c domain.Character) any { return optional(c.Version) }),
}}

var psychubeType = &gql.Object{Name: "Psychube", Fields: map[string]gql.Resolve{
	"id":     field(func(p domain.Psychube) any { return p.ID }),
	"name":   field(func(p domain.Psychube) any { return p.Name }),
	"rarity": field(func(p domain.Psychube) any { return p.Rarity }),
}}

var facetsType = &gql.Object{Name: "Facets", Fields: map[string]gql.Resolve{
	"attributes":  field(func(f catalogstore.Facets) any { return toStrings(f.Attributes) }),
	"damageTypes": field(func(f catalogstore.Facets) any { return toStrings(f.DamageTypes) }),
	"tags":        field(func(f catalogstore.Facets) any { return f.Tags }),
	"specialties": field(func(f catalogstore.Facets) any { return f.Specialties }),
}}

var slotType = &gql.Object{Name: "Slot", Fields: map[string]gql.Resolve{
	"nodeId":      field(func(s mirror.SlotView) any { return s.NodeID }),
	"kind":        field(func(s mirror.SlotView) any { return enumValue(s.Kind) }),
	"filled":      field(func(s mirror.SlotView) any { return s.Filled }),
	"placeholder": field(func(s mirror.SlotView) any { return optional(s.Placeholder) }),
	"entityId":    field(func(s mirror.SlotView) any { return optional(s.EntityID) }),
	"name":        field(func(s mirror.SlotView) any { return optional(s.Name) }),
	"rarity": field(func(s mirror.SlotView) any {
		if s.Rarity == 0 {
			return nil
		}
		return s.Rarity
	}),
	"attribute":  field(func(s mirror.SlotView) any { return optional(string(s.Attribute)) }),
	"damageType": field(func(s mirror.SlotView) any { return optional(string(s.DamageType)) }),
	"missing":    field(func(s mirror.SlotView) any { return s.Missing }),
}}

var unitType = &gql.Object{Name: "Unit", Fields: map[string]gql.Resolve{
	"index":     field(func(u unitNode) any { return u.unit.Index }),
	"group":     field(func(u unitNode) any { return u.topo.GroupOf(u.unit.Index) }),
	"character": field(func(u unitNode) any { return gql.Typed{Type: slotType, Value: u.unit.Character} }),
	"psychube":  field(func(u unitNode) any { return gql.Typed{Type: slotType, Value: u.unit.Psychube} }),
}}

var groupType = &gql.Object{Name: "Group", Fields: map[string]gql.Resolve{
	"label": field(func(g groupNode) any { return optional(g.group.Label) }),
	"units": field(func(g groupNode) any {
		out := make([]unitNode, len(g.group.Units))
		for i, u := range g.group.Units {
			out[i] = unitNode{topo: g.topo, unit: u}
		}
		return gql.As(unitType, out)
	}),
}}

var sessionType = &gql.Object{Name: "Session", Fields: map[string]gql.Resolve{
	"id":          field(func(v builder.View) any { return v.SessionID.String() }),
	"profile":     field(func(v builder.View) any { return v.Profile }),
	"loadedId":    field(func(v builder.View) any { return optional(v.LoadedID) }),
	"viewers":     field(func(v builder.View) any { return v.Viewers }),
	"revision":    field(func(v builder.View) any { return int(v.Tree.Revision) }),
	"mode":        field(func(v builder.View) any { return enumValue(v.Tree.Mode) }),
	"name":        field(func(v builder.View) any { return v.Tree.Name }),
	"description": field(func(v builder.View) any { return v.Tree.Description }),
	"empty":       field(func(v builder.View) any { return v.Tree.Empty }),
	"groups": field(func(v builder.View) any {
		topo := layout.Generate(v.Tree.Mode)
		out := make([]groupNode, len(v.Tree.Groups))
		for i, g := range v.Tree.Groups {
			out[i] = groupNode{topo: topo, group: g}
		}
		return gql.As(groupType, out)
	}),
}}

var mutationResultType = &gql.Object{Name: "MutationResult", Fields: map[string]gql.Resolve{
	"applied": field(func(m builder.MutationResult) any { return m.Applied }),
	"action":  field(func(m builder.MutationResult) any { return optional(string(m.Action)) }),
	"session": field(func(m builder.MutationResult) any { return gql.Typed{Type: sessionType, Value: m.View} }),
}}

var teamUnitType = &gql.Object{Name: "TeamUnit", Fields: map[string]gql.Resolve{
	"index":       field(func(u teamUnitNode) any { return u.index }),
	"group":       field(func(u teamUnitNode) any { return u.group }),
	"characterId": field(func(u teamUnitNode) any { return optional(u.unit.Character) }),
	"psychubeId":  field(func(u teamUnitNode) any { return optional(u.unit.Psychube) }),
	"character": func(ctx context.Context, obj any, _ map[string]any) (any, error) {
		id := obj.(teamUnitNode).unit.Character
		if id == "" {
			return nil, nil
		}
		c, err := dataloader.FromContext(ctx).CharacterByID.Load(ctx, id)()
		if err != nil || c == nil {
			return nil, err
		}
		return gql.Typed{Type: characterType, Value: *c}, nil
	},
	"psychube": func(ctx context.Context, obj any, _ map[string]any) (any, error) {
		id := obj.(teamUnitNode).unit.Psychube
		if id == "" {
			return nil, nil
		}
		p, err := dataloader.FromContext(ctx).PsychubeByID.Load(ctx, id)()
		if err != nil || p == nil {
			return nil, err
		}
		return gql.Typed{Type: psychubeType, Value: *p}, nil
	},
}}

var savedTeamType = &gql.Object{Name: "SavedTeam", Fields: map[string]gql.Resolve{
	"id":          field(func(t domain.SavedTeam) any { return t.ID }),
	"name":        field(func(t domain.SavedTeam) any { return t.Name }),
	"description": field(func(t domain.SavedTeam) any { return t.Description }),
	"mode":        field(func(t domain.SavedTeam) any { return enumValue(layout.Generate(t.Mode).Mode) }),
	"units":       field(func(t domain.SavedTeam) any { return gql.As(teamUnitType, teamUnits(t)) }),
}}

var shareType = &gql.Object{Name: "Share", Fields: map[string]gql.Resolve{
	"token": field(func(s shareNode) any { return s.token }),
	"url":   field(func(s shareNode) any { return s.url }),
}}

// teamUnits flattens a saved team's parties into indexed units.
func teamUnits(t domain.SavedTeam) []teamUnitNode {
	topo := layout.Generate(t.Mode)
	flat := domain.FlattenTeams(t.Teams)
	out := make([]teamUnitNode, len(flat))
	for i, u := range flat {
		out[i] = teamUnitNode{index: i, group: topo.GroupOf(i), unit: u}
	}
	return out
}

func toStrings[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
