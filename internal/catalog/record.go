package catalog

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

// looseString accepts a JSON/YAML string, number, or null. Catalog files
// write ids and versions both ways.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*s = looseString(n.String())
	return nil
}

func (s *looseString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = looseString(node.Value)
	return nil
}

type characterRecord struct {
	ID          looseString `json:"id"          yaml:"id"`
	Name        string      `json:"name"        yaml:"name"`
	Rarity      int         `json:"rarity"      yaml:"rarity"`
	Attribute   string      `json:"attribute"   yaml:"attribute"`
	DamageType  string      `json:"damageType"  yaml:"damageType"`
	Specialties []string    `json:"specialties" yaml:"specialties"`
	Tags        []string    `json:"tags"        yaml:"tags"`
	Version     looseString `json:"version"     yaml:"version"`
}

type psychubeRecord struct {
	ID     looseString `json:"id"     yaml:"id"`
	Name   string      `json:"name"   yaml:"name"`
	Rarity int         `json:"rarity" yaml:"rarity"`
}

func (r characterRecord) toDomain() domain.Character {
	return domain.Character{
		ID:          strings.TrimSpace(string(r.ID)),
		Name:        r.Name,
		Rarity:      max(r.Rarity, 0),
		Attribute:   domain.Attribute(r.Attribute),
		DamageType:  domain.DamageType(r.DamageType),
		Specialties: r.Specialties,
		Tags:        r.Tags,
		Version:     strings.TrimSpace(string(r.Version)),
	}
}

func (r psychubeRecord) toDomain() domain.Psychube {
	return domain.Psychube{
		ID:     strings.TrimSpace(string(r.ID)),
		Name:   r.Name,
		Rarity: max(r.Rarity, 0),
	}
}

// Format is the serialization of a catalog source.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatOf picks the format from a path or URL extension; JSON is the default.
func FormatOf(location string) Format {
	loc := strings.ToLower(location)
	if i := strings.IndexAny(loc, "?#"); i >= 0 {
		loc = loc[:i]
	}
	if strings.HasSuffix(loc, ".yaml") || strings.HasSuffix(loc, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

func decodeList[T any](data []byte, format Format) ([]T, error) {
	var out []T
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &out)
	default:
		err = json.Unmarshal(data, &out)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeCharacters parses a character list.
func DecodeCharacters(data []byte, format Format) ([]domain.Character, error) {
	recs, err := decodeList[characterRecord](data, format)
	if err != nil {
		return nil, fmt.Errorf("decode characters: %w", err)
	}
	out := make([]domain.Character, len(recs))
	for i, r := range recs {
		out[i] = r.toDomain()
	}
	return out, nil
}

// DecodePsychubes parses a psychube list.
func DecodePsychubes(data []byte, format Format) ([]domain.Psychube, error) {
	recs, err := decodeList[psychubeRecord](data, format)
	if err != nil {
		return nil, fmt.Errorf("decode psychubes: %w", err)
	}
	out := make([]domain.Psychube, len(recs))
	for i, r := range recs {
		out[i] = r.toDomain()
	}
	return out, nil
}
