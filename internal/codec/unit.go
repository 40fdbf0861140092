package codec

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

// wireUnit is a slot unit on the wire: {"c": id|null, "p": id|null}.
// Older links and records store a bare character id (string or number) or
// null in place of the object; both decode into a unit.
type wireUnit struct {
	C *string `json:"c"`
	P *string `json:"p"`
}

func toWire(u domain.SlotUnit) wireUnit {
	var w wireUnit
	if u.Character != "" {
		c := u.Character
		w.C = &c
	}
	if u.Psychube != "" {
		p := u.Psychube
		w.P = &p
	}
	return w
}

func (w wireUnit) toDomain() domain.SlotUnit {
	var u domain.SlotUnit
	if w.C != nil {
		u.Character = *w.C
	}
	if w.P != nil {
		u.Psychube = *w.P
	}
	return u
}

func (w *wireUnit) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("empty slot unit")
	}

	switch b[0] {
	case 'n':
		*w = wireUnit{}
		return nil
	case '{':
		var obj struct {
			C json.RawMessage `json:"c"`
			P json.RawMessage `json:"p"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		c, err := scalarID(obj.C)
		if err != nil {
			return fmt.Errorf("c: %w", err)
		}
		p, err := scalarID(obj.P)
		if err != nil {
			return fmt.Errorf("p: %w", err)
		}
		*w = wireUnit{C: c, P: p}
		return nil
	default:
		c, err := scalarID(b)
		if err != nil {
			return err
		}
		*w = wireUnit{C: c}
		return nil
	}
}

// scalarID reads an id written as a string or a number. Null, absent and
// empty ids are nil.
func scalarID(raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var id string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &id); err != nil {
			return nil, err
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("expected id, got %s", raw)
		}
		id = n.String()
	}
	if id == "" {
		return nil, nil
	}
	return &id, nil
}

func teamsToWire(teams [][]domain.SlotUnit) [][]wireUnit {
	out := make([][]wireUnit, len(teams))
	for i, team := range teams {
		out[i] = make([]wireUnit, len(team))
		for j, u := range team {
			out[i][j] = toWire(u)
		}
	}
	return out
}

func teamsFromWire(teams [][]wireUnit) [][]domain.SlotUnit {
	out := make([][]domain.SlotUnit, len(teams))
	for i, team := range teams {
		out[i] = make([]domain.SlotUnit, len(team))
		for j, w := range team {
			out[i][j] = w.toDomain()
		}
	}
	return out
}

// marshal encodes v without HTML escaping and without a trailing newline.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
