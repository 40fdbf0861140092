package codec

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/layout"
)

type draftRecord struct {
	Mode        string       `json:"mode"`
	Teams       [][]wireUnit `json:"teams"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
}

type teamRecord struct {
	ID          recordID     `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Mode        string       `json:"mode"`
	Teams       [][]wireUnit `json:"teams"`
}

// MarshalDraft encodes the autosave draft.
func MarshalDraft(l domain.Layout) ([]byte, error) {
	return marshal(draftRecord{
		Mode:        string(l.Mode),
		Teams:       teamsToWire(l.Teams()),
		Name:        l.Name,
		Description: l.Description,
	})
}

// UnmarshalDraft decodes an autosave draft. Parse failures wrap
// domain.ErrStorageCorrupt.
func UnmarshalDraft(data []byte) (domain.Layout, error) {
	var rec draftRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Layout{}, fmt.Errorf("%w: draft: %v", domain.ErrStorageCorrupt, err)
	}

	mode, _ := domain.ParseMode(rec.Mode)
	return domain.Layout{
		Mode:        mode,
		Slots:       layout.Generate(mode).Normalize(domain.FlattenTeams(teamsFromWire(rec.Teams))),
		Name:        rec.Name,
		Description: rec.Description,
	}, nil
}

// MarshalTeams encodes the saved-team list.
func MarshalTeams(teams []domain.SavedTeam) ([]byte, error) {
	recs := make([]teamRecord, len(teams))
	for i, t := range teams {
		recs[i] = teamRecord{
			ID:          recordID(t.ID),
			Name:        t.Name,
			Description: t.Description,
			Mode:        string(t.Mode),
			Teams:       teamsToWire(t.Teams),
		}
	}
	return marshal(recs)
}

// UnmarshalTeams decodes the saved-team list. Parse failures wrap
// domain.ErrStorageCorrupt. Unknown modes fail closed to single.
func UnmarshalTeams(data []byte) ([]domain.SavedTeam, error) {
	var recs []teamRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: saved teams: %v", domain.ErrStorageCorrupt, err)
	}

	out := make([]domain.SavedTeam, len(recs))
	for i, r := range recs {
		mode, _ := domain.ParseMode(r.Mode)
		out[i] = domain.SavedTeam{
			ID:          string(r.ID),
			Name:        r.Name,
			Description: r.Description,
			Mode:        mode,
			Teams:       teamsFromWire(r.Teams),
		}
	}
	return out, nil
}

// recordID accepts ids written as strings or as bare numbers.
type recordID string

func (r *recordID) UnmarshalJSON(b []byte) error {
	id, err := scalarID(b)
	if err != nil {
		return err
	}
	if id == nil {
		*r = ""
		return nil
	}
	*r = recordID(*id)
	return nil
}
