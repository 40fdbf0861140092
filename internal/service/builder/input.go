package builder

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

// CreateSessionInput holds the parameters for opening a session. Code is
// an optional share token or share URL to boot from.
type CreateSessionInput struct {
	Code string `json:"code"`
}

// ModeInput selects a layout mode.
type ModeInput struct {
	Mode string `json:"mode"`
}

// Validate checks all fields and collects all errors.
func (i ModeInput) Validate() error {
	if _, ok := domain.ParseMode(i.Mode); !ok {
		return domain.NewValidationError("mode", "must be single, dual or quad")
	}
	return nil
}

// PlaceInput puts a catalog entity into a slot.
type PlaceInput struct {
	Index    int    `json:"index"`
	Kind     string `json:"kind"`
	EntityID string `json:"entity_id"`
}

// Validate checks all fields and collects all errors.
func (i PlaceInput) Validate() error {
	var errs []domain.FieldError

	errs = appendSlotErrors(errs, "", i.Index, i.Kind)
	if strings.TrimSpace(i.EntityID) == "" {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ClearInput empties one slot.
type ClearInput struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
}

// Validate checks all fields and collects all errors.
func (i ClearInput) Validate() error {
	if errs := appendSlotErrors(nil, "", i.Index, i.Kind); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SwapInput exchanges the occupants of two slots of the same kind.
type SwapInput struct {
	From     int    `json:"from_index"`
	FromKind string `json:"from_kind"`
	To       int    `json:"to_index"`
	ToKind   string `json:"to_kind"`
}

// Validate checks all fields and collects all errors.
func (i SwapInput) Validate() error {
	errs := appendSlotErrors(nil, "from_", i.From, i.FromKind)
	errs = appendSlotErrors(errs, "to_", i.To, i.ToKind)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DropInput is a drag-and-drop between view nodes.
type DropInput struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ClickInput is a click on a view node.
type ClickInput struct {
	Target string `json:"target"`
}

// MetaInput sets the layout's name and description.
type MetaInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (i MetaInput) validate(maxName, maxDesc int) error {
	var errs []domain.FieldError

	if utf8.RuneCountInString(i.Name) > maxName {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxName)})
	}
	if utf8.RuneCountInString(i.Description) > maxDesc {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDesc)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetInput clears the whole layout. Confirm must be set.
type ResetInput struct {
	Confirm bool `json:"confirm"`
}

// Validate checks all fields and collects all errors.
func (i ResetInput) Validate() error {
	if !i.Confirm {
		return domain.NewValidationError("confirm", "must be true to clear the entire team")
	}
	return nil
}

// SaveInput stores the live layout as a new saved team.
type SaveInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (i SaveInput) validate(maxName, maxDesc int) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxName {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxName)})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Description)) > maxDesc {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDesc)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoadInput loads a saved team into the session.
type LoadInput struct {
	TeamID string `json:"team_id"`
}

// Validate checks all fields and collects all errors.
func (i LoadInput) Validate() error {
	if strings.TrimSpace(i.TeamID) == "" {
		return domain.NewValidationError("team_id", "required")
	}
	return nil
}

// ImportInput loads a pasted share code or share URL into the session.
type ImportInput struct {
	Code string `json:"code"`
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	if strings.TrimSpace(i.Code) == "" {
		return domain.NewValidationError("code", "required")
	}
	return nil
}

func appendSlotErrors(errs []domain.FieldError, prefix string, index int, kind string) []domain.FieldError {
	if index < 0 {
		errs = append(errs, domain.FieldError{Field: prefix + "index", Message: "must be >= 0"})
	}
	if !domain.SlotKind(kind).IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + "kind", Message: "must be character or psychube"})
	}
	return errs
}
