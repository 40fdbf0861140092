package builder

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/gesture"
	"github.com/heartmarshall/teambuilder/internal/mirror"
)

// MutationResult reports whether an operation changed the layout, and the
// session view afterwards. Rejected placements and swaps are not errors:
// Applied is false and the layout is unchanged.
type MutationResult struct {
	Applied bool           `json:"applied"`
	Action  gesture.Action `json:"action,omitempty"`
	View
}

// mutate runs fn on the session under its lock.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, op string, fn func(sess *Session) (gesture.Result, error)) (MutationResult, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return MutationResult{}, err
	}

	sess.mu.Lock()
	res, err := fn(sess)
	sess.mu.Unlock()
	if err != nil {
		return MutationResult{}, err
	}

	s.log.DebugContext(ctx, "session mutated",
		slog.String("session_id", id.String()),
		slog.String("op", op),
		slog.Bool("applied", res.Applied),
	)

	return MutationResult{Applied: res.Applied, Action: res.Action, View: sess.view()}, nil
}

// SetMode switches the layout mode. Every placement is discarded; name and
// description are kept.
func (s *Service) SetMode(ctx context.Context, id uuid.UUID, input ModeInput) (MutationResult, error) {
	if err := input.Validate(); err != nil {
		return MutationResult{}, err
	}
	mode, _ := domain.ParseMode(input.Mode)

	return s.mutate(ctx, id, "mode", func(sess *Session) (gesture.Result, error) {
		sess.engine.SetMode(mode)
		return gesture.Result{Applied: true}, nil
	})
}

// Place puts a catalog entity into a slot of its own kind.
func (s *Service) Place(ctx context.Context, id uuid.UUID, input PlaceInput) (MutationResult, error) {
	if err := input.Validate(); err != nil {
		return MutationResult{}, err
	}

	return s.mutate(ctx, id, "place", func(sess *Session) (gesture.Result, error) {
		ok := sess.engine.Place(input.Index, domain.SlotKind(input.Kind), input.EntityID)
		return gesture.Result{Action: gesture.ActionPlace, Applied: ok}, nil
	})
}

// Clear empties one slot.
func (s *Service) Clear(ctx context.Context, id uuid.UUID, input ClearInput) (MutationResult, error) {
	if err := input.Validate(); err != nil {
		return MutationResult{}, err
	}

	return s.mutate(ctx, id, "clear", func(sess *Session) (gesture.Result, error) {
		ok := sess.engine.Clear(input.Index, domain.SlotKind(input.Kind))
		return gesture.Result{Action: gesture.ActionClear, Applied: ok}, nil
	})
}

// Swap exchanges two slots of the same kind. One of them may be empty.
func (s *Service) Swap(ctx context.Context, id uuid.UUID, input SwapInput) (MutationResult, error) {
	if err := input.Validate(); err != nil {
		return MutationResult{}, err
	}

	return s.mutate(ctx, id, "swap", func(sess *Session) (gesture.Result, error) {
		ok := sess.engine.Swap(input.From, domain.SlotKind(input.FromKind), input.To, domain.SlotKind(input.ToKind))
		return gesture.Result{Action: gesture.ActionSwap, Applied: ok}, nil
	})
}

// Drop applies a drag-and-drop between view nodes.
func (s *Service) Drop(ctx context.Context, id uuid.UUID, input DropInput) (MutationResult, error) {
	return s.Gesture(ctx, id, mirror.Gesture{Type: "drop", Source: input.Source, Target: input.Target})
}

// Click applies a click on a view node.
func (s *Service) Click(ctx context.Context, id uuid.UUID, input ClickInput) (MutationResult, error) {
	return s.Gesture(ctx, id, mirror.Gesture{Type: "click", Target: input.Target})
}

// Gesture forwards a gesture made on any of the session's views.
func (s *Service) Gesture(ctx context.Context, id uuid.UUID, g mirror.Gesture) (MutationResult, error) {
	return s.mutate(ctx, id, g.Type, func(sess *Session) (gesture.Result, error) {
		return sess.mirror.Forward(g)
	})
}

// SetMeta sets the layout's name and description.
func (s *Service) SetMeta(ctx context.Context, id uuid.UUID, input MetaInput) (MutationResult, error) {
	if err := input.validate(s.cfg.MaxNameLength, s.cfg.MaxDescriptionLength); err != nil {
		return MutationResult{}, err
	}

	return s.mutate(ctx, id, "meta", func(sess *Session) (gesture.Result, error) {
		sess.engine.SetMeta(input.Name, input.Description)
		return gesture.Result{Applied: true}, nil
	})
}

// Reset empties every slot, keeps the mode, and detaches the session from
// any loaded record.
func (s *Service) Reset(ctx context.Context, id uuid.UUID, input ResetInput) (MutationResult, error) {
	if err := input.Validate(); err != nil {
		return MutationResult{}, err
	}

	return s.mutate(ctx, id, "reset", func(sess *Session) (gesture.Result, error) {
		sess.engine.ClearAll()
		return gesture.Result{Applied: true}, nil
	})
}
