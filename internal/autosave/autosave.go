package autosave

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/engine"
)

// DefaultDelay is the quiet period after the last edit before a write.
const DefaultDelay = 1500 * time.Millisecond

const writeTimeout = 5 * time.Second

type stateReader interface {
	State() engine.State
}

type persister interface {
	Update(ctx context.Context, profile, id string, fn func(*domain.SavedTeam)) (domain.SavedTeam, error)
	WriteDraft(ctx context.Context, profile string, l domain.Layout) error
	ClearDraft(ctx context.Context, profile string) error
}

// Observer is told about every autosave attempt. It may be nil.
type Observer interface {
	AutosaveDone(ctx context.Context, outcome Outcome, err error)
}

// Outcome is what an autosave did.
type Outcome string

const (
	OutcomeRecordUpdated Outcome = "record_updated"
	OutcomeRecordMissing Outcome = "record_missing"
	OutcomeDraftWritten  Outcome = "draft_written"
	OutcomeDraftCleared  Outcome = "draft_cleared"
	OutcomeFailed        Outcome = "failed"
)

// Autosaver writes a session's layout after edits settle. A layout that
// came from a saved record updates that record in place; any other layout
// is kept as the profile's draft, and an empty layout removes the draft.
type Autosaver struct {
	profile  string
	state    stateReader
	store    persister
	deb      *Debouncer
	delay    time.Duration
	observer Observer
	log      *slog.Logger
}

// New creates an Autosaver for one session. A zero delay is DefaultDelay.
func New(logger *slog.Logger, profile string, state stateReader, store persister, clock Clock, delay time.Duration, observer Observer) *Autosaver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Autosaver{
		profile:  profile,
		state:    state,
		store:    store,
		deb:      NewDebouncer(clock),
		delay:    delay,
		observer: observer,
		log:      logger.With("component", "autosave", "profile", profile),
	}
}

// OnChange is the engine listener. Mode switches do not schedule a write;
// loading a layout cancels any pending one so an edit to the previous
// layout cannot land on the newly loaded record.
func (a *Autosaver) OnChange(ch engine.Change) {
	switch ch.Reason {
	case engine.ReasonMode:
		return
	case engine.ReasonLoad:
		a.deb.Cancel()
	default:
		a.deb.Schedule(a.fire, a.delay)
	}
}

// Cancel drops a pending write.
func (a *Autosaver) Cancel() { a.deb.Cancel() }

// Pending reports whether a write is waiting.
func (a *Autosaver) Pending() bool { return a.deb.Pending() }

// Flush performs a pending write immediately. It must not be called from
// an engine listener.
func (a *Autosaver) Flush() bool { return a.deb.Flush() }

func (a *Autosaver) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	outcome, err := a.Save(ctx)
	if err != nil {
		a.log.ErrorContext(ctx, "autosave failed", slog.String("error", err.Error()))
	} else {
		a.log.DebugContext(ctx, "autosave", slog.String("outcome", string(outcome)))
	}
	if a.observer != nil {
		a.observer.AutosaveDone(ctx, outcome, err)
	}
}

// Save writes the current state once, without waiting.
func (a *Autosaver) Save(ctx context.Context) (Outcome, error) {
	st := a.state.State()

	if st.LoadedID != "" {
		l := st.Layout
		_, err := a.store.Update(ctx, a.profile, st.LoadedID, func(t *domain.SavedTeam) {
			t.Name = l.Name
			t.Description = l.Description
			t.Mode = l.Mode
			t.Teams = l.Teams()
		})
		if errors.Is(err, domain.ErrNotFound) {
			return OutcomeRecordMissing, nil
		}
		if err != nil {
			return OutcomeFailed, err
		}
		return OutcomeRecordUpdated, nil
	}

	if st.Layout.IsEmpty() {
		if err := a.store.ClearDraft(ctx, a.profile); err != nil {
			return OutcomeFailed, err
		}
		return OutcomeDraftCleared, nil
	}

	if err := a.store.WriteDraft(ctx, a.profile, st.Layout); err != nil {
		return OutcomeFailed, err
	}
	return OutcomeDraftWritten, nil
}
