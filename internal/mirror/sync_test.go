package mirror

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/engine"
	"github.com/heartmarshall/teambuilder/internal/gesture"
)

type recorder struct {
	mu    sync.Mutex
	trees []ViewTree
}

func (r *recorder) Present(tree ViewTree) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trees = append(r.trees, tree)
}

func (r *recorder) last() ViewTree {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trees[len(r.trees)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.trees)
}

func newWiredSession(t *testing.T) (*engine.Engine, *Synchronizer) {
	t.Helper()
	store := testStore()
	eng := engine.New(store)
	s := NewSynchronizer(store, gesture.NewTranslator(eng, store), eng.Snapshot())
	eng.Subscribe(s.OnChange)
	return eng, s
}

func TestSynchronizer_PrimaryAndMirrorAgree(t *testing.T) {
	t.Parallel()

	eng, s := newWiredSession(t)
	primary, mirror := &recorder{}, &recorder{}
	s.Attach(primary)
	s.Attach(mirror)

	eng.Place(0, domain.SlotKindCharacter, "3001")
	eng.Place(1, domain.SlotKindPsychube, "P01")
	eng.Swap(0, domain.SlotKindCharacter, 3, domain.SlotKindCharacter)

	if primary.count() != 4 || mirror.count() != 4 {
		t.Fatalf("presented %d/%d trees, want 4 each (attach + 3 changes)", primary.count(), mirror.count())
	}
	if diff := cmp.Diff(primary.last(), mirror.last()); diff != "" {
		t.Errorf("mirror diverged from primary:\n%s", diff)
	}

	// Every presented tree equals a fresh render of the engine state.
	want := Render(eng.Snapshot(), testStore())
	want.Revision = 3
	if diff := cmp.Diff(want, mirror.last()); diff != "" {
		t.Errorf("mirror differs from engine state (-want +got):\n%s", diff)
	}
}

func TestSynchronizer_RevisionIncreases(t *testing.T) {
	t.Parallel()

	eng, s := newWiredSession(t)
	if s.Current().Revision != 0 {
		t.Fatalf("initial revision = %d", s.Current().Revision)
	}

	eng.SetMode(domain.ModeQuad)
	eng.SetMeta("x", "")
	if got := s.Current().Revision; got != 2 {
		t.Errorf("revision = %d, want 2", got)
	}
	if got := len(s.Current().Groups); got != 4 {
		t.Errorf("groups after mode switch = %d, want 4", got)
	}
}

func TestSynchronizer_Detach(t *testing.T) {
	t.Parallel()

	eng, s := newWiredSession(t)
	r := &recorder{}
	detach := s.Attach(r)
	detach()

	eng.Place(0, domain.SlotKindCharacter, "3001")
	if r.count() != 1 {
		t.Errorf("detached presenter received %d trees, want 1 (the attach)", r.count())
	}
	if s.Presenters() != 0 {
		t.Errorf("Presenters() = %d, want 0", s.Presenters())
	}
}

func TestSynchronizer_Forward(t *testing.T) {
	t.Parallel()

	eng, s := newWiredSession(t)

	res, err := s.Forward(Gesture{Type: "drop", Source: "entity-3001", Target: "slot-2-character"})
	if err != nil || res != (gesture.Result{Action: gesture.ActionPlace, Applied: true}) {
		t.Fatalf("drop from catalog = %+v, %v", res, err)
	}
	if eng.Snapshot().Slots[2].Character != "3001" {
		t.Fatal("forwarded drop did not reach the engine")
	}

	res, err = s.Forward(Gesture{Type: "drop", Source: "slot-2-character", Target: "slot-0-character"})
	if err != nil || !res.Applied || res.Action != gesture.ActionSwap {
		t.Fatalf("slot drop = %+v, %v", res, err)
	}

	res, err = s.Forward(Gesture{Type: "click", Target: "slot-0-character"})
	if err != nil || !res.Applied || res.Action != gesture.ActionClear {
		t.Fatalf("click = %+v, %v", res, err)
	}

	if !s.Current().Empty {
		t.Error("view should reflect the cleared layout")
	}
}

func TestSynchronizer_ForwardInvalid(t *testing.T) {
	t.Parallel()

	_, s := newWiredSession(t)

	for _, g := range []Gesture{
		{Type: "drop", Source: "entity-3001", Target: "nowhere"},
		{Type: "drop", Source: "bogus", Target: "slot-0-character"},
		{Type: "hover", Target: "slot-0-character"},
	} {
		if _, err := s.Forward(g); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Forward(%+v) = %v, want ErrValidation", g, err)
		}
	}
}
