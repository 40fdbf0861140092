package mirror

import (
	"fmt"
	"sync"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/engine"
	"github.com/heartmarshall/teambuilder/internal/gesture"
)

// Presenter receives every new view tree. Present is called while the
// engine is locked, so it must not block or call back into the session.
type Presenter interface {
	Present(tree ViewTree)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(ViewTree)

func (f PresenterFunc) Present(tree ViewTree) { f(tree) }

type gestureTranslator interface {
	Drop(source, target gesture.Ref) gesture.Result
	Click(target gesture.Ref) gesture.Result
}

// Gesture is a pointer gesture reported against view-node ids.
type Gesture struct {
	Type   string `json:"type"` // "drop" or "click"
	Source string `json:"source,omitempty"`
	Target string `json:"target"`
}

// Synchronizer re-renders the layout on every engine change and hands the
// tree to all registered presenters. Each render bumps the revision, so a
// client can tell which of two trees is newer.
type Synchronizer struct {
	catalog    entityCatalog
	translator gestureTranslator

	mu         sync.Mutex
	current    ViewTree
	presenters map[int]Presenter
	nextID     int
}

// NewSynchronizer renders initial as revision 0.
func NewSynchronizer(catalog entityCatalog, translator gestureTranslator, initial domain.Layout) *Synchronizer {
	return &Synchronizer{
		catalog:    catalog,
		translator: translator,
		current:    Render(initial, catalog),
		presenters: make(map[int]Presenter),
	}
}

// OnChange is the engine listener.
func (s *Synchronizer) OnChange(ch engine.Change) {
	tree := Render(ch.Layout, s.catalog)

	s.mu.Lock()
	tree.Revision = s.current.Revision + 1
	s.current = tree
	targets := s.snapshotPresenters()
	s.mu.Unlock()

	for _, p := range targets {
		p.Present(tree)
	}
}

// Attach registers p, immediately presents the current tree to it, and
// returns a function that detaches it.
func (s *Synchronizer) Attach(p Presenter) (detach func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.presenters[id] = p
	tree := s.current
	s.mu.Unlock()

	p.Present(tree)

	return func() {
		s.mu.Lock()
		delete(s.presenters, id)
		s.mu.Unlock()
	}
}

// Current returns the latest tree.
func (s *Synchronizer) Current() ViewTree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Presenters returns how many targets are attached.
func (s *Synchronizer) Presenters() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.presenters)
}

// Forward routes a gesture made on a view back to the engine. The view
// itself is never edited; the resulting change re-renders every target.
func (s *Synchronizer) Forward(g Gesture) (gesture.Result, error) {
	target, err := gesture.ParseNodeID(g.Target)
	if err != nil {
		return gesture.Result{}, fmt.Errorf("%w: target: %v", domain.ErrValidation, err)
	}

	switch g.Type {
	case "drop":
		source, err := gesture.ParseNodeID(g.Source)
		if err != nil {
			return gesture.Result{}, fmt.Errorf("%w: source: %v", domain.ErrValidation, err)
		}
		return s.translator.Drop(source, target), nil
	case "click":
		return s.translator.Click(target), nil
	}
	return gesture.Result{}, domain.NewValidationError("type", "must be drop or click")
}

func (s *Synchronizer) snapshotPresenters() []Presenter {
	out := make([]Presenter, 0, len(s.presenters))
	for id := 0; id < s.nextID; id++ {
		if p, ok := s.presenters[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
