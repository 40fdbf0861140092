package builder

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/teambuilder/internal/autosave"
	"github.com/heartmarshall/teambuilder/internal/engine"
	"github.com/heartmarshall/teambuilder/internal/gesture"
	"github.com/heartmarshall/teambuilder/internal/mirror"
)

// Session is one builder tab: an engine with its mirror views and autosave.
// Operations on a session are serialised by its mutex; the autosave timer
// reads engine state without it.
type Session struct {
	ID      uuid.UUID
	Profile string

	mu         sync.Mutex
	engine     *engine.Engine
	mirror     *mirror.Synchronizer
	saver      *autosave.Autosaver
	translator *gesture.Translator
	unsubs     []func()

	lastSeen atomic.Int64 // unix nanoseconds
}

func (sess *Session) touch(now time.Time) {
	sess.lastSeen.Store(now.UnixNano())
}

func (sess *Session) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, sess.lastSeen.Load()))
}

// View is what callers see of a session after an operation. Viewers counts
// the attached mirror views.
type View struct {
	SessionID uuid.UUID       `json:"session_id"`
	Profile   string          `json:"profile"`
	LoadedID  string          `json:"loaded_id,omitempty"`
	Viewers   int             `json:"viewers"`
	Tree      mirror.ViewTree `json:"tree"`
}

func (sess *Session) view() View {
	return View{
		SessionID: sess.ID,
		Profile:   sess.Profile,
		LoadedID:  sess.engine.LoadedID(),
		Viewers:   sess.mirror.Presenters(),
		Tree:      sess.mirror.Current(),
	}
}

// close flushes a pending autosave and detaches the listeners.
func (sess *Session) close() {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.saver.Flush()
	for _, unsub := range sess.unsubs {
		unsub()
	}
	sess.unsubs = nil
}
