package builder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/teambuilder/internal/mirror"
)

// Attach registers a mirror view target on the session. The target gets
// the current tree at once and every later one; detach unregisters it.
func (s *Service) Attach(ctx context.Context, id uuid.UUID, p mirror.Presenter) (detach func(), err error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	return sess.mirror.Attach(p), nil
}
