package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/teambuilder/internal/codec"
	"github.com/heartmarshall/teambuilder/internal/domain"
)

// ShareResult is a share token and the link that carries it.
type ShareResult struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// Share encodes the live layout. An empty layout cannot be shared.
func (s *Service) Share(ctx context.Context, id uuid.UUID) (ShareResult, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return ShareResult{}, err
	}

	l := sess.engine.Export()
	if l == nil {
		return ShareResult{}, domain.ErrEmptyLayout
	}
	return s.share(*l)
}

func (s *Service) share(l domain.Layout) (ShareResult, error) {
	token, err := codec.Encode(l)
	if err != nil {
		return ShareResult{}, fmt.Errorf("encode share token: %w", err)
	}
	return ShareResult{Token: token, URL: codec.ShareURL(s.cfg.PublicBaseURL, token)}, nil
}

func decodeCode(code string) (domain.Layout, error) {
	l, err := codec.Decode(strings.TrimSpace(code))
	if err != nil {
		return domain.Layout{}, fmt.Errorf("decode share code: %w", err)
	}
	return l, nil
}
