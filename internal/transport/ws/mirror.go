// Package ws serves mirror views of a builder session over websocket.
//
// The server pushes {"type":"view","tree":...} after every change and
// accepts gesture messages {"type":"drop"|"click","source":...,"target":...}.
// Each gesture is answered with {"type":"result",...} or {"type":"error",...}.
package ws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/gesture"
	"github.com/heartmarshall/teambuilder/internal/mirror"
	"github.com/heartmarshall/teambuilder/internal/service/builder"
)

const (
	writeTimeout   = 5 * time.Second
	pingInterval   = 30 * time.Second
	maxMessageSize = 4 << 10
)

type mirrorService interface {
	Attach(ctx context.Context, id uuid.UUID, p mirror.Presenter) (detach func(), err error)
	Gesture(ctx context.Context, id uuid.UUID, g mirror.Gesture) (builder.MutationResult, error)
}

// MirrorHandler serves GET /sessions/{id}/mirror.
type MirrorHandler struct {
	svc            mirrorService
	log            *slog.Logger
	originPatterns []string
	pingInterval   time.Duration
}

// NewMirrorHandler creates a MirrorHandler. originPatterns lists extra
// hosts allowed to open the socket cross-origin; see websocket.AcceptOptions.
func NewMirrorHandler(svc mirrorService, logger *slog.Logger, originPatterns []string) *MirrorHandler {
	return &MirrorHandler{
		svc:            svc,
		log:            logger.With("handler", "mirror"),
		originPatterns: originPatterns,
		pingInterval:   pingInterval,
	}
}

type viewMessage struct {
	Type string          `json:"type"`
	Tree mirror.ViewTree `json:"tree"`
}

type resultMessage struct {
	Type    string         `json:"type"`
	Action  gesture.Action `json:"action"`
	Applied bool           `json:"applied"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func (h *MirrorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	p := newPresenter()
	detach, err := h.svc.Attach(r.Context(), id, p)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		h.log.ErrorContext(r.Context(), "attach mirror", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer detach()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: h.originPatterns})
	if err != nil {
		h.log.WarnContext(r.Context(), "websocket accept", slog.String("error", err.Error()))
		return
	}
	defer conn.CloseNow() //nolint:errcheck
	conn.SetReadLimit(maxMessageSize)

	h.log.InfoContext(r.Context(), "mirror attached", slog.String("session_id", id.String()))

	err = h.serve(r.Context(), conn, id, p)
	switch status := websocket.CloseStatus(err); {
	case status == websocket.StatusNormalClosure, status == websocket.StatusGoingAway:
		conn.Close(websocket.StatusNormalClosure, "") //nolint:errcheck
	case errors.Is(err, domain.ErrNotFound):
		conn.Close(websocket.StatusNormalClosure, "session closed") //nolint:errcheck
	case err != nil && !errors.Is(err, context.Canceled):
		h.log.WarnContext(r.Context(), "mirror connection", slog.String("error", err.Error()))
		conn.Close(websocket.StatusInternalError, "") //nolint:errcheck
	}

	h.log.InfoContext(r.Context(), "mirror detached", slog.String("session_id", id.String()))
}

func (h *MirrorHandler) serve(ctx context.Context, conn *websocket.Conn, id uuid.UUID, p *presenter) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return h.writeLoop(ctx, conn, p) })
	g.Go(func() error { return h.readLoop(ctx, conn, id) })
	g.Go(func() error { return h.pingLoop(ctx, conn) })

	return g.Wait()
}

func (h *MirrorHandler) writeLoop(ctx context.Context, conn *websocket.Conn, p *presenter) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case tree := <-p.Updates():
			if err := writeMessage(ctx, conn, viewMessage{Type: "view", Tree: tree}); err != nil {
				return err
			}
		}
	}
}

func (h *MirrorHandler) readLoop(ctx context.Context, conn *websocket.Conn, id uuid.UUID) error {
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return fmt.Errorf("read websocket: %w", err)
		}
		if typ != websocket.MessageText {
			continue
		}

		var in mirror.Gesture
		if err := json.Unmarshal(data, &in); err != nil {
			if err := writeMessage(ctx, conn, errorMessage{Type: "error", Error: "invalid gesture message"}); err != nil {
				return err
			}
			continue
		}

		res, err := h.svc.Gesture(ctx, id, in)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return err
		case errors.Is(err, domain.ErrValidation):
			err = writeMessage(ctx, conn, errorMessage{Type: "error", Error: err.Error()})
		case err != nil:
			h.log.ErrorContext(ctx, "mirror gesture", slog.String("error", err.Error()))
			err = writeMessage(ctx, conn, errorMessage{Type: "error", Error: "internal server error"})
		default:
			err = writeMessage(ctx, conn, resultMessage{Type: "result", Action: res.Action, Applied: res.Applied})
		}
		if err != nil {
			return err
		}
	}
}

func (h *MirrorHandler) pingLoop(ctx context.Context, conn *websocket.Conn) error {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return fmt.Errorf("ping: %w", err)
			}
		}
	}
}

func writeMessage(ctx context.Context, conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		return fmt.Errorf("write websocket: %w", err)
	}
	return nil
}
