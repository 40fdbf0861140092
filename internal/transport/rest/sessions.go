package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/service/builder"
)

type sessionService interface {
	CreateSession(ctx context.Context, input builder.CreateSessionInput) (builder.View, error)
	GetSession(ctx context.Context, id uuid.UUID) (builder.View, error)
	CloseSession(ctx context.Context, id uuid.UUID) error

	SetMode(ctx context.Context, id uuid.UUID, input builder.ModeInput) (builder.MutationResult, error)
	Place(ctx context.Context, id uuid.UUID, input builder.PlaceInput) (builder.MutationResult, error)
	Clear(ctx context.Context, id uuid.UUID, input builder.ClearInput) (builder.MutationResult, error)
	Swap(ctx context.Context, id uuid.UUID, input builder.SwapInput) (builder.MutationResult, error)
	Drop(ctx context.Context, id uuid.UUID, input builder.DropInput) (builder.MutationResult, error)
	Click(ctx context.Context, id uuid.UUID, input builder.ClickInput) (builder.MutationResult, error)
	SetMeta(ctx context.Context, id uuid.UUID, input builder.MetaInput) (builder.MutationResult, error)
	Reset(ctx context.Context, id uuid.UUID, input builder.ResetInput) (builder.MutationResult, error)

	SaveAsNew(ctx context.Context, id uuid.UUID, input builder.SaveInput) (domain.SavedTeam, error)
	LoadTeam(ctx context.Context, id uuid.UUID, input builder.LoadInput) (builder.View, error)
	Import(ctx context.Context, id uuid.UUID, input builder.ImportInput) (builder.View, error)
	Share(ctx context.Context, id uuid.UUID) (builder.ShareResult, error)
}

// SessionHandler serves the builder sessions.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "sessions")}
}

// Create handles POST /sessions. The body is optional.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input builder.CreateSessionInput
	if !decodeBody(w, r, &input) {
		return
	}

	view, err := h.svc.CreateSession(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.GetSession(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /sessions/{id}. A pending autosave is flushed first.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.svc.CloseSession(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Share handles GET /sessions/{id}/share.
func (h *SessionHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Share(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ShareQR handles GET /sessions/{id}/share/qr.
func (h *SessionHandler) ShareQR(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Share(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeQR(h.log, w, r, res.URL)
}

// SetMode handles POST /sessions/{id}/mode.
func (h *SessionHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	sessionCall(h, w, r, http.StatusOK, h.svc.SetMode)
}

// Place handles POST /sessions/{id}/place.
func (h *SessionHandler) Place(w http.ResponseWriter, r *http.Request) {
	sessionCall(h, w, r, http.StatusOK, h.svc.Place)
}

// Clear handles POST /sessions/{id}/clear.
func (h *SessionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionCall(h, w, r, http.StatusOK, h.svc.Clear)
}

// Swap handles POST /sessions/{id}/swap.
func (h *SessionHandler) Swap(w http.ResponseWriter, r *http.Request) {
	sessionCall(h, w, r, http.StatusOK, h.svc.Swap)
}

// Drop handles POST /sessions/{id}/drop.
func (h *SessionHandler) Drop(w http.ResponseWriter, r *http.Request) {
	sessionCall(h, w, r, http.StatusOK, h.svc.Drop)
}

// Click handles POST /sessions/{id}/click.
func (h *SessionHandler) Click(w http.ResponseWriter, r *http.Request) {
	sessionCall(h, w, r, http.StatusOK, h.svc.Click)
}

// SetMeta handles POST /sessions/{id}/meta.
func (h *SessionHandler) SetMeta(w http.ResponseWriter, r *http.Request) {
	sessionCall(h, w, r, http.StatusOK, h.svc.SetMeta)
}

// Reset handles POST /sessions/{id}/reset. The body must carry {"confirm": true}.
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sessionCall(h, w, r, http.StatusOK, h.svc.Reset)
}

// Save handles POST /sessions/{id}/save.
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var input builder.SaveInput
	if !decodeBody(w, r, &input) {
		return
	}

	team, err := h.svc.SaveAsNew(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTeamResponse(team))
}

// Load handles POST /sessions/{id}/load.
func (h *SessionHandler) Load(w http.ResponseWriter, r *http.Request) {
	sessionCall(h, w, r, http.StatusOK, h.svc.LoadTeam)
}

// Import handles POST /sessions/{id}/import.
func (h *SessionHandler) Import(w http.ResponseWriter, r *http.Request) {
	sessionCall(h, w, r, http.StatusOK, h.svc.Import)
}

// sessionCall decodes the body into In, runs fn on the session named in
// the path and writes its result.
func sessionCall[In, Out any](h *SessionHandler, w http.ResponseWriter, r *http.Request, status int, fn func(context.Context, uuid.UUID, In) (Out, error)) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var input In
	if !decodeBody(w, r, &input) {
		return
	}

	out, err := fn(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, out)
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}
