package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/service/teams"
)

type teamService interface {
	List(ctx context.Context) ([]domain.SavedTeam, error)
	Edit(ctx context.Context, id string, input teams.EditInput) (domain.SavedTeam, error)
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id string) (teams.ShareResult, error)
}

// TeamHandler serves the saved-team library of the calling profile.
type TeamHandler struct {
	svc teamService
	log *slog.Logger
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(svc teamService, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{svc: svc, log: logger.With("handler", "teams")}
}

// List handles GET /teams.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTeamResponses(list))
}

// Edit handles PATCH /teams/{id}.
func (h *TeamHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var input teams.EditInput
	if !decodeBody(w, r, &input) {
		return
	}

	team, err := h.svc.Edit(r.Context(), r.PathValue("id"), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTeamResponse(team))
}

// Delete handles DELETE /teams/{id}.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Share handles GET /teams/{id}/share.
func (h *TeamHandler) Share(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Share(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ShareQR handles GET /teams/{id}/share/qr.
func (h *TeamHandler) ShareQR(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Share(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeQR(h.log, w, r, res.URL)
}
