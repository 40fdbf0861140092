package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/teambuilder/internal/catalog"
	"github.com/heartmarshall/teambuilder/internal/domain"
	catalogsvc "github.com/heartmarshall/teambuilder/internal/service/catalog"
)

type catalogService interface {
	Characters(ctx context.Context, f catalogsvc.CharacterFilter) ([]domain.Character, error)
	Psychubes(ctx context.Context, f catalogsvc.PsychubeFilter) ([]domain.Psychube, error)
	Facets(ctx context.Context) catalog.Facets
}

// CatalogHandler serves the read-only catalog listings.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// Characters handles GET /catalog/characters.
// Query: q, attribute, damage_type, tag (repeatable), specialty (repeatable), sort.
func (h *CatalogHandler) Characters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	chars, err := h.svc.Characters(r.Context(), catalogsvc.CharacterFilter{
		Search:      q.Get("q"),
		Attribute:   q.Get("attribute"),
		DamageType:  q.Get("damage_type"),
		Tags:        q["tag"],
		Specialties: q["specialty"],
		Sort:        q.Get("sort"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCharacterResponses(chars))
}

// Psychubes handles GET /catalog/psychubes?q=&sort=.
func (h *CatalogHandler) Psychubes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cubes, err := h.svc.Psychubes(r.Context(), catalogsvc.PsychubeFilter{
		Search: q.Get("q"),
		Sort:   q.Get("sort"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPsychubeResponses(cubes))
}

// Facets handles GET /catalog/facets.
func (h *CatalogHandler) Facets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toFacetsResponse(h.svc.Facets(r.Context())))
}
