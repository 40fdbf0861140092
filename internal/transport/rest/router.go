package rest

import "net/http"

// Handlers groups everything NewRouter mounts. Mirror is the websocket
// endpoint and GraphQL the query endpoint; nil leaves the route
// unregistered.
type Handlers struct {
	Health   *HealthHandler
	Catalog  *CatalogHandler
	Sessions *SessionHandler
	Teams    *TeamHandler
	Mirror   http.Handler
	GraphQL  http.Handler
}

// NewRouter registers every HTTP entry point on a ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /catalog/characters", h.Catalog.Characters)
	mux.HandleFunc("GET /catalog/psychubes", h.Catalog.Psychubes)
	mux.HandleFunc("GET /catalog/facets", h.Catalog.Facets)

	mux.HandleFunc("POST /sessions", h.Sessions.Create)
	mux.HandleFunc("GET /sessions/{id}", h.Sessions.Get)
	mux.HandleFunc("DELETE /sessions/{id}", h.Sessions.Delete)
	mux.HandleFunc("POST /sessions/{id}/mode", h.Sessions.SetMode)
	mux.HandleFunc("POST /sessions/{id}/place", h.Sessions.Place)
	mux.HandleFunc("POST /sessions/{id}/clear", h.Sessions.Clear)
	mux.HandleFunc("POST /sessions/{id}/swap", h.Sessions.Swap)
	mux.HandleFunc("POST /sessions/{id}/drop", h.Sessions.Drop)
	mux.HandleFunc("POST /sessions/{id}/click", h.Sessions.Click)
	mux.HandleFunc("POST /sessions/{id}/meta", h.Sessions.SetMeta)
	mux.HandleFunc("POST /sessions/{id}/reset", h.Sessions.Reset)
	mux.HandleFunc("POST /sessions/{id}/save", h.Sessions.Save)
	mux.HandleFunc("POST /sessions/{id}/load", h.Sessions.Load)
	mux.HandleFunc("POST /sessions/{id}/import", h.Sessions.Import)
	mux.HandleFunc("GET /sessions/{id}/share", h.Sessions.Share)
	mux.HandleFunc("GET /sessions/{id}/share/qr", h.Sessions.ShareQR)
	if h.Mirror != nil {
		mux.Handle("GET /sessions/{id}/mirror", h.Mirror)
	}

	mux.HandleFunc("GET /teams", h.Teams.List)
	mux.HandleFunc("PATCH /teams/{id}", h.Teams.Edit)
	mux.HandleFunc("DELETE /teams/{id}", h.Teams.Delete)
	mux.HandleFunc("GET /teams/{id}/share", h.Teams.Share)
	mux.HandleFunc("GET /teams/{id}/share/qr", h.Teams.ShareQR)

	if h.GraphQL != nil {
		mux.Handle("/graphql", h.GraphQL)
	}

	return mux
}
