package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// storagePinger defines the minimal interface for KV backend health checks.
type storagePinger interface {
	Ping(ctx context.Context) error
}

// catalogCounter reports how many entities the catalog holds.
type catalogCounter interface {
	Counts() (characters, psychubes int)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	storage storagePinger
	catalog catalogCounter
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(storage storagePinger, catalog catalogCounter, version string) *HealthHandler {
	return &HealthHandler{storage: storage, catalog: catalog, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness check: 200 when storage answers and the catalog
// is loaded, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	chars, _ := h.catalog.Counts()
	if err := h.storage.Ping(ctx); err != nil || chars == 0 {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings storage with latency measurement,
// reports catalog sizes and includes the version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.storage.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["storage"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["storage"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	chars, cubes := h.catalog.Counts()
	detail := strconv.Itoa(chars) + " characters, " + strconv.Itoa(cubes) + " psychubes"
	if chars == 0 {
		components["catalog"] = CompStatus{Status: "down", Detail: detail}
		overallStatus = "down"
	} else {
		components["catalog"] = CompStatus{Status: "ok", Detail: detail}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
