package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger is implemented by every dependency a readiness probe checks.
type pinger interface {
	Ping(ctx context.Context) error
}

const probeTimeout = 3 * time.Second

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      pinger
	storage pinger
	version string
}

// NewHealthHandler creates a HealthHandler probing the database and the
// asset storage.
func NewHealthHandler(db, storage pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, storage: storage, version: version}
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
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if the database and asset storage
// respond, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.probe(r.Context())

	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}

	resp := HealthResponse{Status: status, Timestamp: time.Now()}
	if !ok {
		resp.Components = components
	}
	writeJSON(w, code, resp)
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.probe(r.Context())

	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	allOK := true

	for name, p := range map[string]pinger{"database": h.db, "storage": h.storage} {
		start := time.Now()
		if err := p.Ping(ctx); err != nil {
			components[name] = CompStatus{Status: "down"}
			allOK = false
			continue
		}
		components[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	return components, allOK
}
