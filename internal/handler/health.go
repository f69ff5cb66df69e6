package handler

import (
	"net/http"
)

// Healthz is the liveness probe. Always returns 200.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz is the readiness probe. The generator is a pure function with no
// upstream dependencies, so readiness follows liveness.
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
