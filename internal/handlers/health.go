package handlers

import "net/http"

// NewHealthHandler answers liveness probes.
// @Summary Health check
// @Tags system
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}
