package api

import (
	"net/http"
)

func (s *Server) handleLatencyStats(w http.ResponseWriter, r *http.Request) {
	if s.latency == nil {
		jsonError(w, "latency stats unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"window": s.cfg.StatsWindow.String(),
		"stats":  s.latency.Snapshot(),
	})
}
