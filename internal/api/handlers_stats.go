package api

import "net/http"

func (s *Server) handleSearchStats(w http.ResponseWriter, r *http.Request) {
	if s.latency == nil {
		jsonError(w, "search stats unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"window":    s.cfg.StatsWindow.String(),
		"overall":   s.latency.Snapshot(),
		"by_source": s.latency.BySource(),
	})
}
