package api

import "net/http"

// handleSources lists configured sources and whether each cached one is loaded.
func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sources": s.catalog.Sources()})
}
