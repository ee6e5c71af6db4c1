package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/search"
)

type searchRequest struct {
	Word     string `json:"word"`
	Book     string `json:"book"`
	SourceID string `json:"source_id"`
	Mode     string `json:"mode"`
}

// handleSearch answers {word, book, mode} with remedy -> [{section, text}].
// Blank input, an unknown book, or no matches all answer {}.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestBytes)

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	book := req.Book
	if book == "" {
		book = req.SourceID
	}
	highlight, _ := strconv.ParseBool(r.URL.Query().Get("highlight"))
	annotate(r, book, req.Mode)

	result, err := s.engine.Search(r.Context(), search.Request{
		Word:      req.Word,
		Book:      book,
		Mode:      search.Mode(req.Mode),
		Highlight: highlight,
	})
	if err != nil {
		s.log.Error("search failed", "source", book, "error", err)
		jsonError(w, "search failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
