package api

import (
	"net/http"

	"github.com/dgallion1/aidemo/internal/catalog"
)

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"features": catalog.Features()})
}

func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sections": catalog.Nav()})
}
