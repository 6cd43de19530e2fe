package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dgallion1/aidemo/internal/metrics"
	"github.com/dgallion1/aidemo/internal/qa"
)

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	question, err := s.readInput(w, r, "question")
	if err != nil {
		writeInputError(w, err)
		return
	}

	start := time.Now()
	res, err := s.qa.Ask(r.Context(), question)
	s.observe(metrics.DemoQA, err, time.Since(start))

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, qa.ErrEmptyQuestion):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		jsonError(w, "request cancelled", http.StatusServiceUnavailable)
	default:
		s.log.Error().Err(err).Msg("answer question")
		jsonError(w, "failed to answer question", http.StatusInternalServerError)
	}
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.qa.Document())
}

// observe records one demo call in both the Prometheus instruments and the
// rolling latency window.
func (s *Server) observe(demo string, err error, d time.Duration) {
	metrics.RecordDemo(demo, err, d)
	if s.latency != nil {
		s.latency.Record(demo, d, err)
	}
}
