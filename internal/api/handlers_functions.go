package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/dgallion1/aidemo/internal/functioncall"
	"github.com/dgallion1/aidemo/internal/metrics"
)

func (s *Server) handleSQL(w http.ResponseWriter, r *http.Request) {
	prompt, err := s.readInput(w, r, "prompt")
	if err != nil {
		writeInputError(w, err)
		return
	}

	start := time.Now()
	res, err := functioncall.RunSQL(prompt)
	s.observe(metrics.DemoSQL, err, time.Since(start))
	if err != nil {
		s.writeFunctionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleCreditScore(w http.ResponseWriter, r *http.Request) {
	prompt, err := s.readInput(w, r, "prompt")
	if err != nil {
		writeInputError(w, err)
		return
	}

	start := time.Now()
	res, err := functioncall.RunCredit(prompt)
	s.observe(metrics.DemoCredit, err, time.Since(start))
	if err != nil {
		s.writeFunctionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleCreditSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, functioncall.CreditScoreSchema)
}

// writeFunctionError reports prompts the demos could not interpret as 422.
func (s *Server) writeFunctionError(w http.ResponseWriter, err error) {
	if errors.Is(err, functioncall.ErrUnknownOperation) || errors.Is(err, functioncall.ErrMissingParams) {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.log.Error().Err(err).Msg("function call")
	jsonError(w, "function call failed", http.StatusInternalServerError)
}
