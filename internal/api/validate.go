package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"
)

// inputError is a client mistake reported with status 400 or 413.
type inputError struct {
	msg  string
	code int
}

func (e *inputError) Error() string { return e.msg }

// readInput decodes a JSON object body and returns the trimmed string stored
// under field. Blank and oversized values are rejected.
func (s *Server) readInput(w http.ResponseWriter, r *http.Request, field string) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return "", &inputError{fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge}
		case errors.Is(err, io.EOF):
			return "", &inputError{"request body is required", http.StatusBadRequest}
		default:
			return "", &inputError{"invalid JSON body", http.StatusBadRequest}
		}
	}

	var value string
	if raw, ok := body[field]; ok {
		if err := json.Unmarshal(raw, &value); err != nil {
			return "", &inputError{field + " must be a string", http.StatusBadRequest}
		}
	}
	value = strings.TrimSpace(value)

	if value == "" {
		return "", &inputError{field + " is required", http.StatusBadRequest}
	}
	if n := utf8.RuneCountInString(value); n > s.cfg.MaxInputChars {
		return "", &inputError{fmt.Sprintf("%s exceeds %d characters", field, s.cfg.MaxInputChars), http.StatusBadRequest}
	}
	return value, nil
}

func writeInputError(w http.ResponseWriter, err error) {
	var ie *inputError
	if errors.As(err, &ie) {
		jsonError(w, ie.msg, ie.code)
		return
	}
	jsonError(w, err.Error(), http.StatusBadRequest)
}
