package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"edupress/internal/apperr"
	"edupress/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Responder writes JSON responses and maps errors to status codes.
type Responder struct {
	log      logger.Logger
	reporter logger.Reporter
}

// NewResponder creates a Responder. reporter may be nil.
func NewResponder(log logger.Logger, reporter logger.Reporter) *Responder {
	if reporter == nil {
		reporter = logger.NopReporter()
	}
	return &Responder{log: log, reporter: reporter}
}

// JSON writes v with status.
func (rs *Responder) JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		rs.log.Error(err, "failed to encode response")
	}
}

// Error writes err as a JSON error. Unclassified errors become a generic 500 and are
// reported.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperr.As(err)
	if !ok {
		rs.log.With(map[string]interface{}{"path": r.URL.Path}).Error(err, "request failed")
		rs.reporter.Report(err, map[string]string{"path": r.URL.Path, "method": r.Method})
		rs.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	status := appErr.Status()
	if status >= http.StatusInternalServerError {
		rs.log.With(map[string]interface{}{"path": r.URL.Path}).Error(err, "request failed")
		rs.reporter.Report(err, map[string]string{"path": r.URL.Path, "method": r.Method})
	}
	rs.JSON(w, status, errorResponse{Error: appErr.Message, Field: appErr.Field})
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Validation("body", "request body is empty")
		}
		return apperr.Validation("body", "request body is not valid JSON")
	}
	return nil
}
