package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/khushprajapati/portfolio-backend/errs"
)

// envelope is the uniform response shape for every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) writeJSON(w http.ResponseWriter, statusCode int, payload envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal first so an encoding failure can still produce a clean 500
	jsonData, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteData writes a success envelope carrying data.
func (r Responder) WriteData(w http.ResponseWriter, statusCode int, data any) {
	r.writeJSON(w, statusCode, envelope{Success: true, Data: data})
}

// WriteMessage writes a success envelope carrying a human-readable message,
// optionally with data.
func (r Responder) WriteMessage(w http.ResponseWriter, statusCode int, message string, data any) {
	r.writeJSON(w, statusCode, envelope{Success: true, Message: message, Data: data})
}

// WriteError maps an error to the envelope. Expected failures carry their own
// status code; anything else is logged with its full cause chain and reported
// as a generic internal error, never exposing internals to the caller.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.writeJSON(w, http.StatusInternalServerError, envelope{
			Success: false,
			Message: "Something went wrong!",
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg(apiErr.Error())
	}

	r.writeJSON(w, apiErr.StatusCode, envelope{
		Success: false,
		Message: apiErr.Error(),
	})
}

// wrapDatabaseError wraps a storage error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
