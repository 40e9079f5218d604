package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/inkwell-app/inkwell-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError renders an error response. Typed *ApiErr values carry their
// own status code; anything else is logged and collapsed into a generic
// 500 so that store internals never leak to clients.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]interface{}{
			"error":  "Internal Server Error",
			"status": "error",
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Msg(apiErr.GetFullError())
	}

	response := map[string]interface{}{
		"error":  apiErr.Error(),
		"status": "error",
	}

	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}

	if apiErr.Details != "" {
		response["details"] = apiErr.Details
	}

	if apiErr.Cause != nil {
		response["cause"] = apiErr.GetFullError()
	}

	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, response)
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
