package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	apperrors "healthcare/internal/errors"
	"healthcare/internal/logger"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       any               `json:"data,omitempty"`
	Token      string            `json:"token,omitempty"`
	Pagination any               `json:"pagination,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, code int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func respondOK(w http.ResponseWriter, message string, data any) {
	respondWithJSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.StatusCode(err)
	body := Envelope{Success: false, Message: err.Error()}

	var appErr *apperrors.AppError
	var httpErr *apperrors.HTTPError
	switch {
	case stderrors.As(err, &appErr):
		body.Message = appErr.Message
		body.Errors = appErr.Fields
	case stderrors.As(err, &httpErr):
		body.Message = httpErr.Message
	}

	if code >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error().Err(err).Int("status", code).Msg("request failed")
		if code == http.StatusInternalServerError {
			body.Message = "Internal server error"
		}
	}
	respondWithJSON(w, code, body)
}

// decodeJSON reads the request body into dst; a malformed body is a 400.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}
