package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/logger"
)

type errorBody struct {
	Code    domain.Kind `json:"code"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err onto a status code and a JSON error body. Internal
// details are logged, never returned.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	if errors.Is(err, context.Canceled) {
		log.Debug("request canceled by client")
		return
	}

	appErr := domain.AsError(err)
	status := statusFor(appErr.Kind)
	switch {
	case status >= 500:
		log.Error("server error: %v", appErr)
	default:
		log.Warn("client error: %v", appErr)
	}

	writeJSON(w, status, map[string]errorBody{
		"error": {Code: appErr.Kind, Message: appErr.Message, Field: appErr.Field},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.InvalidInput("body", "malformed JSON: "+err.Error())
	}
	return nil
}

// decodeOptionalJSON is decodeJSON for endpoints where an empty body means
// "use defaults".
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		return domain.InvalidInput("body", "malformed JSON: "+err.Error())
	}
}
