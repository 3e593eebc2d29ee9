package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// dataResponse wraps a successful payload in the {data: ...} envelope
type dataResponse struct {
	Data any `json:"data"`
}

// errorResponse wraps a failure in the {message: ...} envelope
type errorResponse struct {
	Message string `json:"message"`
}

// WriteData writes an entity wrapped in the data envelope
func WriteData(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	writeJSON(w, status, dataResponse{Data: data}, logger)
}

// WriteError writes an error response in the message envelope
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorResponse{Message: message}, logger)
}

// MethodNotAllowed responds 405 with an empty body for unsupported methods
// on known routes
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}
