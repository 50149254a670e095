// Package respond centralizes JSON response writing and the mapping from
// handler failures to the API's error contract: every failure body is a
// JSON object with a single human-readable "message" field.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// messageBody is the uniform failure (and simple-success) body shape.
type messageBody struct {
	Message string `json:"message"`
}

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes a {"message": ...} body with the given status code.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, messageBody{Message: msg})
}

// ErrorLogger pairs error responses with structured logging so handlers
// log the real failure while clients only see a stable message.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// ServerError logs err with logMsg and responds 500 with userMsg.
func (e *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	Message(w, http.StatusInternalServerError, userMsg)
}
