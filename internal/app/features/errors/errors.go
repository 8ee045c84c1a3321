// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger centralizes error logging for feature handlers so log lines
// carry the same fields everywhere.
type ErrorLogger struct {
	Log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError records a 5xx-class failure.
func (e *ErrorLogger) LogServerError(r *http.Request, msg string, err error) {
	e.Log.Error(msg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
}

// LogBadRequest records a client error worth noticing (malformed IDs,
// invalid JSON). Logged at Info; these are routine.
func (e *ErrorLogger) LogBadRequest(r *http.Request, msg string, err error) {
	e.Log.Info(msg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
}
