package kit

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Error is a terminal request error carrying the HTTP status it maps to.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string { return e.Msg }

func NotFound(msg string) *Error     { return &Error{Status: http.StatusNotFound, Msg: msg} }
func BadRequest(msg string) *Error   { return &Error{Status: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) *Error { return &Error{Status: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) *Error    { return &Error{Status: http.StatusForbidden, Msg: msg} }

// StatusOf returns the status carried by err, or 500 for anything else.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// Fail writes err as a JSON error response. Errors without a status are logged
// and hidden behind a generic 500.
func Fail(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var e *Error
	if errors.As(err, &e) {
		WriteError(w, r, e.Status, err.Error(), nil)
		return
	}

	if log != nil {
		log.Error("request failed",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
	}
	WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
