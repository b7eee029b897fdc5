// Package errors carries HTTP-aware errors through gin's error list so a
// single middleware renders them.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error pairs a status code with the message shown to the client. Err is
// the cause and is only ever logged.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on code and message so wrapped copies still equal the
// package-level values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Wrap returns a copy of base carrying err as its cause.
func Wrap(base *Error, err error) *Error {
	return New(base.Code, base.Message, err)
}

var (
	ErrNoToken        = New(http.StatusUnauthorized, "No token provided", nil)
	ErrInvalidToken   = New(http.StatusUnauthorized, "Unauthorized: Invalid token", nil)
	ErrForbidden      = New(http.StatusForbidden, "Forbidden: admin only", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// ErrorMiddleware renders the last error pushed with c.Error as
// {ok:false,error}. Anything that is not an *Error becomes a plain 500.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		var appErr *Error
		if !errors.As(c.Errors.Last().Err, &appErr) {
			appErr = ErrInternalServer
		}
		c.JSON(appErr.Code, gin.H{"ok": false, "error": appErr.Message})
	}
}
