package helper

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// AppError is an expected, user-facing failure. Anything else reaching the
// error handler is treated as a programming or upstream error.
type AppError struct {
	StatusCode    int
	Message       string
	IsOperational bool
	cause         error
}

func NewAppError(message string, statusCode int) *AppError {
	return &AppError{
		StatusCode:    statusCode,
		Message:       message,
		IsOperational: true,
		cause:         errors.New(message),
	}
}

// WrapAppError keeps err (and its stack) as the cause of an operational error.
func WrapAppError(err error, message string, statusCode int) *AppError {
	return &AppError{
		StatusCode:    statusCode,
		Message:       message,
		IsOperational: true,
		cause:         errors.WithStack(err),
	}
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.cause }

// Status is "fail" for client errors and "error" for everything else.
func (e *AppError) Status() string { return StatusLabel(e.StatusCode) }

func StatusLabel(code int) string {
	if code >= 400 && code < 500 {
		return "fail"
	}
	return "error"
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// StackOf returns the deepest recorded stack in err's chain, or "".
func StackOf(err error) string {
	var found errors.StackTrace
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			found = st.StackTrace()
		}
	}
	if found == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%+v", found))
}

// NewValidator returns a validator reporting json field names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}
