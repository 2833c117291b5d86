// Package bridge turns typed requests into AppleScript programs, runs them
// through osascript, and decodes the results into discriminated outcomes.
//
// Data flows one direction: validation → composition → execution →
// classification. No value reaches the composer without passing the
// validation gate, because the script side has no parameterized-query
// mechanism and every value is textually interpolated.
package bridge

import "fmt"

// ErrorKind is the closed set of failure categories produced by the bridge.
type ErrorKind string

const (
	ErrTaskNotFound      ErrorKind = "TASK_NOT_FOUND"
	ErrProjectNotFound   ErrorKind = "PROJECT_NOT_FOUND"
	ErrTagNotFound       ErrorKind = "TAG_NOT_FOUND"
	ErrFolderNotFound    ErrorKind = "FOLDER_NOT_FOUND"
	ErrNotRunning        ErrorKind = "OMNIFOCUS_NOT_RUNNING"
	ErrInvalidDateFormat ErrorKind = "INVALID_DATE_FORMAT"
	ErrInvalidIDFormat   ErrorKind = "INVALID_ID_FORMAT"
	ErrAppleScript       ErrorKind = "APPLESCRIPT_ERROR"
	ErrJSONParse         ErrorKind = "JSON_PARSE_ERROR"
	ErrValidation        ErrorKind = "VALIDATION_ERROR"
	ErrUnknown           ErrorKind = "UNKNOWN_ERROR"
)

// StructuredError is created at the point of failure detection and
// propagated unchanged up the call chain. Details carries raw diagnostic
// text verbatim and must never be discarded in favor of a generic message.
type StructuredError struct {
	Code    ErrorKind `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// NewError is the only constructor for StructuredError, keeping Code inside
// the closed ErrorKind set.
func NewError(code ErrorKind, message string, details ...string) *StructuredError {
	e := &StructuredError{Code: code, Message: message}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

func (e *StructuredError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Outcome is the universal return shape for every bridge and domain
// operation. Exactly one of Data/Err is meaningful depending on Success;
// callers branch on Success instead of catching anything.
type Outcome[T any] struct {
	Success bool             `json:"success"`
	Data    T                `json:"data,omitempty"`
	Err     *StructuredError `json:"error,omitempty"`
}

// OK wraps a payload in a success outcome.
func OK[T any](data T) Outcome[T] {
	return Outcome[T]{Success: true, Data: data}
}

// Fail wraps a structured error in a failure outcome. A nil error is
// normalized to UNKNOWN_ERROR so callers never see a failure without a
// populated error.
func Fail[T any](err *StructuredError) Outcome[T] {
	if err == nil {
		err = NewError(ErrUnknown, "unknown error")
	}
	return Outcome[T]{Success: false, Err: err}
}

// Convert re-shapes a failure outcome to a different payload type. It must
// only be called on failures; the error is carried over unchanged.
func Convert[T, U any](out Outcome[U]) Outcome[T] {
	return Fail[T](out.Err)
}
