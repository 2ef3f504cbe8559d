package auth

import (
	"errors"
)

// NetworkErrorMessage is shown when the server could not be reached.
const NetworkErrorMessage = "Network error"

// Error is a failed auth call. Message is meant for the user and is shown
// verbatim.
type Error struct {
	Status  int    // HTTP status, 0 for transport failures
	Code    string // server error code, e.g. USER_ALREADY_EXISTS
	Message string
	Err     error // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError returns an *Error carrying only a message.
func NewError(message string) error {
	return &Error{Message: message}
}

// Message extracts the user-facing message from err. Errors that are not
// an *Error fall back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return err.Error()
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == 0 && ae.Message == NetworkErrorMessage
}
