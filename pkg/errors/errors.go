package errors

import (
	goerrors "errors"
	"fmt"
)

// ContextError annotates an error with a short string describing the
// operation that failed. The wrapped error is recoverable with Unwrap.
type ContextError struct {
	Context string
	Err     error
}

func (err ContextError) Error() string {
	return fmt.Sprintf("%s: %s", err.Context, err.Err)
}

// Unwrap returns the wrapped error.
func (err ContextError) Unwrap() error {
	return err.Err
}

// New returns an error with the given message.
func New(message string) error {
	return goerrors.New(message)
}

// Errorf returns an error with the formatted message.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// WithContext annotates err with context. It returns nil if err is nil so
// that callers can wrap unconditionally.
func WithContext(err error, context string) error {
	if err == nil {
		return nil
	}
	return ContextError{Context: context, Err: err}
}

// FriendlyError is an error whose message is written for end users. Fatal
// error handling prints it without any wrapping or log decoration.
type FriendlyError struct {
	Message string
}

func (err FriendlyError) Error() string {
	return err.Message
}

// FriendlyMessage returns the user-facing message.
func (err FriendlyError) FriendlyMessage() string {
	return err.Message
}

// NewFriendlyError creates a FriendlyError with the formatted message.
func NewFriendlyError(format string, args ...interface{}) FriendlyError {
	return FriendlyError{Message: fmt.Sprintf(format, args...)}
}

// GetPrintableMessage returns the message that should be shown to the user
// for the given error.
func GetPrintableMessage(err error) string {
	type friendly interface {
		FriendlyMessage() string
	}
	if friendlyErr, ok := err.(friendly); ok {
		return friendlyErr.FriendlyMessage()
	}
	return err.Error()
}
