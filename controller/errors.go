package controller

import (
	"errors"
	"fmt"
)

var (
	// ErrForbidden means the principal is authenticated but the access
	// matrix denies the action.
	ErrForbidden = errors.New("forbidden")
	// ErrBadCredentials is deliberately vague; login failures never say
	// whether the username or the password was wrong.
	ErrBadCredentials = errors.New("invalid credentials")
)

// ValidationError reports a malformed or out-of-range field on a write.
// The message is meant for the caller so they can fix the request.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a field validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
