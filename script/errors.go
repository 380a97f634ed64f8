package script

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel causes. Compare with errors.Cause.
var (
	ErrParameter             = errors.New("unsupported parameter")
	ErrReturnTypeUnsupported = errors.New("unsupported return type")
	ErrTypeUnsupported       = errors.New("unsupported type")
	ErrUnreadable            = errors.New("variable is unreadable")
	ErrUnwritable            = errors.New("variable is unwritable")
	ErrGlobalRedefined       = errors.New("global redefined")
	ErrTypeMismatch          = errors.New("type mismatch")
)

// scriptError carries a readable message over a sentinel cause
type scriptError struct {
	cause   error
	message string
}

func (e *scriptError) Error() string { return e.message }
func (e *scriptError) Cause() error  { return e.cause }
func (e *scriptError) Unwrap() error { return e.cause }

func newError(cause error, format string, args ...any) error {
	return errors.WithStack(&scriptError{cause: cause, message: fmt.Sprintf(format, args...)})
}
