package utils

import "github.com/pkg/errors"

// MakeError returns a formatted error carrying the call stack.
func MakeError(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

// MakeErrorTrace wraps err with a formatted message. A nil err yields a
// fresh error, same as MakeError.
func MakeErrorTrace(err error, format string, args ...any) error {
	if err == nil {
		return errors.Errorf(format, args...)
	}
	return errors.Wrapf(err, format, args...)
}
