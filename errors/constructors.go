package errors

import (
	"errors"
	"fmt"
)

// New creates an Error with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "chunk size must be positive")
func New(code ErrorCode, message string) Error {
	return &codedError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates an Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "chunk size %d must be positive", size)
func Newf(code ErrorCode, format string, args ...any) Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message while keeping it reachable through
// Unwrap. If err already carries a classification it is preserved.
//
// Returns nil if err is nil.
//
// Example:
//
//	n, err := src.Read(buf)
//	if err != nil && err != io.EOF {
//	    return errors.Wrap(err, errors.CodeReadFault, "read failed")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single
// operation. The context map is copied.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeReadFault, "read failed", map[string]any{
//	    "chunk":  index,
//	    "offset": offset,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]any) Error {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var coded Error
	if errors.As(err, &coded) {
		classification = coded.Classification()
	}

	return &codedError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
