package errors

import "fmt"

// Error is the error type returned by every chunkread package.
//
// It wraps the underlying cause (if any) so errors.Is and errors.As see
// through it, and adds a code, a retry classification and read-only context
// metadata such as the chunk index or byte offset where a failure occurred.
type Error interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message without the cause.
	Message() string

	// Context returns a copy of the attached metadata, or nil if none.
	Context() map[string]any

	// Unwrap returns the wrapped cause, or nil.
	Unwrap() error
}

// codedError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type codedError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]any
	cause          error
}

// Error formats as "[CODE] message" or "[CODE] message: cause".
func (e *codedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *codedError) Code() ErrorCode {
	return e.code
}

func (e *codedError) Classification() ErrorClassification {
	return e.classification
}

func (e *codedError) Message() string {
	return e.message
}

// Context returns a defensive copy of the context map.
func (e *codedError) Context() map[string]any {
	return copyContext(e.context)
}

func (e *codedError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]any) map[string]any {
	if ctx == nil {
		return nil
	}
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
