package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability.
type ErrorCode string

const (
	// CodeReadFault indicates the byte source could not be read for a reason
	// unrelated to reaching the end of its data.
	CodeReadFault ErrorCode = "READ_FAULT"

	// CodeDecodeFailed indicates bytes were not valid UTF-8.
	CodeDecodeFailed ErrorCode = "DECODE_FAILED"

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeCanceled indicates the operation was canceled by its context.
	CodeCanceled ErrorCode = "CANCELED"

	// CodeInternal indicates an internal consistency check failed.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
