package errors

// ErrorClassification indicates whether retrying the failed operation could
// succeed.
type ErrorClassification string

const (
	// ClassificationRetryable indicates a failure that may not recur, such as
	// a transient I/O fault.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates a failure that will recur on the same
	// input, such as malformed UTF-8.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeReadFault: ClassificationRetryable,

	CodeDecodeFailed: ClassificationPermanent,
	CodeInvalidInput: ClassificationPermanent,
	CodeCanceled:     ClassificationPermanent,
	CodeInternal:     ClassificationPermanent,
	CodeUnknown:      ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Codes missing from the table are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
