package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost Error in err's chain.
// Returns CodeUnknown if err is nil or carries no code.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeDecodeFailed {
//	    // the file is not UTF-8 text
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var coded Error
	if stderrors.As(err, &coded) {
		return coded.Code()
	}

	return CodeUnknown
}

// GetClassification extracts the ErrorClassification from err.
// Returns ClassificationPermanent if err is nil or carries no code, which
// prevents retry loops on errors nobody classified.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var coded Error
	if stderrors.As(err, &coded) {
		return coded.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
