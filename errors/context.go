package errors

import "errors"

// WithContext returns a copy of err with one context field added.
// Existing fields are preserved.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "chunk", 3)
func WithContext(err error, key string, value any) Error {
	return WithContextMap(err, map[string]any{key: value})
}

// WithContextMap returns a copy of err with the given fields merged into its
// context. New fields override existing ones with the same key.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]any) Error {
	if err == nil {
		return nil
	}

	coded := asError(err)
	merged := make(map[string]any, len(ctx))
	for k, v := range coded.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &codedError{
		code:           coded.Code(),
		classification: coded.Classification(),
		message:        coded.Message(),
		context:        merged,
		cause:          coded.Unwrap(),
	}
}

// WithClassification returns a copy of err with its classification replaced.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	// a closed file will stay closed
//	err = errors.WithClassification(err, errors.ClassificationPermanent)
func WithClassification(err error, classification ErrorClassification) Error {
	if err == nil {
		return nil
	}

	coded := asError(err)
	return &codedError{
		code:           coded.Code(),
		classification: classification,
		message:        coded.Message(),
		context:        coded.Context(),
		cause:          coded.Unwrap(),
	}
}

// asError finds an Error in err's chain or adapts err into one.
func asError(err error) Error {
	var coded Error
	if errors.As(err, &coded) {
		return coded
	}
	return &codedError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
