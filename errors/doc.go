// Package errors provides the structured errors returned by chunkread.
//
// Every failure surfaced by the chunk and text packages is an Error carrying
// an ErrorCode, a retry classification, optional context metadata and the
// underlying cause. Errors remain compatible with the standard library
// (errors.Is, errors.As, errors.Unwrap), so the original I/O error of a read
// fault is always reachable:
//
//	s, err := text.Assemble(f, 4096)
//	if errors.GetCode(err) == errors.CodeReadFault {
//	    if errors.Is(err, fs.ErrClosed) {
//	        // the file was closed underneath us
//	    }
//	}
//
// # Error Codes
//
//   - CodeReadFault: the byte source failed for a reason other than running
//     out of data
//   - CodeDecodeFailed: a chunk was not valid UTF-8 under strict decoding
//   - CodeInvalidInput: a caller passed an unusable argument (chunk size, nil
//     source)
//   - CodeCanceled: a batch operation was canceled through its context
//   - CodeInternal: an internal consistency check failed
//   - CodeUnknown: fallback for errors that carry no code
//
// End-of-file and short reads are never errors; they terminate a read loop
// normally.
//
// # Classification
//
// Read faults are retryable by default since re-opening the source may
// succeed. Everything else is permanent. Nothing in chunkread retries on its
// own; the classification is advice for callers.
package errors
