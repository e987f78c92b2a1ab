package chunk

import (
	stderrors "errors"
	"io"
	"slices"

	"github.com/jmgilman/go/chunkread/errors"
)

// maxConsecutiveEmptyReads bounds how many (0, nil) results a source may
// return in a row before it is treated as broken. Same limit as bufio.
const maxConsecutiveEmptyReads = 100

// initialBufferSize caps the first allocation of a chunk buffer. The buffer
// grows toward maxBytes only as the source delivers data.
const initialBufferSize = 64 << 10

var errInvalidCount = stderrors.New("chunk: reader returned invalid count")

// Next transfers up to maxBytes bytes from src's current position.
//
// The primitive is called repeatedly until the chunk is full or the source
// reports a condition. Every byte transferred is kept, including bytes
// returned in the same call as io.EOF or io.ErrUnexpectedEOF. A short chunk
// therefore means the source ended; the following call returns Exhausted.
//
// Errors other than end-of-file are returned as errors.CodeReadFault
// wrapping the original error. Bytes transferred before the fault are still
// present in the returned Outcome so callers can inspect them, but the read
// must be treated as failed.
//
// Next returns errors.CodeInvalidInput if src is nil or maxBytes is not
// positive. Any positive maxBytes is accepted; memory is allocated for the
// bytes actually transferred, not for the request.
func Next(src io.Reader, maxBytes int) (Outcome, error) {
	if err := validate(src, maxBytes); err != nil {
		return Outcome{}, err
	}

	buf, err := fill(src, maxBytes)
	n := len(buf)
	out := newOutcome(buf, maxBytes)
	if err != nil {
		return out, errors.WrapWithContext(err, errors.CodeReadFault, "read failed", map[string]any{
			"transferred": n,
			"requested":   maxBytes,
		})
	}
	return out, nil
}

func validate(src io.Reader, maxBytes int) error {
	if src == nil {
		return errors.New(errors.CodeInvalidInput, "source must not be nil")
	}
	if maxBytes <= 0 {
		return errors.Newf(errors.CodeInvalidInput, "chunk size %d must be positive", maxBytes)
	}
	return nil
}

// fill reads up to maxBytes bytes from src until the limit is reached, the
// source ends or a fault occurs. The buffer starts at initialBufferSize (or
// maxBytes if smaller) and doubles while the source keeps delivering.
// It returns the bytes transferred and a non-nil error only for faults.
// End-of-file is absorbed.
func fill(src io.Reader, maxBytes int) ([]byte, error) {
	buf := make([]byte, 0, min(maxBytes, initialBufferSize))
	empty := 0
	for len(buf) < maxBytes {
		if len(buf) == cap(buf) {
			buf = slices.Grow(buf, min(cap(buf), maxBytes-len(buf)))
		}
		room := buf[len(buf):min(cap(buf), maxBytes)]

		m, err := src.Read(room)
		if m < 0 || m > len(room) {
			return buf, errInvalidCount
		}
		buf = buf[:len(buf)+m]

		if err != nil {
			if isEOF(err) {
				return buf, nil
			}
			return buf, err
		}

		if m > 0 {
			empty = 0
			continue
		}
		empty++
		if empty >= maxConsecutiveEmptyReads {
			return buf, io.ErrNoProgress
		}
	}
	return buf, nil
}

// isEOF reports whether err signals the end of the data rather than a fault.
func isEOF(err error) bool {
	return stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF)
}
