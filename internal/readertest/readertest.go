// Package readertest provides byte sources with awkward end-of-file and fault
// behavior for exercising chunk and text.
//
// The standard testing/iotest readers cover one-byte, half and data-with-EOF
// reads; the readers here cover the remaining cases.
package readertest

import (
	"io"
)

// TailEOF returns a reader over data that reports err in the same call that
// transfers the final bytes, whatever the size of the request. With err set
// to io.ErrUnexpectedEOF it mimics a primitive that fails a short read
// after having copied the partial data into the caller's buffer.
func TailEOF(data []byte, err error) io.Reader {
	return &tailEOF{data: data, err: err}
}

type tailEOF struct {
	data []byte
	err  error
}

func (r *tailEOF) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	if len(r.data) == 0 {
		return n, r.err
	}
	return n, nil
}

// FaultAfter returns a reader that yields data and then fails with err on
// every subsequent call.
func FaultAfter(data []byte, err error) io.Reader {
	return &faultAfter{data: data, err: err}
}

type faultAfter struct {
	data []byte
	err  error
}

func (r *faultAfter) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

// Stalled returns a reader that never makes progress: every call returns
// (0, nil).
func Stalled() io.Reader {
	return stalled{}
}

type stalled struct{}

func (stalled) Read([]byte) (int, error) { return 0, nil }

// Chunky returns a reader over data whose calls transfer at most step bytes,
// interleaving an empty (0, nil) result between transfers.
func Chunky(data []byte, step int) io.Reader {
	return &chunky{data: data, step: step}
}

type chunky struct {
	data []byte
	step int
	idle bool
}

func (r *chunky) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	r.idle = !r.idle
	if r.idle {
		return 0, nil
	}
	n := min(len(p), r.step, len(r.data))
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

// Overcount returns a reader that claims to have read more bytes than the
// buffer holds.
func Overcount() io.Reader {
	return overcount{}
}

type overcount struct{}

func (overcount) Read(p []byte) (int, error) { return len(p) + 1, nil }

// Counting wraps r and records how many times Read was called.
type Counting struct {
	R     io.Reader
	Calls int
}

// Read implements io.Reader.
func (c *Counting) Read(p []byte) (int, error) {
	c.Calls++
	return c.R.Read(p)
}
