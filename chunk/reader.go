package chunk

import (
	"io"
	"log/slog"

	"github.com/jmgilman/go/chunkread/errors"
)

// Reader reads consecutive chunks of a fixed size from one source.
//
// A Reader keeps no data between calls. It tracks how many chunks it has
// produced and how many bytes it has surfaced so that faults can be reported
// with their position. A Reader is not safe for concurrent use.
type Reader struct {
	src    io.Reader
	size   int
	offset int64
	chunks int
	logger *slog.Logger
}

// Option configures a Reader.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for per-chunk debug records and fault
// warnings. Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewReader creates a Reader that transfers up to size bytes per chunk.
// It returns errors.CodeInvalidInput if src is nil or size is not positive.
func NewReader(src io.Reader, size int, opts ...Option) (*Reader, error) {
	if err := validate(src, size); err != nil {
		return nil, err
	}

	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return &Reader{
		src:    src,
		size:   size,
		logger: o.logger,
	}, nil
}

// Next reads the next chunk. See the package-level Next for the outcome and
// error rules. Read faults carry "chunk" and "offset" context fields naming
// the chunk index and the number of bytes surfaced before the fault.
func (r *Reader) Next() (Outcome, error) {
	out, err := Next(r.src, r.size)
	if err != nil {
		r.logger.Warn("chunk read fault",
			"chunk", r.chunks,
			"offset", r.offset,
			"transferred", out.Len(),
			"error", err,
		)
		return out, errors.WithContextMap(err, map[string]any{
			"chunk":  r.chunks,
			"offset": r.offset,
		})
	}

	if out.Exhausted() {
		r.logger.Debug("source exhausted", "chunks", r.chunks, "bytes", r.offset)
		return out, nil
	}

	r.logger.Debug("chunk read",
		"chunk", r.chunks,
		"offset", r.offset,
		"size", out.Len(),
		"short", out.Short(),
	)
	r.offset += int64(out.Len())
	r.chunks++
	return out, nil
}

// Size returns the maximum number of bytes requested per chunk.
func (r *Reader) Size() int {
	return r.size
}

// Offset returns the number of bytes surfaced in Data outcomes so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Chunks returns the number of Data outcomes produced so far.
func (r *Reader) Chunks() int {
	return r.chunks
}
