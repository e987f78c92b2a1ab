package text

import (
	"log/slog"
	"runtime"
)

// Strategy selects how chunks are decoded.
type Strategy int

const (
	// PerChunk decodes every chunk independently and joins the results.
	PerChunk Strategy = iota
	// Buffered joins the raw bytes of every chunk and decodes them once.
	Buffered
)

// String returns a string representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case PerChunk:
		return "per-chunk"
	case Buffered:
		return "buffered"
	default:
		return "unknown"
	}
}

// Option configures assembly.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	strategy    Strategy
	concurrency int
}

func newOptions(opts []Option) options {
	o := options{
		logger:      slog.New(slog.DiscardHandler),
		strategy:    PerChunk,
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger for assembly and for the underlying chunk
// reader. Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrategy selects the decoding strategy. The default is PerChunk.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithConcurrency bounds how many sources AssembleAll reads at once.
// Values below one are ignored. The default is GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
