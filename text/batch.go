package text

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/chunkread/errors"
)

// AssembleAll assembles every source in srcs and returns the texts in the
// same order.
//
// Sources are read in parallel, at most WithConcurrency at a time, and each
// source is owned by a single goroutine. The first failure cancels the
// sources that have not started yet and is returned with a "source" context
// field holding its index. Sources not yet started when ctx is canceled
// fail with errors.CodeCanceled. No partial results are returned.
func AssembleAll(ctx context.Context, srcs []io.Reader, chunkSize int, opts ...Option) ([]string, error) {
	o := newOptions(opts)
	texts := make([]string, len(srcs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.concurrency)

	for i, src := range srcs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return errors.WrapWithContext(err, errors.CodeCanceled, "assembly canceled", map[string]any{
					"source": i,
				})
			}

			s, err := Assemble(src, chunkSize, opts...)
			if err != nil {
				return errors.WithContext(err, "source", i)
			}
			texts[i] = s
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		o.logger.Warn("batch assembly failed", "sources", len(srcs), "error", err)
		return nil, err
	}
	return texts, nil
}
