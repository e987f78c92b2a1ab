package text

import (
	"io"
	"strings"

	"github.com/jmgilman/go/chunkread/chunk"
	"github.com/jmgilman/go/chunkread/errors"
)

// Assemble reads src in chunks of chunkSize bytes until it is exhausted and
// returns the decoded text.
//
// Read faults are returned unchanged from the chunk reader
// (errors.CodeReadFault). Invalid UTF-8 fails with errors.CodeDecodeFailed,
// with "chunk" and "offset" context fields locating the first invalid byte
// in the source. On any error the returned string is empty.
//
// Assemble owns src until it returns; src must not be read concurrently.
func Assemble(src io.Reader, chunkSize int, opts ...Option) (string, error) {
	o := newOptions(opts)

	r, err := chunk.NewReader(src, chunkSize, chunk.WithLogger(o.logger))
	if err != nil {
		return "", err
	}

	var asm assembler
	switch o.strategy {
	case PerChunk:
		asm = &perChunk{}
	case Buffered:
		asm = &buffered{}
	default:
		return "", errors.Newf(errors.CodeInvalidInput, "unknown strategy %d", o.strategy)
	}

	for {
		start := r.Offset()
		out, err := r.Next()
		if err != nil {
			return "", err
		}
		if out.Exhausted() || out.Len() == 0 {
			break
		}
		if err := asm.add(out, r.Chunks()-1, start); err != nil {
			o.logger.Warn("chunk decode failed", "strategy", o.strategy.String(), "error", err)
			return "", err
		}
	}

	s, err := asm.result()
	if err != nil {
		o.logger.Warn("decode failed", "strategy", o.strategy.String(), "error", err)
		return "", err
	}

	o.logger.Debug("text assembled",
		"strategy", o.strategy.String(),
		"chunks", r.Chunks(),
		"bytes", r.Offset(),
	)
	return s, nil
}

// assembler accumulates chunks in order and produces the final text.
type assembler interface {
	add(out chunk.Outcome, index int, offset int64) error
	result() (string, error)
}

type perChunk struct {
	sb strings.Builder
}

func (p *perChunk) add(out chunk.Outcome, index int, offset int64) error {
	s, bad, err := decode(out.Text())
	if err != nil {
		return decodeError(err, index, offset+int64(bad))
	}
	p.sb.WriteString(s)
	return nil
}

func (p *perChunk) result() (string, error) {
	return p.sb.String(), nil
}

// buffered keeps the chunk index of every boundary so a decode failure can
// be reported against the chunk that holds the bad byte.
type buffered struct {
	raw    []byte
	starts []int64
}

func (b *buffered) add(out chunk.Outcome, _ int, offset int64) error {
	b.starts = append(b.starts, offset)
	b.raw = out.AppendTo(b.raw)
	return nil
}

func (b *buffered) result() (string, error) {
	s, bad, err := decode(string(b.raw))
	if err != nil {
		index := 0
		for i, start := range b.starts {
			if int64(bad) >= start {
				index = i
			}
		}
		return "", decodeError(err, index, int64(bad))
	}
	return s, nil
}

func decodeError(err error, index int, offset int64) error {
	return errors.WrapWithContext(err, errors.CodeDecodeFailed, "invalid UTF-8", map[string]any{
		"chunk":  index,
		"offset": offset,
	})
}
