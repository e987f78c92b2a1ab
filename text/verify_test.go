package text

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	cerrors "github.com/jmgilman/go/chunkread/errors"
	"github.com/jmgilman/go/chunkread/fs/billy"
	"github.com/jmgilman/go/chunkread/fs/core"
)

func TestVerifyRoundTrip(t *testing.T) {
	inputs := []string{input, "", "héllo wörld 🙂"}

	for _, sfs := range []core.ScratchFS{billy.NewMemory(), billy.NewLocal(t.TempDir())} {
		for _, s := range inputs {
			require.NoError(t, VerifyRoundTrip(sfs, s), "%s: %q", sfs.Type(), s)
		}
	}
}

func TestVerifyRoundTrip_DetectsLossyPrimitive(t *testing.T) {
	err := VerifyRoundTrip(lossyFS{billy.NewMemory()}, input)
	require.Equal(t, cerrors.CodeInternal, cerrors.GetCode(err))

	var coded cerrors.Error
	require.True(t, cerrors.As(err, &coded))
	require.Equal(t, len(input), coded.Context()["want_bytes"])
	require.Equal(t, 0, coded.Context()["got_bytes"])
}

func TestVerifyRoundTrip_ScratchFailure(t *testing.T) {
	err := VerifyRoundTrip(brokenFS{}, input)
	require.ErrorIs(t, err, errReadOnly)
	require.Equal(t, cerrors.CodeInternal, cerrors.GetCode(err))
}

// lossyFS hands out files whose reads throw away a partial transfer and
// report end-of-file instead, losing the tail of every file.
type lossyFS struct {
	*billy.MemoryFS
}

func (l lossyFS) TempFile(dir, prefix string) (core.File, error) {
	f, err := l.MemoryFS.TempFile(dir, prefix)
	if err != nil {
		return nil, err
	}
	return lossyFile{f}, nil
}

type lossyFile struct {
	core.File
}

func (f lossyFile) Read(p []byte) (int, error) {
	n, err := f.File.Read(p)
	if n < len(p) {
		return 0, io.EOF
	}
	return n, err
}

var errReadOnly = errors.New("read-only filesystem")

type brokenFS struct{}

func (brokenFS) TempFile(string, string) (core.File, error) { return nil, errReadOnly }
func (brokenFS) Remove(string) error                        { return nil }
func (brokenFS) Type() core.FSType                          { return core.FSTypeUnknown }
