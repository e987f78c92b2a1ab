package text

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/chunkread/errors"
	"github.com/jmgilman/go/chunkread/internal/readertest"
)

func TestAssembleAll_PreservesOrder(t *testing.T) {
	want := []string{"first", "", "third: ünïcödé", input, strings.Repeat("x", 300)}

	for _, concurrency := range []int{1, 2, 8} {
		srcs := make([]io.Reader, len(want))
		for i, s := range want {
			srcs[i] = iotest.DataErrReader(strings.NewReader(s))
		}

		got, err := AssembleAll(context.Background(), srcs, 7,
			WithConcurrency(concurrency),
			WithStrategy(Buffered),
		)
		require.NoError(t, err, "concurrency %d", concurrency)
		require.Equal(t, want, got, "concurrency %d", concurrency)
	}
}

func TestAssembleAll_Empty(t *testing.T) {
	got, err := AssembleAll(context.Background(), nil, 4)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestAssembleAll_FirstFaultWins(t *testing.T) {
	boom := stderrors.New("bad sector")
	srcs := []io.Reader{
		strings.NewReader("ok"),
		readertest.FaultAfter([]byte("partial"), boom),
		strings.NewReader("never read"),
	}

	got, err := AssembleAll(context.Background(), srcs, 4, WithConcurrency(1))
	require.Nil(t, got)
	require.ErrorIs(t, err, boom)
	require.Equal(t, errors.CodeReadFault, errors.GetCode(err))

	var coded errors.Error
	require.True(t, errors.As(err, &coded))
	require.Equal(t, 1, coded.Context()["source"])
}

func TestAssembleAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	counting := &readertest.Counting{R: strings.NewReader(input)}
	got, err := AssembleAll(ctx, []io.Reader{counting}, 4)
	require.Nil(t, got)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, errors.CodeCanceled, errors.GetCode(err))
	require.Zero(t, counting.Calls, "canceled sources are never read")
}
