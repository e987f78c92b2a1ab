package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := New(CodeInvalidInput, "nil source")
	wrapped := Wrap(sentinel, CodeInternal, "self-check failed")

	require.True(t, Is(wrapped, sentinel))
	require.False(t, Is(wrapped, New(CodeInvalidInput, "nil source")))
}

func TestAs(t *testing.T) {
	err := Wrap(fs.ErrClosed, CodeReadFault, "read failed")

	var coded Error
	require.True(t, As(err, &coded))
	require.Equal(t, CodeReadFault, coded.Code())

	var pathErr *fs.PathError
	require.False(t, As(err, &pathErr))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, CodeUnknown},
		{"standard error", stderrors.New("x"), CodeUnknown},
		{"coded", New(CodeDecodeFailed, "x"), CodeDecodeFailed},
		{"outermost wins", Wrap(New(CodeReadFault, "x"), CodeInternal, "y"), CodeInternal},
		{"behind fmt wrap", fmtWrap(New(CodeReadFault, "x")), CodeReadFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestGetClassification_Defaults(t *testing.T) {
	require.Equal(t, ClassificationPermanent, GetClassification(nil))
	require.Equal(t, ClassificationPermanent, GetClassification(stderrors.New("x")))
	require.Equal(t, ClassificationRetryable, GetClassification(New(CodeReadFault, "x")))
}

type wrapper struct{ err error }

func (w wrapper) Error() string { return "wrapped: " + w.err.Error() }
func (w wrapper) Unwrap() error { return w.err }

func fmtWrap(err error) error { return wrapper{err: err} }
