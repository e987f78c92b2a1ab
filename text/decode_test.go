package text

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"

	"github.com/jmgilman/go/chunkread/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    string
		wantErr bool
		offset  int64
	}{
		{name: "empty", in: nil, want: ""},
		{name: "ascii", in: []byte(input), want: input},
		{name: "multibyte", in: []byte("naïve café"), want: "naïve café"},
		{name: "four byte", in: []byte("🙂"), want: "🙂"},
		{name: "invalid start", in: []byte{0xff}, wantErr: true, offset: 0},
		{name: "truncated", in: []byte("abc\xf0\x9f\x99"), wantErr: true, offset: 3},
		{name: "invalid middle", in: []byte("ab\x80cd"), wantErr: true, offset: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if !tt.wantErr {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
				return
			}

			require.Empty(t, got)
			require.ErrorIs(t, err, encoding.ErrInvalidUTF8)

			var coded errors.Error
			require.True(t, errors.As(err, &coded))
			require.Equal(t, errors.CodeDecodeFailed, coded.Code())
			require.Equal(t, tt.offset, coded.Context()["offset"])
		})
	}
}
