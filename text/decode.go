package text

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/jmgilman/go/chunkread/errors"
)

// Decode decodes b strictly as UTF-8.
//
// Any malformed sequence, including a truncated trailing codepoint or an
// encoded surrogate, fails with errors.CodeDecodeFailed. The error wraps
// encoding.ErrInvalidUTF8 and carries an "offset" context field holding the
// index of the first invalid byte.
func Decode(b []byte) (string, error) {
	s, bad, err := decode(string(b))
	if err != nil {
		return "", errors.WrapWithContext(err, errors.CodeDecodeFailed, "invalid UTF-8", map[string]any{
			"offset": int64(bad),
		})
	}
	return s, nil
}

// decode validates s and returns it unchanged, or the index of the first
// byte that could not be decoded and the validator's error.
func decode(s string) (string, int, error) {
	out, n, err := transform.String(encoding.UTF8Validator, s)
	if err != nil {
		return "", n, err
	}
	return out, 0, nil
}
