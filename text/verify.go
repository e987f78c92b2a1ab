package text

import (
	"github.com/jmgilman/go/chunkread/errors"
	"github.com/jmgilman/go/chunkread/fs/core"
)

// VerifyRoundTrip checks that input survives a write to a scratch file and
// a chunked read back with a chunk size one byte larger than the file.
//
// That size makes every read request run past the end of the data, which is
// where readers that drop bytes delivered together with end-of-file lose the
// whole file. A mismatch fails with errors.CodeInternal.
func VerifyRoundTrip(sfs core.ScratchFS, input string, opts ...Option) error {
	data := []byte(input)

	err := core.WithTempFile(sfs, "chunkread-verify-", data, func(f core.File) error {
		got, err := Assemble(f, len(data)+1, opts...)
		if err != nil {
			return err
		}
		if got != input {
			return errors.WithContextMap(
				errors.New(errors.CodeInternal, "assembled text does not match input"),
				map[string]any{
					"want_bytes": len(data),
					"got_bytes":  len(got),
					"fs":         sfs.Type().String(),
				},
			)
		}
		return nil
	})
	if err != nil && errors.GetCode(err) == errors.CodeUnknown {
		return errors.Wrap(err, errors.CodeInternal, "scratch file failed")
	}
	return err
}
