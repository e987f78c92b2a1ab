package core

import (
	"errors"
	"io"
)

// WithTempFile creates a temporary file in sfs, writes data to it, rewinds it
// to the start and passes it to fn. The file is closed and removed after fn
// returns, whether or not fn failed.
//
// The error from fn takes precedence over cleanup errors. fn may close the
// file itself; a second close is not reported.
//
// Example:
//
//	err := core.WithTempFile(billy.NewMemory(), "input-", []byte("hello"), func(f core.File) error {
//	    got, err := text.Assemble(f, 6)
//	    ...
//	})
func WithTempFile(sfs ScratchFS, prefix string, data []byte, fn func(File) error) (err error) {
	f, err := sfs.TempFile("", prefix)
	if err != nil {
		return err
	}
	name := f.Name()

	defer func() {
		if cerr := f.Close(); cerr != nil && !errors.Is(cerr, ErrClosed) && err == nil {
			err = cerr
		}
		if rerr := sfs.Remove(name); rerr != nil && !errors.Is(rerr, ErrNotExist) && err == nil {
			err = rerr
		}
	}()

	if _, err := f.Write(data); err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	return fn(f)
}
