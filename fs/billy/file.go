package billy

import (
	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/chunkread/fs/core"
)

// File wraps billy.File to implement core.File.
// It stores the filename since billy.File.Name() may return different formats
// depending on the backend implementation.
type File struct {
	file billy.File
	name string
}

// Read implements io.Reader.
// Delegates directly to the underlying billy.File, so a backend that returns
// data together with io.EOF is passed through unchanged.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Close implements io.Closer.
func (f *File) Close() error {
	return f.file.Close()
}

// Name returns the name the file was created with.
func (f *File) Name() string {
	return f.name
}

var _ core.File = (*File)(nil)
