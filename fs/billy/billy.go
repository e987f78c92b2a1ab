package billy

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/chunkread/fs/core"
)

// LocalFS wraps billy's osfs for scratch files on the local disk.
type LocalFS struct {
	bfs billy.Filesystem
}

// MemoryFS wraps billy's memfs for in-memory scratch files.
type MemoryFS struct {
	bfs billy.Filesystem
}

// NewLocal creates a go-billy backed local filesystem rooted at dir.
// Temporary files are created beneath dir.
func NewLocal(dir string) *LocalFS {
	return &LocalFS{
		bfs: osfs.New(dir),
	}
}

// NewMemory creates a go-billy backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory() *MemoryFS {
	return &MemoryFS{
		bfs: memfs.New(),
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (lfs *LocalFS) Unwrap() billy.Filesystem {
	return lfs.bfs
}

// Unwrap returns the underlying billy.Filesystem.
func (mfs *MemoryFS) Unwrap() billy.Filesystem {
	return mfs.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	if path == "" {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(path))
}

// tempFile creates a uniquely named file through billy's util package.
// An empty dir lets billy choose its default temporary directory.
func tempFile(bfs billy.Filesystem, dir, prefix string) (core.File, error) {
	f, err := util.TempFile(bfs, normalize(dir), prefix)
	if err != nil {
		return nil, err
	}
	return &File{file: f, name: f.Name()}, nil
}

// TempFile creates a new temporary file opened for reading and writing.
func (lfs *LocalFS) TempFile(dir, prefix string) (core.File, error) {
	return tempFile(lfs.bfs, dir, prefix)
}

// Remove removes the named file.
func (lfs *LocalFS) Remove(name string) error {
	return lfs.bfs.Remove(normalize(name))
}

// Type returns core.FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// TempFile creates a new temporary file opened for reading and writing.
func (mfs *MemoryFS) TempFile(dir, prefix string) (core.File, error) {
	return tempFile(mfs.bfs, dir, prefix)
}

// Remove removes the named file.
func (mfs *MemoryFS) Remove(name string) error {
	return mfs.bfs.Remove(normalize(name))
}

// Type returns core.FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// Compile-time interface checks.
var (
	_ core.ScratchFS = (*LocalFS)(nil)
	_ core.ScratchFS = (*MemoryFS)(nil)
)
