package core

import "io"

// FSType represents the underlying type of a ScratchFS implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local, disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// File is a readable, writable and seekable file handle.
//
// Reads follow the io.Reader contract, including the case where a call
// returns n > 0 bytes together with io.EOF.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Name returns the name of the file within its filesystem.
	// Passing it to ScratchFS.Remove removes the file.
	Name() string
}

// ScratchFS creates and removes temporary files.
type ScratchFS interface {
	// TempFile creates a new file in dir whose name starts with prefix and
	// opens it for reading and writing. If dir is empty the provider picks
	// its default temporary directory.
	//
	// The caller is responsible for closing and removing the file.
	TempFile(dir, prefix string) (File, error)

	// Remove removes the named file.
	Remove(name string) error

	// Type returns the underlying filesystem type.
	Type() FSType
}
