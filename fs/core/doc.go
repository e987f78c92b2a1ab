// Package core defines the byte-source collaborators used by chunkread.
//
// The chunk and text packages read from any io.Reader. When the source is a
// file, its lifetime is owned by the caller, not by the reader: the file is
// created, filled, rewound and eventually closed and removed outside the read
// loop. This package names that collaborator (File, ScratchFS) and provides
// WithTempFile, which scopes a temporary file to a single callback.
//
// # Providers
//
// ScratchFS is implemented by the fs/billy package for in-memory and local
// storage:
//
//	sfs := billy.NewMemory()
//	err := core.WithTempFile(sfs, "chunkread-", data, func(f core.File) error {
//	    s, err := text.Assemble(f, len(data)+1)
//	    ...
//	})
//
// # Design Philosophy
//
//   - Zero dependencies: only uses the Go standard library
//   - Small interfaces: File is the minimum a scoped scratch file needs
//   - Stdlib compatibility: errors are re-exported from io/fs
package core
