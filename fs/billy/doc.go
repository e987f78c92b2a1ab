// Package billy provides go-billy backed implementations of core.ScratchFS.
//
// MemoryFS wraps go-billy's memfs and is the usual choice for tests and
// self-checks. LocalFS wraps osfs rooted at a directory on disk, for
// exercising real operating-system file reads.
//
// Usage:
//
//	sfs := billy.NewMemory()
//	err := core.WithTempFile(sfs, "chunkread-", data, fn)
//
//	// Real files under a directory
//	sfs := billy.NewLocal(t.TempDir())
//
// # Thread Safety
//
// MemoryFS and LocalFS are safe for concurrent use by multiple goroutines.
// File handles are not safe for concurrent use.
package billy
