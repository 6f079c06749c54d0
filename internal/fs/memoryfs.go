package fs

import "github.com/go-git/go-billy/v5/memfs"

// NewMemoryFS returns a pure in-memory FS for tests or dry runs.
func NewMemoryFS() *BillyFS {
	return New(memfs.New())
}
