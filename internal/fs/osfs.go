package fs

import "github.com/go-git/go-billy/v5/osfs"

// NewOSFS returns an FS rooted at the host filesystem root.
// Paths passed to it are expected to be absolute.
func NewOSFS() *BillyFS {
	return New(osfs.New("/"))
}
