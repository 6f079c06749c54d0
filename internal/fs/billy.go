package fs

import (
	"errors"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// BillyFS implements FS on top of a billy filesystem.
type BillyFS struct {
	fs billy.Filesystem
}

// New wraps a billy filesystem.
func New(bfs billy.Filesystem) *BillyFS {
	return &BillyFS{fs: bfs}
}

func (b *BillyFS) Open(path string) (io.ReadSeekCloser, error) {
	f, err := b.fs.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// OpenTruncate opens an existing file for writing and truncates it.
// It never creates the file.
func (b *BillyFS) OpenTruncate(path string) (io.WriteCloser, error) {
	f, err := b.fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (b *BillyFS) ReadFile(path string) ([]byte, error) {
	return util.ReadFile(b.fs, path)
}

func (b *BillyFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return util.WriteFile(b.fs, path, data, perm)
}

func (b *BillyFS) MkdirAll(path string, perm os.FileMode) error {
	return b.fs.MkdirAll(path, perm)
}

func (b *BillyFS) Remove(path string) error {
	return b.fs.Remove(path)
}

func (b *BillyFS) Stat(path string) (os.FileInfo, error) {
	return b.fs.Stat(path)
}

func (b *BillyFS) ReadDir(path string) ([]os.FileInfo, error) {
	return b.fs.ReadDir(path)
}

func (b *BillyFS) IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
