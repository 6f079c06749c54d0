package fs

import (
	"io"
	"os"
)

// HookFS wraps an FS and lets callers override individual calls.
// Unset hooks fall through to the wrapped FS. Used for testing.
type HookFS struct {
	FS

	OnOpen         func(path string) (io.ReadSeekCloser, error)
	OnOpenTruncate func(path string) (io.WriteCloser, error)
	OnReadDir      func(path string) ([]os.FileInfo, error)
	OnRemove       func(path string) error
	OnStat         func(path string) (os.FileInfo, error)
}

// NewHookFS wraps base with no hooks set.
func NewHookFS(base FS) *HookFS {
	return &HookFS{FS: base}
}

func (h *HookFS) Open(path string) (io.ReadSeekCloser, error) {
	if h.OnOpen != nil {
		return h.OnOpen(path)
	}
	return h.FS.Open(path)
}

func (h *HookFS) OpenTruncate(path string) (io.WriteCloser, error) {
	if h.OnOpenTruncate != nil {
		return h.OnOpenTruncate(path)
	}
	return h.FS.OpenTruncate(path)
}

func (h *HookFS) ReadDir(path string) ([]os.FileInfo, error) {
	if h.OnReadDir != nil {
		return h.OnReadDir(path)
	}
	return h.FS.ReadDir(path)
}

func (h *HookFS) Remove(path string) error {
	if h.OnRemove != nil {
		return h.OnRemove(path)
	}
	return h.FS.Remove(path)
}

func (h *HookFS) Stat(path string) (os.FileInfo, error) {
	if h.OnStat != nil {
		return h.OnStat(path)
	}
	return h.FS.Stat(path)
}
