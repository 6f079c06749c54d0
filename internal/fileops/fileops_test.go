package fileops_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keshon/fileops/internal/fs"
	"github.com/keshon/fileops/internal/session"
)

const workDir = "/work"

// newWorkspace returns an in-memory FS holding /work with the given files,
// and a session with /work selected.
func newWorkspace(t *testing.T, files map[string][]byte) (*fs.BillyFS, *session.Session) {
	t.Helper()
	fsys := fs.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll(workDir, 0o755))
	for name, data := range files {
		require.NoError(t, fsys.WriteFile(workDir+"/"+name, data, 0o644))
	}
	sess := session.New()
	sess.Select(workDir)
	return fsys, sess
}

// forbidFS fails the test on any filesystem access.
func forbidFS(t *testing.T) *fs.HookFS {
	t.Helper()
	h := fs.NewHookFS(fs.NewMemoryFS())
	h.OnStat = func(p string) (os.FileInfo, error) {
		t.Fatalf("unexpected Stat(%q)", p)
		return nil, nil
	}
	h.OnReadDir = func(p string) ([]os.FileInfo, error) {
		t.Fatalf("unexpected ReadDir(%q)", p)
		return nil, nil
	}
	h.OnRemove = func(p string) error {
		t.Fatalf("unexpected Remove(%q)", p)
		return nil
	}
	return h
}

// exists reports whether p can be stat'ed on fsys.
func exists(fsys fs.FS, p string) bool {
	_, err := fsys.Stat(p)
	return err == nil
}

// isDir reports whether p is a directory on fsys.
func isDir(fsys fs.FS, p string) bool {
	fi, err := fsys.Stat(p)
	return err == nil && fi.IsDir()
}
