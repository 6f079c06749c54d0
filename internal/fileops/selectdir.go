package fileops

import (
	"path/filepath"

	"github.com/jmgilman/go/errors"

	"github.com/keshon/fileops/internal/fs"
	"github.com/keshon/fileops/internal/session"
)

// SelectDirectory validates path and, if it is an existing directory,
// records it in sess. On failure sess is left untouched.
func SelectDirectory(fsys fs.FS, sess *session.Session, path string) (string, error) {
	const op = "select"

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", wrapError(op, KindInvalidDirectory, path, err, errors.CodeInvalidInput, "resolve path")
	}

	fi, err := fsys.Stat(abs)
	if err != nil {
		return "", wrapError(op, KindInvalidDirectory, abs, err, errors.CodeNotFound, "directory does not exist")
	}
	if !fi.IsDir() {
		return "", newError(op, KindInvalidDirectory, abs, errors.CodeInvalidInput, "not a directory")
	}

	sess.Select(abs)
	return abs, nil
}
