package fileops

import (
	"os"

	"github.com/jmgilman/go/errors"

	"github.com/keshon/fileops/internal/fs"
	"github.com/keshon/fileops/internal/session"
)

// DeleteFile removes the named regular file from the selected directory
// and returns its path.
//
// A file that disappears between the check and the removal yields
// KindNotRemoved; any other removal failure yields KindRemove with the
// filesystem error as cause.
func DeleteFile(fsys fs.FS, sess *session.Session, name string) (string, error) {
	const op = "delete"

	p, err := resolveFile(op, fsys, sess, name)
	if err != nil {
		return "", err
	}

	if err := fsys.Remove(p); err != nil {
		if fsys.IsNotExist(err) {
			return "", wrapError(op, KindNotRemoved, p, err, errors.CodeConflict, "file was not removed")
		}
		code := errors.CodeExecutionFailed
		if errors.Is(err, os.ErrPermission) {
			code = errors.CodeForbidden
		}
		return "", wrapError(op, KindRemove, p, err, code, "remove file")
	}
	return p, nil
}
