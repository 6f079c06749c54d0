package fileops

import (
	"github.com/jmgilman/go/errors"

	"github.com/keshon/fileops/internal/fs"
	"github.com/keshon/fileops/internal/session"
)

// RequireDirectory fails with KindNoDirectory when sess has no selection.
func RequireDirectory(op string, sess *session.Session) error {
	if !sess.Selected() {
		return newError(op, KindNoDirectory, "", errors.CodeConflict, "no directory selected")
	}
	return nil
}

// resolveFile joins name onto the selected directory and checks that the
// result is an existing regular file.
func resolveFile(op string, fsys fs.FS, sess *session.Session, name string) (string, error) {
	if err := RequireDirectory(op, sess); err != nil {
		return "", err
	}

	p := sess.Resolve(name)
	fi, err := fsys.Stat(p)
	if err != nil {
		return "", wrapError(op, KindNotFound, p, err, errors.CodeNotFound, "file does not exist")
	}
	if !fi.Mode().IsRegular() {
		return "", newError(op, KindNotRegular, p, errors.CodeInvalidInput, "not a regular file")
	}
	return p, nil
}
