package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/errors"

	"github.com/keshon/fileops/internal/fs"
	"github.com/keshon/fileops/internal/session"
)

// Entry is one immediate child of the listed directory.
type Entry struct {
	Name  string
	IsDir bool
	Size  int64
}

// Listing partitions a directory's entries into subdirectories and regular
// files, each in enumeration order.
type Listing struct {
	Dir   string
	Dirs  []Entry
	Files []Entry
}

// ListDirectory enumerates the selected directory without recursing.
// Symlinks are classified by what they point to and listed under their own
// name. Entries that are neither directories nor regular files are skipped.
func ListDirectory(fsys fs.FS, sess *session.Session) (*Listing, error) {
	const op = "list"
	if err := RequireDirectory(op, sess); err != nil {
		return nil, err
	}

	dir := sess.Dir()
	infos, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, wrapError(op, KindRead, dir, err, errors.CodeExecutionFailed, "read directory")
	}

	l := &Listing{Dir: dir}
	for _, fi := range infos {
		if fi.Mode()&os.ModeSymlink != 0 {
			target, err := fsys.Stat(filepath.Join(dir, fi.Name()))
			if err != nil {
				continue // dangling
			}
			fi = renamed{target, fi.Name()}
		}
		switch {
		case fi.IsDir():
			l.Dirs = append(l.Dirs, Entry{Name: fi.Name(), IsDir: true})
		case fi.Mode().IsRegular():
			l.Files = append(l.Files, Entry{Name: fi.Name(), Size: fi.Size()})
		}
	}
	return l, nil
}

// WriteTo prints the listing, directories first.
func (l *Listing) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}

	if err := write("Contents of directory: %s\n", l.Dir); err != nil {
		return total, err
	}
	if err := write("\nDirectories:\n"); err != nil {
		return total, err
	}
	for _, d := range l.Dirs {
		if err := write("%s\n", d.Name); err != nil {
			return total, err
		}
	}
	if err := write("\nFiles:\n"); err != nil {
		return total, err
	}
	for _, f := range l.Files {
		if err := write("%s (%d bytes)\n", f.Name, f.Size); err != nil {
			return total, err
		}
	}
	return total, nil
}

// renamed reports a symlink target's info under the link's name.
type renamed struct {
	os.FileInfo
	name string
}

func (r renamed) Name() string { return r.name }
