package fileops

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmgilman/go/errors"

	"github.com/keshon/fileops/internal/config"
	"github.com/keshon/fileops/internal/fs"
	"github.com/keshon/fileops/internal/session"
)

// HexDump writes r as uppercase two-digit hex values, space separated,
// config.HexBytesPerLine bytes per line. Empty input writes nothing.
func HexDump(w io.Writer, r io.Reader) error {
	buf := make([]byte, config.HexBytesPerLine)
	var line strings.Builder

	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			line.Reset()
			for i, b := range buf[:n] {
				if i > 0 {
					line.WriteByte(' ')
				}
				fmt.Fprintf(&line, "%02X", b)
			}
			line.WriteByte('\n')
			if _, werr := io.WriteString(w, line.String()); werr != nil {
				return werr
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// DisplayHex hex-dumps the named file of the selected directory to w.
func DisplayHex(fsys fs.FS, sess *session.Session, name string, w io.Writer) error {
	const op = "hex"

	p, err := resolveFile(op, fsys, sess, name)
	if err != nil {
		return err
	}

	f, err := fsys.Open(p)
	if err != nil {
		return wrapError(op, KindOpenRead, p, err, errors.CodeExecutionFailed, "open file")
	}
	defer f.Close()

	if err := HexDump(w, f); err != nil {
		return wrapError(op, KindRead, p, err, errors.CodeExecutionFailed, "read file")
	}
	return nil
}
