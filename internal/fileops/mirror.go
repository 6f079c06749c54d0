package fileops

import (
	"fmt"
	"io"

	"github.com/jmgilman/go/errors"
	"github.com/zeebo/xxh3"

	"github.com/keshon/fileops/internal/fs"
	"github.com/keshon/fileops/internal/session"
)

// ReverseBits reverses the bit order of b: bit i moves to bit 7-i.
func ReverseBits(b byte) byte {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// Reflect applies ReverseBits to every byte of buf in place.
// Applying it twice restores buf.
func Reflect(buf []byte) {
	for i, b := range buf {
		buf[i] = ReverseBits(b)
	}
}

// MirrorOptions tunes MirrorReflect.
type MirrorOptions struct {
	// Verify re-reads the file after write-back and compares xxh3 digests.
	Verify bool
}

// MirrorResult describes a completed mirror reflect.
type MirrorResult struct {
	Path   string
	Size   int
	Digest xxh3.Uint128
}

// Checksum returns the xxh3-128 digest of the written content as hex.
func (r *MirrorResult) Checksum() string {
	return fmt.Sprintf("%x", r.Digest.Bytes())
}

// MirrorReflect bit-reverses every byte of the named file in place.
// The file is read fully, transformed, then truncated and rewritten;
// it is not atomic.
func MirrorReflect(fsys fs.FS, sess *session.Session, name string, opts MirrorOptions) (*MirrorResult, error) {
	const op = "mirror"

	p, err := resolveFile(op, fsys, sess, name)
	if err != nil {
		return nil, err
	}

	r, err := fsys.Open(p)
	if err != nil {
		return nil, wrapError(op, KindOpenRead, p, err, errors.CodeExecutionFailed, "open file for reading")
	}
	buf, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return nil, wrapError(op, KindRead, p, err, errors.CodeExecutionFailed, "read file")
	}

	Reflect(buf)

	w, err := fsys.OpenTruncate(p)
	if err != nil {
		return nil, wrapError(op, KindOpenWrite, p, err, errors.CodeExecutionFailed, "open file for writing")
	}
	if _, err := w.Write(buf); err != nil {
		w.Close()
		return nil, wrapError(op, KindWrite, p, err, errors.CodeExecutionFailed, "write file")
	}
	if err := w.Close(); err != nil {
		return nil, wrapError(op, KindWrite, p, err, errors.CodeExecutionFailed, "close file")
	}

	res := &MirrorResult{Path: p, Size: len(buf), Digest: xxh3.Hash128(buf)}
	if !opts.Verify {
		return res, nil
	}

	written, err := fsys.ReadFile(p)
	if err != nil {
		return nil, wrapError(op, KindVerify, p, err, errors.CodeInternal, "re-read file")
	}
	if xxh3.Hash128(written) != res.Digest {
		return nil, newError(op, KindVerify, p, errors.CodeInternal, "mirror reflect verification failed for "+p)
	}
	return res, nil
}
