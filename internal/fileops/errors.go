package fileops

import (
	"github.com/jmgilman/go/errors"
)

// Kind classifies why a file operation was refused or failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindNoDirectory
	KindInvalidDirectory
	KindNotFound
	KindNotRegular
	KindOpenRead
	KindOpenWrite
	KindRead
	KindWrite
	KindNotRemoved
	KindRemove
	KindVerify
)

var kindNames = map[Kind]string{
	KindUnknown:          "unknown",
	KindNoDirectory:      "no directory",
	KindInvalidDirectory: "invalid directory",
	KindNotFound:         "not found",
	KindNotRegular:       "not a regular file",
	KindOpenRead:         "open for reading",
	KindOpenWrite:        "open for writing",
	KindRead:             "read",
	KindWrite:            "write",
	KindNotRemoved:       "not removed",
	KindRemove:           "remove",
	KindVerify:           "verify",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// Error records a failed file operation and the path it touched.
// Err is a structured error carrying an error code.
type Error struct {
	Op   string
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Code returns the error code of the underlying structured error.
func (e *Error) Code() errors.ErrorCode {
	return errors.GetCode(e.Err)
}

// cause returns the innermost message worth showing to a user.
func (e *Error) cause() string {
	var pe errors.PlatformError
	if errors.As(e.Err, &pe) {
		if inner := pe.Unwrap(); inner != nil {
			return inner.Error()
		}
		return pe.Message()
	}
	return e.Err.Error()
}

func newError(op string, kind Kind, path string, code errors.ErrorCode, msg string) *Error {
	return &Error{Op: op, Kind: kind, Path: path, Err: errors.New(code, msg)}
}

func wrapError(op string, kind Kind, path string, cause error, code errors.ErrorCode, msg string) *Error {
	return &Error{Op: op, Kind: kind, Path: path, Err: errors.Wrap(cause, code, msg)}
}

// KindOf returns the Kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// CodeOf returns the error code carried by err.
func CodeOf(err error) errors.ErrorCode {
	return errors.GetCode(err)
}

// Describe renders err as the message shown to the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return "Error: " + err.Error()
	}
	switch e.Kind {
	case KindNoDirectory:
		return "Please select a directory first."
	case KindInvalidDirectory:
		return "Invalid directory. Please try again."
	case KindNotFound, KindNotRegular:
		return "File does not exist in the selected directory."
	case KindOpenRead:
		return "Failed to open the file for reading."
	case KindOpenWrite:
		return "Failed to open the file for writing."
	case KindNotRemoved:
		return "Failed to delete the file."
	default:
		return "Error: " + e.cause()
	}
}
