// Package session holds the state shared by menu operations.
package session

import "path/filepath"

// Session tracks the currently selected directory.
// The zero value has no directory selected.
type Session struct {
	dir string
}

func New() *Session {
	return &Session{}
}

// Selected reports whether a directory has been selected.
func (s *Session) Selected() bool {
	return s.dir != ""
}

// Dir returns the selected directory, or "" when none is selected.
func (s *Session) Dir() string {
	return s.dir
}

// Select records dir as the selected directory. Callers validate it first.
func (s *Session) Select(dir string) {
	s.dir = dir
}

// Resolve joins name onto the selected directory. An absolute name
// replaces the directory.
func (s *Session) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(s.dir, name)
}
