package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for pyboot operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Used by atomic writes: a temp file in the destination directory is
	// written, closed and renamed over the destination.
	CreateTemp(dir, pattern string) (string, io.WriteCloser, error)
	Chmod(name string, mode fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
