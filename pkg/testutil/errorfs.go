package testutil

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/pyboot/pkg/types"
)

// Operations ErrorFS can fail selectively. Temp files are matched by their
// directory, renames by their target.
const (
	OpAny        = ""
	OpStat       = "stat"
	OpReadFile   = "read"
	OpWriteFile  = "write"
	OpMkdirAll   = "mkdir"
	OpCreateTemp = "createtemp"
	OpRename     = "rename"
)

type opPath struct {
	op   string
	path string
}

// ErrorFS wraps a filesystem and fails operations on chosen paths.
type ErrorFS struct {
	types.FS
	errorPaths map[opPath]error
}

var _ types.FS = (*ErrorFS)(nil)

// NewErrorFS wraps fs.
func NewErrorFS(fs types.FS) *ErrorFS {
	return &ErrorFS{FS: fs, errorPaths: make(map[opPath]error)}
}

// WithError configures the filesystem to return an error for every
// operation on a specific path
func (e *ErrorFS) WithError(path string, err error) *ErrorFS {
	return e.WithOpError(OpAny, path, err)
}

// WithOpError fails a single operation on a specific path
func (e *ErrorFS) WithOpError(op, path string, err error) *ErrorFS {
	e.errorPaths[opPath{op: op, path: filepath.Clean(path)}] = err
	return e
}

func (e *ErrorFS) fail(op, path string) error {
	path = filepath.Clean(path)
	if err, ok := e.errorPaths[opPath{op: op, path: path}]; ok {
		return err
	}
	return e.errorPaths[opPath{op: OpAny, path: path}]
}

func (e *ErrorFS) Stat(name string) (fs.FileInfo, error) {
	if err := e.fail(OpStat, name); err != nil {
		return nil, err
	}
	return e.FS.Stat(name)
}

func (e *ErrorFS) ReadFile(name string) ([]byte, error) {
	if err := e.fail(OpReadFile, name); err != nil {
		return nil, err
	}
	return e.FS.ReadFile(name)
}

func (e *ErrorFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := e.fail(OpWriteFile, name); err != nil {
		return err
	}
	return e.FS.WriteFile(name, data, perm)
}

func (e *ErrorFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := e.fail(OpMkdirAll, path); err != nil {
		return err
	}
	return e.FS.MkdirAll(path, perm)
}

func (e *ErrorFS) CreateTemp(dir, pattern string) (string, io.WriteCloser, error) {
	if err := e.fail(OpCreateTemp, dir); err != nil {
		return "", nil, err
	}
	return e.FS.CreateTemp(dir, pattern)
}

func (e *ErrorFS) Rename(oldpath, newpath string) error {
	if err := e.fail(OpRename, newpath); err != nil {
		return err
	}
	return e.FS.Rename(oldpath, newpath)
}
