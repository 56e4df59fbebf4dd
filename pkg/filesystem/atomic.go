package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/pyboot/pkg/types"
)

const tempPattern = ".pyboot-tmp-*"

// WriteFileAtomic writes data to path using a temp file + rename.
// The temp file is created in the same directory as path so the rename
// stays on one filesystem. On failure the original file, if any, is left
// unchanged. The caller must ensure the parent directory exists.
func WriteFileAtomic(fsys types.FS, path string, data []byte, perm fs.FileMode) error {
	tmpPath, w, err := fsys.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return err
	}

	success := false
	defer func() {
		if !success {
			_ = fsys.Remove(tmpPath)
		}
	}()

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if err := fsys.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}
