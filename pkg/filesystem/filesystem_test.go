package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/pyboot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	require.NotNil(t, fsys)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "ruff.toml")
	content := []byte("line-length = 100\n")

	require.NoError(t, fsys.WriteFile(testFile, content, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "ruff.toml", info.Name())
	assert.Equal(t, int64(len(content)), info.Size())

	got, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	subDir := filepath.Join(tmpDir, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))

	_, err = fsys.ReadFile(subDir)
	assert.Error(t, err, "reading a directory must fail")

	require.NoError(t, fsys.Remove(testFile))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFileAtomic(t *testing.T) {
	filesystems := map[string]func(t *testing.T) (types.FS, string){
		"os": func(t *testing.T) (types.FS, string) {
			return NewOS(), t.TempDir()
		},
		"memory": func(t *testing.T) (types.FS, string) {
			fsys := NewMemory()
			require.NoError(t, fsys.MkdirAll("/project", 0755))
			return fsys, "/project"
		},
	}

	for name, setup := range filesystems {
		t.Run(name, func(t *testing.T) {
			fsys, dir := setup(t)
			path := filepath.Join(dir, ".gitignore")

			require.NoError(t, WriteFileAtomic(fsys, path, []byte("old\ncontent\n"), 0644))
			require.NoError(t, WriteFileAtomic(fsys, path, []byte("new\n"), 0644))

			got, err := fsys.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "new\n", string(got), "overwrite must replace the whole file")

			info, err := fsys.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
		})
	}
}

func TestWriteFileAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOS()

	require.NoError(t, WriteFileAtomic(fsys, filepath.Join(dir, "main.py"), []byte("print()\n"), 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), ".pyboot-tmp-"), "temp file left behind: %s", entry.Name())
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	fsys := NewOS()
	path := filepath.Join(t.TempDir(), "missing", "ty.toml")

	err := WriteFileAtomic(fsys, path, []byte("x"), 0644)
	assert.Error(t, err)
}
