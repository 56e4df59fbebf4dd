package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/pyboot/pkg/filesystem"
	"github.com/arthur-debert/pyboot/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a project root and a home directory
type TestEnvironment struct {
	ProjectDir string
	HomeDir    string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. The project directory
// is named "demo".
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.ProjectDir = "/virtual/work/demo"
		env.HomeDir = "/virtual/home"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		tempDir := t.TempDir()
		env.ProjectDir = filepath.Join(tempDir, "work", "demo")
		env.HomeDir = filepath.Join(tempDir, "home")
		env.FS = filesystem.NewOS()
		t.Setenv("HOME", env.HomeDir)
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.HomeDir, ".config"))
		t.Setenv("XDG_STATE_HOME", filepath.Join(env.HomeDir, ".local", "state"))
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	env.mkdir(env.ProjectDir)
	env.mkdir(env.HomeDir)
	return env
}

// UVProject writes the manifest and version files of a uv project.
func (env *TestEnvironment) UVProject(pythonVersion string) *TestEnvironment {
	env.t.Helper()
	return env.WithFileTree(FileTree{
		"pyproject.toml":  "[project]\nname = \"demo\"\n",
		".python-version": pythonVersion + "\n",
	})
}

// ProjectPath joins elements onto the project directory.
func (env *TestEnvironment) ProjectPath(elem ...string) string {
	return filepath.Join(append([]string{env.ProjectDir}, elem...)...)
}

// HomePath joins elements onto the home directory.
func (env *TestEnvironment) HomePath(elem ...string) string {
	return filepath.Join(append([]string{env.HomeDir}, elem...)...)
}

// WithFileTree creates a file tree under the project directory.
func (env *TestEnvironment) WithFileTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	createFileTree(env.t, env.FS, env.ProjectDir, tree)
	return env
}

// WithHomeTree creates a file tree under the home directory.
func (env *TestEnvironment) WithHomeTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	createFileTree(env.t, env.FS, env.HomeDir, tree)
	return env
}

// ReadFile returns a file's content or fails the test.
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(path)
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists.
func (env *TestEnvironment) Exists(path string) bool {
	_, err := env.FS.Stat(path)
	return err == nil
}

func (env *TestEnvironment) mkdir(path string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("Failed to create directory %s: %v", path, err)
	}
}

// FileTree maps names to file content (string) or subtrees (FileTree).
// Names may contain slashes.
type FileTree map[string]interface{}

// createFileTree recursively creates a file tree
func createFileTree(t *testing.T, fs types.FS, basePath string, tree FileTree) {
	t.Helper()

	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fullPath := filepath.Join(basePath, name)

		switch v := tree[name].(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := fs.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, tree[name])
		}
	}
}
