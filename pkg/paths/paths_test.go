package paths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandHomeWith(t *testing.T) {
	home := filepath.Join("/home", "ada")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"tilde only", "~", home},
		{"tilde slash", "~/.config/ruff/ruff.toml", filepath.Join(home, ".config", "ruff", "ruff.toml")},
		{"other user not expanded", "~bob/x", "~bob/x"},
		{"no tilde", "/etc/ruff.toml", "/etc/ruff.toml"},
		{"tilde later", "a/~/b", "a/~/b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHomeWith(tt.path, home))
		})
	}
}

func TestExpandHomeWithoutHome(t *testing.T) {
	assert.Equal(t, "~/x", ExpandHomeWith("~/x", ""))
}

func TestExpandEnvWith(t *testing.T) {
	env := map[string]string{
		"APPDATA":  `C:\Users\ada\AppData\Roaming`,
		"XDG_HOME": "/xdg",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	tests := []struct {
		name   string
		syntax EnvSyntax
		path   string
		want   string
	}{
		{"percent form on windows", WindowsEnv, `%APPDATA%\ruff\ruff.toml`, `C:\Users\ada\AppData\Roaming\ruff\ruff.toml`},
		{"percent form elsewhere", UnixEnv, `%APPDATA%\ruff\ruff.toml`, `%APPDATA%\ruff\ruff.toml`},
		{"dollar form", UnixEnv, "$XDG_HOME/ty/ty.toml", "/xdg/ty/ty.toml"},
		{"dollar form on windows", WindowsEnv, "$XDG_HOME/ty/ty.toml", "/xdg/ty/ty.toml"},
		{"braced form", UnixEnv, "${XDG_HOME}/ty.toml", "/xdg/ty.toml"},
		{"unset kept verbatim", WindowsEnv, "$NOPE/x and %NOPE%", "$NOPE/x and %NOPE%"},
		{"nothing to expand", UnixEnv, "plain/path", "plain/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandEnvWith(tt.path, tt.syntax, lookup))
		})
	}
}

func TestHostEnvSyntax(t *testing.T) {
	want := UnixEnv
	if runtime.GOOS == "windows" {
		want = WindowsEnv
	}
	assert.Equal(t, want, HostEnvSyntax())
}

func TestExpandUserPath(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == "TOOL" {
			return "ruff", true
		}
		return "", false
	}

	got := ExpandUserPath("~/.config/$TOOL/ruff.toml", "/home/ada", UnixEnv, lookup)
	assert.Equal(t, filepath.Join("/home/ada", ".config", "ruff", "ruff.toml"), got)
}

func TestToolDirsHonorOverrides(t *testing.T) {
	configDir := t.TempDir()
	stateDir := t.TempDir()
	t.Setenv(EnvConfigDir, configDir)
	t.Setenv(EnvStateDir, stateDir)

	assert.Equal(t, configDir, ConfigDir())
	assert.Equal(t, filepath.Join(configDir, ConfigFileName), ConfigFilePath())
	assert.Equal(t, stateDir, StateDir())
	assert.Equal(t, filepath.Join(stateDir, LogFileName), LogFilePath())
}
