package paths

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pyboot/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for pyboot
	EnvConfigDir = "PYBOOT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for pyboot
	EnvStateDir = "PYBOOT_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for pyboot-specific files
	AppDirName = "pyboot"

	// ConfigFileName is the user configuration file name
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "pyboot.log"
)

// ConfigDir returns the directory holding the user configuration file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the user configuration file location.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory for pyboot's log file.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the log file location.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome expands a leading "~" to the user's home directory.
// The path is returned unchanged if the home directory is unknown.
func ExpandHome(path string) string {
	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}
	return ExpandHomeWith(path, homeDir)
}

// ExpandHomeWith expands a leading "~" using the given home directory.
// "~user" forms are not expanded.
func ExpandHomeWith(path, homeDir string) string {
	if path == "" || path[0] != '~' || homeDir == "" {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~\
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

var (
	unixEnvRefPattern    = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)
	windowsEnvRefPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)|%([^%]+)%`)
)

// EnvSyntax selects which environment reference forms are expanded.
type EnvSyntax int

const (
	// UnixEnv expands $VAR and ${VAR}
	UnixEnv EnvSyntax = iota

	// WindowsEnv also expands %VAR%
	WindowsEnv
)

// HostEnvSyntax returns the syntax of the running host.
func HostEnvSyntax() EnvSyntax {
	if runtime.GOOS == "windows" {
		return WindowsEnv
	}
	return UnixEnv
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// ExpandEnv expands references from the process environment using the
// host syntax. References to unset variables are kept verbatim.
func ExpandEnv(path string) string {
	return ExpandEnvWith(path, HostEnvSyntax(), os.LookupEnv)
}

// ExpandEnvWith expands references of the given syntax using lookup.
func ExpandEnvWith(path string, syntax EnvSyntax, lookup LookupFunc) string {
	pattern, markers := unixEnvRefPattern, "$"
	if syntax == WindowsEnv {
		pattern, markers = windowsEnvRefPattern, "$%"
	}
	if !strings.ContainsAny(path, markers) {
		return path
	}
	return pattern.ReplaceAllStringFunc(path, func(ref string) string {
		m := pattern.FindStringSubmatch(ref)
		name := strings.Join(m[1:], "")
		if value, ok := lookup(name); ok {
			return value
		}
		return ref
	})
}

// ExpandUserPath expands "~" first and then environment references, the
// order a shell would apply them.
func ExpandUserPath(path, homeDir string, syntax EnvSyntax, lookup LookupFunc) string {
	return ExpandEnvWith(ExpandHomeWith(path, homeDir), syntax, lookup)
}
