// Package source decides where a template's content comes from: a global
// default file maintained by the user, or the embedded fallback body.
// The two are never merged.
package source

import (
	"os"

	"github.com/arthur-debert/pyboot/pkg/lines"
	"github.com/arthur-debert/pyboot/pkg/logging"
	"github.com/arthur-debert/pyboot/pkg/paths"
	"github.com/arthur-debert/pyboot/pkg/templates"
	"github.com/arthur-debert/pyboot/pkg/types"
)

// Kind tells which source supplied the content.
type Kind int

const (
	// Embedded is the fallback body bundled with the binary
	Embedded Kind = iota
	// Global is a user maintained file outside the project
	Global
)

// String returns the kind name for logs.
func (k Kind) String() string {
	if k == Global {
		return "global"
	}
	return "embedded"
}

// Source is the resolved content of one template.
type Source struct {
	Kind Kind

	// Path is the expanded global default path; empty for Embedded
	Path string

	Lines lines.Buffer
}

// Label describes the source in status lines.
func (s Source) Label() string {
	if s.Kind == Global {
		return "global default " + s.Path
	}
	return "embedded config"
}

// Resolver resolves template sources on one host.
type Resolver struct {
	FS       types.FS
	Platform types.Platform

	// HomeDir expands "~"; empty leaves "~" paths unexpanded
	HomeDir string

	// Lookup expands environment references
	Lookup paths.LookupFunc
}

// NewResolver creates a resolver for the running host.
func NewResolver(fs types.FS) *Resolver {
	home, err := paths.GetHomeDirectory()
	if err != nil {
		logger := logging.GetLogger("source")
		logger.Warn().Err(err).Msg("Home directory unknown, \"~\" will not expand")
	}
	return &Resolver{
		FS:       fs,
		Platform: types.CurrentPlatform(),
		HomeDir:  home,
		Lookup:   os.LookupEnv,
	}
}

// Resolve returns the global default when it names a readable regular
// file, and the embedded body otherwise.
func (r *Resolver) Resolve(d templates.Descriptor) Source {
	log := logging.GetLogger("source")

	if path, ok := r.globalPath(d); ok {
		content, err := r.read(path)
		if err == nil {
			log.Debug().Str("template", d.ID).Str("path", path).Msg("Using global default")
			return Source{Kind: Global, Path: path, Lines: lines.FromText(string(content))}
		}
		log.Debug().Err(err).Str("template", d.ID).Str("path", path).Msg("Global default unusable, falling back to embedded body")
	}

	body := lines.Buffer{lines.Terminator}
	if d.Body != nil {
		body = d.Body.Lines()
	}
	return Source{Kind: Embedded, Lines: body}
}

func (r *Resolver) globalPath(d templates.Descriptor) (string, bool) {
	candidate, ok := d.GlobalDefault(r.Platform)
	if !ok {
		return "", false
	}

	lookup := r.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	syntax := paths.UnixEnv
	if r.Platform == types.PlatformWindows {
		syntax = paths.WindowsEnv
	}
	return paths.ExpandUserPath(candidate, r.HomeDir, syntax, lookup), true
}

func (r *Resolver) read(path string) ([]byte, error) {
	info, err := r.FS.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, &os.PathError{Op: "read", Path: path, Err: os.ErrInvalid}
	}
	return r.FS.ReadFile(path)
}
