package templates

import (
	"strings"

	"github.com/arthur-debert/pyboot/pkg/config"
	"github.com/arthur-debert/pyboot/pkg/errors"
	"github.com/arthur-debert/pyboot/pkg/logging"
	"github.com/arthur-debert/pyboot/pkg/placeholder"
	"github.com/arthur-debert/pyboot/pkg/pyversion"
	"github.com/arthur-debert/pyboot/pkg/types"
	"github.com/arthur-debert/pyboot/pkg/upsert"
)

// Template ids, in registry order
const (
	IDRuff      = "ruff"
	IDTy        = "ty"
	IDMain      = "main"
	IDGitignore = "gitignore"
)

// Descriptor describes one output artifact.
type Descriptor struct {
	ID         string
	FileName   string
	OutputPath string

	// Force overwrites an existing destination regardless of the CLI flag
	Force bool

	// GlobalDefaults maps a platform to a candidate global default path
	GlobalDefaults map[types.Platform]string

	Body Body

	// Transform may be nil
	Transform types.Transform
}

// GlobalDefault returns the non-empty global default path for a platform.
func (d Descriptor) GlobalDefault(p types.Platform) (string, bool) {
	path, ok := d.GlobalDefaults[p]
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// Registry is an ordered list of descriptors.
type Registry []Descriptor

// IDs returns the descriptor ids in order.
func (r Registry) IDs() []string {
	ids := make([]string, len(r))
	for i, d := range r {
		ids[i] = d.ID
	}
	return ids
}

// binding is what the binary contributes to a template
type binding struct {
	id        string
	body      Body
	transform types.Transform
}

var builtins = []binding{
	{
		id:   IDRuff,
		body: TextBody(ruffBody),
		transform: upsert.FlatKey{
			Key:     "target-version",
			Style:   pyversion.RuffTarget,
			Anchors: []string{"line-length", "indent-width"},
		},
	},
	{
		id:   IDTy,
		body: TextBody(tyBody),
		transform: upsert.SectionKey{
			Section: "environment",
			Key:     "python-version",
			Style:   pyversion.MajorMinor,
		},
	},
	{
		id:        IDMain,
		body:      TextBody(mainBody),
		transform: placeholder.Substitution{},
	},
	{
		id:        IDGitignore,
		body:      TextBody(gitignoreBody),
		transform: placeholder.Substitution{},
	},
}

// BuiltinIDs lists the ids the binary has bodies for, in registry order.
func BuiltinIDs() []string {
	ids := make([]string, len(builtins))
	for i, b := range builtins {
		ids[i] = b.id
	}
	return ids
}

// FromConfig binds the configured templates to their bodies and transforms.
// Disabled templates are left out; unknown ids are logged and ignored.
func FromConfig(cfg *config.Config) (Registry, error) {
	log := logging.GetLogger("templates")

	known := make(map[string]bool, len(builtins))
	registry := make(Registry, 0, len(builtins))

	for _, b := range builtins {
		known[b.id] = true

		tc, ok := cfg.Template(b.id)
		if !ok {
			return nil, errors.Newf(errors.ErrConfigParse, "template %q is not configured", b.id).
				WithDetail("template", b.id)
		}
		if !tc.Enabled {
			log.Debug().Str("template", b.id).Msg("Template disabled")
			continue
		}
		if strings.TrimSpace(tc.FileName) == "" {
			return nil, errors.Newf(errors.ErrConfigParse, "template %q has no file_name", b.id).
				WithDetail("template", b.id)
		}

		registry = append(registry, Descriptor{
			ID:             b.id,
			FileName:       tc.FileName,
			OutputPath:     tc.OutputPath,
			Force:          tc.Force,
			GlobalDefaults: platformPaths(tc.GlobalDefaults),
			Body:           b.body,
			Transform:      b.transform,
		})
	}

	for _, id := range cfg.TemplateIDs() {
		if !known[id] {
			log.Warn().Str("template", id).Msg("Ignoring unknown template in configuration")
		}
	}

	return registry, nil
}

// Default returns the registry built from the embedded defaults.
func Default() (Registry, error) {
	cfg, err := config.LoadDefaults()
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg)
}

func platformPaths(in map[string]string) map[types.Platform]string {
	out := make(map[types.Platform]string, len(in))
	for name, path := range in {
		p := types.ParsePlatform(strings.ToLower(name))
		if p == types.PlatformUnknown {
			continue
		}
		out[p] = path
	}
	return out
}
