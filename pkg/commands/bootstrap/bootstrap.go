// Package bootstrap runs the template pipeline over a uv project root:
// resolve each template's source, adapt it to the project, and hand it to
// the write gate, one template at a time in registry order.
package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/pyboot/pkg/author"
	"github.com/arthur-debert/pyboot/pkg/config"
	"github.com/arthur-debert/pyboot/pkg/errors"
	"github.com/arthur-debert/pyboot/pkg/lines"
	"github.com/arthur-debert/pyboot/pkg/logging"
	"github.com/arthur-debert/pyboot/pkg/paths"
	"github.com/arthur-debert/pyboot/pkg/placeholder"
	"github.com/arthur-debert/pyboot/pkg/pyversion"
	"github.com/arthur-debert/pyboot/pkg/source"
	"github.com/arthur-debert/pyboot/pkg/templates"
	"github.com/arthur-debert/pyboot/pkg/types"
	"github.com/arthur-debert/pyboot/pkg/writegate"
)

// ManifestFile marks a uv project root alongside pyversion.FileName
const ManifestFile = "pyproject.toml"

// SourceResolver picks the content source of a template.
type SourceResolver interface {
	Resolve(d templates.Descriptor) source.Source
}

// Options defines the options for the Bootstrap command.
type Options struct {
	// ProjectDir is the absolute project root
	ProjectDir string

	// DryRun reports decisions without touching the filesystem
	DryRun bool

	// Force overwrites existing files for every template
	Force bool

	FS     types.FS
	Config *config.Config

	// Registry defaults to templates.FromConfig(Config)
	Registry templates.Registry

	// Sources defaults to a source.Resolver for the running host
	Sources SourceResolver

	// Author defaults to author.NewResolver built from Config
	Author author.Resolver

	// Now defaults to time.Now
	Now func() time.Time
}

// Outcome is the result of one template.
type Outcome struct {
	writegate.Outcome

	TemplateID  string
	SourceLabel string

	// Err is set when the template failed; the run continues
	Err error
}

// Result is the result of a whole run.
type Result struct {
	ProjectDir string
	Version    pyversion.Version
	DryRun     bool
	Outcomes   []Outcome
}

// Failed returns the number of templates that failed.
func (r *Result) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// Bootstrap checks the project root, loads its version and processes every
// template. Only fatal conditions are returned as errors; per template
// failures are recorded in the result.
func Bootstrap(ctx context.Context, opts Options) (*Result, error) {
	log := logging.GetLogger("commands.bootstrap")
	log.Debug().
		Str("command", "Bootstrap").
		Str("projectDir", opts.ProjectDir).
		Bool("dryRun", opts.DryRun).
		Bool("force", opts.Force).
		Msg("Executing command")

	if err := opts.defaults(); err != nil {
		return nil, err
	}

	// 1. Preconditions
	if err := CheckProjectRoot(opts.FS, opts.ProjectDir); err != nil {
		return nil, err
	}

	// 2. Version
	version, err := LoadVersion(opts.FS, opts.ProjectDir)
	if err != nil {
		return nil, err
	}
	log.Info().Str("version", version.String()).Msg("Project version loaded")

	// 3. Registry
	registry := opts.Registry
	if registry == nil {
		if registry, err = templates.FromConfig(opts.Config); err != nil {
			return nil, err
		}
	}

	// 4. Transforms and strict paths are checked before anything is written
	if err := checkTransforms(registry, version); err != nil {
		return nil, err
	}
	if opts.Config.Paths.Strict {
		if err := checkStrictPaths(registry); err != nil {
			return nil, err
		}
	}

	result := &Result{
		ProjectDir: opts.ProjectDir,
		Version:    version,
		DryRun:     opts.DryRun,
	}
	if len(registry) == 0 {
		log.Warn().Msg("No templates enabled")
		return result, nil
	}

	rc := types.RenderContext{
		Version:     version,
		ProjectName: placeholder.DisplayName(filepath.Base(opts.ProjectDir)),
		Author:      author.Lookup(ctx, opts.Author),
		Date:        opts.Now(),
		Interpreter: opts.Config.Interpreter,
	}
	log.Debug().Str("project", rc.ProjectName).Str("author", rc.Author).Msg("Render context ready")

	// 5. Templates, in order
	gate := writegate.New(opts.FS, opts.DryRun)
	for _, d := range registry {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, errors.ErrInternal, "run interrupted")
		}

		outcome, err := processTemplate(d, opts, rc, gate)
		if err != nil {
			return result, err
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	log.Info().
		Int("templates", len(result.Outcomes)).
		Int("failed", result.Failed()).
		Msg("Bootstrap completed")
	return result, nil
}

func (opts *Options) defaults() error {
	if opts.ProjectDir == "" {
		return errors.New(errors.ErrInvalidInput, "project directory is required")
	}
	if opts.FS == nil {
		return errors.New(errors.ErrInvalidInput, "filesystem is required")
	}
	if opts.Config == nil {
		cfg, err := config.LoadDefaults()
		if err != nil {
			return err
		}
		opts.Config = cfg
	}
	if opts.Sources == nil {
		opts.Sources = source.NewResolver(opts.FS)
	}
	if opts.Author == nil {
		opts.Author = author.NewResolver(author.Options{
			Configured: opts.Config.Author,
			Timeout:    opts.Config.AuthorLookupTimeout,
		})
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return nil
}

// CheckProjectRoot fails with ErrPrecondition unless dir holds both the
// manifest and the version file.
func CheckProjectRoot(fs types.FS, dir string) error {
	var missing []string
	for _, name := range []string{ManifestFile, pyversion.FileName} {
		if _, err := fs.Stat(filepath.Join(dir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return errors.Newf(errors.ErrPrecondition,
		"Refusing to run: this does not look like a uv project root.\nMissing: %s\nCurrent directory: %s",
		strings.Join(missing, ", "), dir).
		WithDetail("missing", missing).
		WithDetail("dir", dir)
}

// LoadVersion reads and parses the project's version file.
func LoadVersion(fs types.FS, dir string) (pyversion.Version, error) {
	path := filepath.Join(dir, pyversion.FileName)
	data, err := fs.ReadFile(path)
	if err != nil {
		return pyversion.Version{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
			WithDetail("path", path)
	}
	return pyversion.Parse(string(data))
}

func checkStrictPaths(registry templates.Registry) error {
	for _, d := range registry {
		if _, err := paths.SanitizeStrict(d.OutputPath); err != nil {
			return errors.Wrapf(err, errors.ErrUnsafePath, "template %q: output path rejected", d.ID).
				WithDetail("template", d.ID)
		}
	}
	return nil
}

func checkTransforms(registry templates.Registry, version pyversion.Version) error {
	for _, d := range registry {
		checker, ok := d.Transform.(types.Checker)
		if !ok {
			continue
		}
		if err := checker.Check(version); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "template %q: cannot render version", d.ID).
				WithDetail("template", d.ID)
		}
	}
	return nil
}

// processTemplate runs one descriptor through the pipeline. The returned
// error is fatal; local failures are recorded in the outcome.
func processTemplate(d templates.Descriptor, opts Options, rc types.RenderContext, gate *writegate.Gate) (Outcome, error) {
	log := logging.GetLogger("commands.bootstrap")

	safeDir, redirected := paths.Sanitize(d.OutputPath)
	if redirected {
		log.Warn().Str("template", d.ID).Str("outputPath", d.OutputPath).Str("using", safeDir).Msg("Output path redirected inside project root")
	}
	dest := filepath.Join(opts.ProjectDir, safeDir, d.FileName)

	outcome := Outcome{
		Outcome:    writegate.Outcome{Path: dest},
		TemplateID: d.ID,
	}

	src := opts.Sources.Resolve(d)
	outcome.SourceLabel = src.Label()

	content := src.Lines
	transform := "none"
	if d.Transform != nil {
		transform = d.Transform.Name()
		var err error
		content, err = d.Transform.Apply(content, rc.ForFile(filepath.Base(d.FileName)))
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrInvalidInput) {
				return outcome, err
			}
			outcome.Err = err
			log.Error().Err(err).Str("template", d.ID).Str("transform", transform).Msg("Transform failed")
			return outcome, nil
		}
	}

	log.Debug().
		Str("template", d.ID).
		Str("source", src.Kind.String()).
		Str("transform", transform).
		Str("dest", dest).
		Msg("Template rendered")

	written, err := gate.Write(dest, lines.Normalize(content), opts.Force || d.Force)
	outcome.Outcome = written
	if err != nil {
		outcome.Err = err
		log.Error().Err(err).Str("template", d.ID).Str("dest", dest).Msg("Write failed")
		return outcome, nil
	}

	log.Debug().Str("template", d.ID).Str("decision", written.Decision.String()).Bool("forced", written.Forced()).Msg("Template processed")
	return outcome, nil
}
