// Package writegate decides, per output file, whether content is written,
// would be written under dry-run, or skipped because it already exists.
package writegate

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/pyboot/pkg/errors"
	"github.com/arthur-debert/pyboot/pkg/filesystem"
	"github.com/arthur-debert/pyboot/pkg/lines"
	"github.com/arthur-debert/pyboot/pkg/logging"
	"github.com/arthur-debert/pyboot/pkg/types"
	"github.com/aymanbagabas/go-udiff"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Decision is the gate's verdict for one destination.
type Decision int

const (
	// Skipped means the destination exists and force was off
	Skipped Decision = iota
	// Wrote means the destination now holds the new content
	Wrote
	// WouldWrite means a write was due but the run is a dry run
	WouldWrite
)

// String returns the decision as used in status lines.
func (d Decision) String() string {
	switch d {
	case Wrote:
		return "Wrote"
	case WouldWrite:
		return "Would write"
	default:
		return "Skipped"
	}
}

// Outcome reports what the gate did with one destination.
type Outcome struct {
	Path     string
	Decision Decision

	// Existed is true when the destination was present beforehand
	Existed bool
}

// Forced reports whether an existing destination was, or would be,
// overwritten.
func (o Outcome) Forced() bool {
	return o.Existed && o.Decision != Skipped
}

// Gate applies the existence and force policy.
type Gate struct {
	FS     types.FS
	DryRun bool
}

// New creates a gate over fs.
func New(fs types.FS, dryRun bool) *Gate {
	return &Gate{FS: fs, DryRun: dryRun}
}

// Write replaces dest with buf unless dest exists and force is false.
// Missing parent directories are created. Under dry-run nothing on disk
// changes.
func (g *Gate) Write(dest string, buf lines.Buffer, force bool) (Outcome, error) {
	log := logging.GetLogger("writegate")
	outcome := Outcome{Path: dest}

	existed, err := g.exists(dest)
	if err != nil {
		return outcome, err
	}
	outcome.Existed = existed

	if existed && !force {
		outcome.Decision = Skipped
		log.Debug().Str("path", dest).Msg("Destination exists, skipping")
		return outcome, nil
	}

	content := lines.Normalize(buf).Bytes()

	if g.DryRun {
		outcome.Decision = WouldWrite
		if existed {
			g.logDiff(dest, content)
		}
		log.Debug().Str("path", dest).Int("bytes", len(content)).Msg("Dry run, not writing")
		return outcome, nil
	}

	dir := filepath.Dir(dest)
	if err := g.FS.MkdirAll(dir, dirPerm); err != nil {
		return outcome, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}
	if err := filesystem.WriteFileAtomic(g.FS, dest, content, filePerm); err != nil {
		return outcome, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest).
			WithDetail("path", dest)
	}

	outcome.Decision = Wrote
	log.Debug().Str("path", dest).Int("bytes", len(content)).Bool("existed", existed).Msg("Wrote file")
	return outcome, nil
}

func (g *Gate) exists(path string) (bool, error) {
	_, err := g.FS.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path).
		WithDetail("path", path)
}

func (g *Gate) logDiff(path string, content []byte) {
	logger := logging.GetLogger("writegate")
	ev := logger.Debug()
	if !ev.Enabled() {
		return
	}

	current, err := g.FS.ReadFile(path)
	if err != nil {
		ev.Err(err).Str("path", path).Msg("Cannot read current content for diff")
		return
	}

	diff := udiff.Unified("a/"+path, "b/"+path, string(current), string(content))
	if diff == "" {
		ev.Str("path", path).Msg("Content unchanged")
		return
	}
	ev.Str("path", path).Msg("Pending changes:\n" + diff)
}
