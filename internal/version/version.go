package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/pyboot/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/pyboot/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/pyboot/internal/version.Date={{.Date}}
)

// Info renders the build information on one line.
func Info() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
