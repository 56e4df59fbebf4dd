// Package author discovers the display name stamped into generated headers.
//
// Discovery is best effort: every lookup that fails, times out or finds
// nothing simply yields no name, and the next lookup is tried.
package author

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/pyboot/pkg/logging"
)

// DefaultTimeout bounds a single external lookup
const DefaultTimeout = 3 * time.Second

// Resolver tries to produce an author name.
type Resolver interface {
	Resolve(ctx context.Context) (string, bool)
}

// Static resolves to a fixed name; blank names do not resolve.
type Static string

// Resolve implements Resolver.
func (s Static) Resolve(context.Context) (string, bool) {
	name := strings.TrimSpace(string(s))
	return name, name != ""
}

// Command resolves to the trimmed stdout of an external command.
// A missing executable, a non-zero exit or blank output do not resolve.
type Command struct {
	Name     string
	Args     []string
	Runner   CommandRunner
	LookPath LookPathFunc

	// Timeout bounds the command; zero uses DefaultTimeout
	Timeout time.Duration
}

// Resolve implements Resolver.
func (c Command) Resolve(ctx context.Context) (string, bool) {
	log := logging.GetLogger("author")

	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(c.Name)
	if err != nil {
		log.Debug().Str("command", c.Name).Msg("Command not found")
		return "", false
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	runner := c.Runner
	if runner == nil {
		runner = NewRealRunner()
	}
	result, err := runner.Run(ctx, path, c.Args...)
	if err != nil {
		log.Debug().Err(err).Str("command", c.Name).Strs("args", c.Args).Msg("Lookup failed")
		return "", false
	}
	if result.ExitCode != 0 {
		log.Debug().Int("exitCode", result.ExitCode).Str("command", c.Name).Strs("args", c.Args).Msg("Lookup exited non-zero")
		return "", false
	}

	name := strings.TrimSpace(result.Stdout)
	return name, name != ""
}

// Chain resolves to the first resolver that succeeds.
type Chain []Resolver

// Resolve implements Resolver.
func (c Chain) Resolve(ctx context.Context) (string, bool) {
	for _, r := range c {
		if ctx.Err() != nil {
			return "", false
		}
		if name, ok := r.Resolve(ctx); ok {
			return name, true
		}
	}
	return "", false
}

// Options configures the default resolver.
type Options struct {
	// Configured, when non-blank, is used verbatim and no commands run
	Configured string

	Timeout  time.Duration
	Runner   CommandRunner
	LookPath LookPathFunc
}

// NewResolver returns the configured name, or the git then GitHub CLI
// lookups: git user.name, gh account name, gh login.
func NewResolver(opts Options) Resolver {
	if strings.TrimSpace(opts.Configured) != "" {
		return Static(opts.Configured)
	}

	command := func(name string, args ...string) Command {
		return Command{
			Name:     name,
			Args:     args,
			Runner:   opts.Runner,
			LookPath: opts.LookPath,
			Timeout:  opts.Timeout,
		}
	}

	return Chain{
		command("git", "config", "--global", "user.name"),
		command("gh", "api", "user", "-q", ".name"),
		command("gh", "api", "user", "-q", ".login"),
	}
}

// Lookup runs r and returns the name, or "" when nothing resolved.
func Lookup(ctx context.Context, r Resolver) string {
	if r == nil {
		return ""
	}
	name, _ := r.Resolve(ctx)
	return name
}
