package writegate

import (
	"errors"
	"testing"

	perrors "github.com/arthur-debert/pyboot/pkg/errors"
	"github.com/arthur-debert/pyboot/pkg/lines"
	"github.com/arthur-debert/pyboot/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name         string
		existing     string
		dryRun       bool
		force        bool
		wantDecision Decision
		wantExisted  bool
		wantForced   bool
		wantContent  string
	}{
		{
			name:         "absent destination is written",
			wantDecision: Wrote,
			wantContent:  "new\n",
		},
		{
			name:         "absent destination under dry run",
			dryRun:       true,
			wantDecision: WouldWrite,
		},
		{
			name:         "existing destination is skipped",
			existing:     "old\n",
			wantDecision: Skipped,
			wantExisted:  true,
			wantContent:  "old\n",
		},
		{
			name:         "existing destination skipped under dry run",
			existing:     "old\n",
			dryRun:       true,
			wantDecision: Skipped,
			wantExisted:  true,
			wantContent:  "old\n",
		},
		{
			name:         "existing destination forced",
			existing:     "old\nlonger than the new content\n",
			force:        true,
			wantDecision: Wrote,
			wantExisted:  true,
			wantForced:   true,
			wantContent:  "new\n",
		},
		{
			name:         "existing destination forced under dry run",
			existing:     "old\n",
			dryRun:       true,
			force:        true,
			wantDecision: WouldWrite,
			wantExisted:  true,
			wantForced:   true,
			wantContent:  "old\n",
		},
		{
			name:         "force on absent destination is not reported as forced",
			force:        true,
			wantDecision: Wrote,
			wantContent:  "new\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			dest := env.ProjectPath("ruff.toml")
			if tt.existing != "" {
				env.WithFileTree(testutil.FileTree{"ruff.toml": tt.existing})
			}

			out, err := New(env.FS, tt.dryRun).Write(dest, lines.Buffer{"new"}, tt.force)
			require.NoError(t, err)

			assert.Equal(t, dest, out.Path)
			assert.Equal(t, tt.wantDecision, out.Decision)
			assert.Equal(t, tt.wantExisted, out.Existed)
			assert.Equal(t, tt.wantForced, out.Forced())

			if tt.wantContent == "" {
				assert.False(t, env.Exists(dest))
				return
			}
			assert.Equal(t, tt.wantContent, env.ReadFile(dest))
		})
	}
}

func TestWriteCreatesParents(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	dest := env.ProjectPath("config", "lint", "ruff.toml")

	out, err := New(env.FS, false).Write(dest, lines.FromText("a = 1"), false)
	require.NoError(t, err)
	assert.Equal(t, Wrote, out.Decision)
	assert.Equal(t, "a = 1\n", env.ReadFile(dest))
}

func TestWriteDryRunCreatesNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	dest := env.ProjectPath("config", "ruff.toml")

	out, err := New(env.FS, true).Write(dest, lines.FromText("a = 1"), false)
	require.NoError(t, err)
	assert.Equal(t, WouldWrite, out.Decision)
	assert.False(t, env.Exists(env.ProjectPath("config")))
}

func TestWriteOnRealFilesystem(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	dest := env.ProjectPath("main.py")
	env.WithFileTree(testutil.FileTree{"main.py": "print('old')\n"})

	out, err := New(env.FS, false).Write(dest, lines.FromText("print('new')\n"), true)
	require.NoError(t, err)
	assert.True(t, out.Forced())
	assert.Equal(t, "print('new')\n", env.ReadFile(dest))
}

func TestWriteErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("stat failure", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		dest := env.ProjectPath("ty.toml")
		fs := testutil.NewErrorFS(env.FS).WithError(dest, boom)

		_, err := New(fs, false).Write(dest, lines.Buffer{"x"}, false)
		require.Error(t, err)
		assert.True(t, perrors.IsErrorCode(err, perrors.ErrFileAccess))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("directory failure", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		dir := env.ProjectPath("sub")
		fs := testutil.NewErrorFS(env.FS).WithError(dir, boom)

		_, err := New(fs, false).Write(env.ProjectPath("sub", "ty.toml"), lines.Buffer{"x"}, false)
		require.Error(t, err)
		assert.True(t, perrors.IsErrorCode(err, perrors.ErrDirCreate))
	})

	t.Run("write failure leaves original", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WithFileTree(testutil.FileTree{"ty.toml": "old\n"})
		dest := env.ProjectPath("ty.toml")
		fs := testutil.NewErrorFS(env.FS).WithOpError(testutil.OpRename, dest, boom)

		_, err := New(fs, false).Write(dest, lines.Buffer{"x"}, true)
		require.Error(t, err)
		assert.True(t, perrors.IsErrorCode(err, perrors.ErrFileWrite))
		assert.Equal(t, "old\n", env.ReadFile(dest))
	})
}

func TestDryRunDiffLogged(t *testing.T) {
	logs := testutil.CaptureLogs(t, zerolog.DebugLevel)
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithFileTree(testutil.FileTree{"ruff.toml": "line-length = 88\n"})

	_, err := New(env.FS, true).Write(env.ProjectPath("ruff.toml"), lines.FromText("line-length = 100\n"), true)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "-line-length = 88")
	assert.Contains(t, logs.String(), "+line-length = 100")
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "Wrote", Wrote.String())
	assert.Equal(t, "Would write", WouldWrite.String())
	assert.Equal(t, "Skipped", Skipped.String())
}
