package author

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealRunner(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	tests := []struct {
		name   string
		script string
		stdout string
		code   int
	}{
		{"stdout captured", "echo hello; echo ignored >&2", "hello\n", 0},
		{"exit code reported", "exit 3", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewRealRunner().Run(context.Background(), sh, "-c", tt.script)
			require.NoError(t, err)
			assert.Equal(t, tt.stdout, result.Stdout)
			assert.Equal(t, tt.code, result.ExitCode)
		})
	}
}

func TestRealRunnerMissingBinary(t *testing.T) {
	_, err := NewRealRunner().Run(context.Background(), "/nonexistent/pyboot-test-binary")
	assert.Error(t, err)
}
