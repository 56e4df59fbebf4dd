package testutil

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CaptureLogs sends the global logger to a buffer at the given level until
// the test ends. Tests using it must not run in parallel.
func CaptureLogs(t *testing.T, level zerolog.Level) *bytes.Buffer {
	t.Helper()

	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(level)

	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}
