package types

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{"darwin", PlatformDarwin},
		{"linux", PlatformLinux},
		{"windows", PlatformWindows},
		{"freebsd", PlatformUnknown},
		{"", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePlatform(tt.goos))
		})
	}
}

func TestCurrentPlatform(t *testing.T) {
	assert.Equal(t, ParsePlatform(runtime.GOOS), CurrentPlatform())
}

func TestRenderContextForFile(t *testing.T) {
	base := RenderContext{ProjectName: "Demo", Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)}

	bound := base.ForFile("main.py")

	assert.Equal(t, "main.py", bound.FileName)
	assert.Equal(t, "Demo", bound.ProjectName)
	assert.Empty(t, base.FileName)
}
