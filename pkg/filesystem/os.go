package filesystem

import (
	"github.com/arthur-debert/pyboot/pkg/types"
	"github.com/spf13/afero"
)

// NewOS creates a filesystem backed by the real operating system
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemory creates an empty in-memory filesystem
func NewMemory() types.FS {
	return NewAferoFS(afero.NewMemMapFs())
}
