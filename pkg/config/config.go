package config

import (
	"sort"
	"time"
)

// Config is the fully layered pyboot configuration.
type Config struct {
	// Author, when set, is used verbatim and no lookups are run
	Author string `koanf:"author"`

	// AuthorLookupTimeout bounds each external author lookup
	AuthorLookupTimeout time.Duration `koanf:"author_lookup_timeout"`

	// Interpreter is named in the canonical shebang
	Interpreter string `koanf:"interpreter"`

	Paths PathsConfig `koanf:"paths"`

	// Templates is keyed by template id (ruff, ty, main, gitignore)
	Templates map[string]TemplateConfig `koanf:"templates"`
}

// PathsConfig controls output path handling.
type PathsConfig struct {
	// Strict turns a redirected output path into a fatal error
	Strict bool `koanf:"strict"`
}

// TemplateConfig holds the declarative part of one template descriptor.
type TemplateConfig struct {
	FileName   string `koanf:"file_name"`
	OutputPath string `koanf:"output_path"`
	Force      bool   `koanf:"force"`
	Enabled    bool   `koanf:"enabled"`

	// GlobalDefaults maps a platform name to a candidate file path
	GlobalDefaults map[string]string `koanf:"global_defaults"`
}

// Template returns the configuration for a template id.
func (c *Config) Template(id string) (TemplateConfig, bool) {
	tc, ok := c.Templates[id]
	return tc, ok
}

// TemplateIDs returns every configured template id, sorted.
func (c *Config) TemplateIDs() []string {
	ids := make([]string, 0, len(c.Templates))
	for id := range c.Templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
