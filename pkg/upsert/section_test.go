package upsert

import (
	"testing"

	"github.com/arthur-debert/pyboot/pkg/lines"
	"github.com/arthur-debert/pyboot/pkg/pyversion"
	"github.com/arthur-debert/pyboot/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tyPythonVersion = SectionKey{
	Section: "environment",
	Key:     "python-version",
	Style:   pyversion.MajorMinor,
}

func TestSectionKeyUpsert(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "missing key inserted as second line",
			in:   "[environment]\n# keep aligned\n\n[terminal]\nerror-on-warning = false\n",
			want: "[environment]\npython-version = \"3.12\"\n# keep aligned\n\n\n[terminal]\nerror-on-warning = false\n",
		},
		{
			name: "existing key replaced in place",
			in:   "[environment]\n# c\npython-version = \"3.9\"\n[rules]\n",
			want: "[environment]\n# c\npython-version = \"3.12\"\n\n\n[rules]\n",
		},
		{
			name: "missing section prepended",
			in:   "[src]\nexclude = []\n",
			want: "[environment]\npython-version = \"3.12\"\n\n[src]\nexclude = []\n",
		},
		{
			name: "section at end of buffer",
			in:   "[src]\n\n[environment]\n",
			want: "[src]\n\n[environment]\npython-version = \"3.12\"\n\n\n",
		},
		{
			name: "extra trailing blanks collapse to two",
			in:   "[environment]\npython-version = \"3.12\"\n\n\n\n\n[rules]\n",
			want: "[environment]\npython-version = \"3.12\"\n\n\n[rules]\n",
		},
		{
			name: "key in other section is ignored",
			in:   "[tool]\npython-version = \"3.8\"\n[environment]\n",
			want: "[tool]\npython-version = \"3.8\"\n[environment]\npython-version = \"3.12\"\n\n\n",
		},
		{
			name: "empty buffer",
			in:   "",
			want: "[environment]\npython-version = \"3.12\"\n\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tyPythonVersion.Upsert(lines.FromText(tt.in), "3.12")
			assert.Equal(t, tt.want, got.String())

			settled := tyPythonVersion.Upsert(got, "3.12")
			again := tyPythonVersion.Upsert(settled, "3.12")
			assert.Equal(t, settled, again, "upsert must reach a fixed point")
		})
	}
}

func TestSectionKeyUpsertAppendsSeparator(t *testing.T) {
	in := lines.FromText("[environment]\npython-version = \"3.12\"\n")
	got := tyPythonVersion.Upsert(in, "3.12")
	assert.Equal(t, "[environment]\npython-version = \"3.12\"\n\n\n", got.String())
}

func TestSectionKeyUpsertPrependedSectionSettles(t *testing.T) {
	first := tyPythonVersion.Upsert(lines.FromText("[src]\n"), "3.12")
	assert.Equal(t, "[environment]\npython-version = \"3.12\"\n\n[src]\n", first.String())

	// a rerun finds the section and applies the two blank line separator
	second := tyPythonVersion.Upsert(first, "3.12")
	assert.Equal(t, "[environment]\npython-version = \"3.12\"\n\n\n[src]\n", second.String())
	assert.Equal(t, second, tyPythonVersion.Upsert(second, "3.12"))
}

func TestSectionKeyApply(t *testing.T) {
	ctx := types.RenderContext{Version: pyversion.MustParse("3.12.4")}
	body := lines.FromFragments([]string{
		"[src]",
		"exclude = [\".venv\"]",
		"",
		"[environment]",
		"# python-version = \"3.14\"",
		"",
		"[rules]",
		"all = \"warn\"",
	})

	got, err := tyPythonVersion.Apply(body, ctx)
	require.NoError(t, err)

	var parsed struct {
		Environment struct {
			PythonVersion string `toml:"python-version"`
		} `toml:"environment"`
		Rules map[string]string `toml:"rules"`
	}
	require.NoError(t, toml.Unmarshal(got.Bytes(), &parsed))
	assert.Equal(t, "3.12", parsed.Environment.PythonVersion)
	assert.Equal(t, "warn", parsed.Rules["all"])
	assert.Equal(t, "section:environment.python-version", tyPythonVersion.Name())
}
