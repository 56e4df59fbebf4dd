package lines

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Buffer
	}{
		{"empty", "", Buffer{"\n"}},
		{"single line without terminator", "a", Buffer{"a\n"}},
		{"terminated lines", "a\nb\n", Buffer{"a\n", "b\n"}},
		{"last line unterminated", "a\nb", Buffer{"a\n", "b\n"}},
		{"blank lines kept", "a\n\n\nb\n", Buffer{"a\n", "\n", "\n", "b\n"}},
		{"crlf kept on line", "a\r\nb\r\n", Buffer{"a\r\n", "b\r\n"}},
		{"only newline", "\n", Buffer{"\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromText(tt.text))
		})
	}
}

func TestFromFragments(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      Buffer
	}{
		{"nil", nil, Buffer{"\n"}},
		{"empty slice", []string{}, Buffer{"\n"}},
		{"bare fragments", []string{"# header", "", "x = 1"}, Buffer{"# header\n", "\n", "x = 1\n"}},
		{"mixed terminators", []string{"a\n", "b"}, Buffer{"a\n", "b\n"}},
		{"single empty fragment", []string{""}, Buffer{"\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFragments(tt.fragments))
		})
	}
}

func TestNormalizeProperties(t *testing.T) {
	inputs := [][]string{
		nil,
		{""},
		{"a", "b\n", ""},
		{"\n", "\n"},
		{"x\r\n", "tail"},
		{"multi\nline fragment"},
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)

		assert.Equal(t, once, twice, "normalize must be idempotent for %q", in)
		assert.NotEmpty(t, once)
		for _, line := range once {
			assert.True(t, strings.HasSuffix(line, "\n"), "line %q must be terminated", line)
			assert.False(t, strings.HasSuffix(line, "\n\n"), "line %q must carry one terminator", line)
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b"}
	_ = Normalize(in)
	assert.Equal(t, []string{"a", "b"}, in)
}

func TestBufferJoin(t *testing.T) {
	buf := FromFragments([]string{"one", "two"})
	assert.Equal(t, "one\ntwo\n", buf.String())
	assert.Equal(t, []byte("one\ntwo\n"), buf.Bytes())

	clone := buf.Clone()
	clone[0] = "changed\n"
	assert.Equal(t, "one\n", buf[0])
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank("\n"))
	assert.True(t, IsBlank("   \t\n"))
	assert.False(t, IsBlank("# c\n"))
}
