package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLexer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		language string
		files    []string
		want     string
	}{
		{"explicit language", "python", []string{"main.go"}, "Python"},
		{"from file name", "", []string{"", "cmd/main.go"}, "Go"},
		{"from extension", "", []string{"script.js"}, "JavaScript"},
		{"unknown language falls back to files", "no-such-lang", []string{"a.rs"}, "Rust"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lexer := DetectLexer(tt.language, tt.files...)
			require.NotNil(t, lexer)
			assert.Equal(t, tt.want, lexer.Config().Name)
		})
	}

	assert.Nil(t, DetectLexer("", "notes.unknownext"))
	assert.Nil(t, DetectLexer(""))
}

func TestSyntaxHighlighter(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	base := r.NewStyle()

	h := NewSyntaxHighlighter("monokai", DetectLexer("go"))
	require.True(t, h.Enabled())

	out := h.Highlight("return nil", base)
	assert.Contains(t, out, "\x1b[")
	assert.Equal(t, len("return nil"), lipgloss.Width(out))

	disabled := NewSyntaxHighlighter("monokai", nil)
	assert.False(t, disabled.Enabled())
	assert.Equal(t, "x", disabled.Highlight("x", r.NewStyle()))

	var nilHighlighter *SyntaxHighlighter
	assert.False(t, nilHighlighter.Enabled())
}
