package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// SyntaxHighlighter colours line content by language
type SyntaxHighlighter struct {
	style *chroma.Style
	lexer chroma.Lexer
}

// NewSyntaxHighlighter creates a highlighter for the given chroma style and
// lexer. A nil lexer disables highlighting.
func NewSyntaxHighlighter(styleName string, lexer chroma.Lexer) *SyntaxHighlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	return &SyntaxHighlighter{style: style, lexer: lexer}
}

// DetectLexer picks a lexer from an explicit language name, falling back to
// the file names of the inputs. It returns nil if nothing matches.
func DetectLexer(language string, fileNames ...string) chroma.Lexer {
	if language != "" {
		if lexer := lexers.Get(language); lexer != nil {
			return lexer
		}
	}
	for _, name := range fileNames {
		if name == "" {
			continue
		}
		if lexer := lexers.Match(filepath.Base(name)); lexer != nil {
			return lexer
		}
		if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), "."); ext != "" {
			if lexer := lexers.Get(ext); lexer != nil {
				return lexer
			}
		}
	}
	return nil
}

// Enabled reports whether a lexer is configured
func (h *SyntaxHighlighter) Enabled() bool {
	return h != nil && h.lexer != nil
}

// Highlight renders line with token colours layered over base. Lines are
// tokenised independently, so constructs spanning lines are approximate.
func (h *SyntaxHighlighter) Highlight(line string, base lipgloss.Style) string {
	if !h.Enabled() || line == "" {
		return base.Render(line)
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return base.Render(line)
	}

	var result strings.Builder
	for _, token := range iterator.Tokens() {
		result.WriteString(h.styleToken(token, base))
	}
	return result.String()
}

// styleToken applies the chroma entry for token on top of base
func (h *SyntaxHighlighter) styleToken(token chroma.Token, base lipgloss.Style) string {
	// Lexers append a newline to unterminated input.
	content := strings.TrimSuffix(token.Value, "\n")
	if content == "" {
		return ""
	}

	entry := h.style.Get(token.Type)
	style := base
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style.Render(content)
}
