package main

import (
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// myersProvider diffs with diff-match-patch (Myers' algorithm). Lines and
// word tokens are each encoded as a single rune so the engine compares whole
// units instead of characters.
type myersProvider struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewMyersProvider creates the default diff provider
func NewMyersProvider() Provider {
	dmp := diffmatchpatch.New()
	// A timeout would trade minimal scripts for speed; inputs here are pasted text.
	dmp.DiffTimeout = 0
	return &myersProvider{dmp: dmp}
}

// DiffLines computes a line-level edit script
func (p *myersProvider) DiffLines(oldText, newText string) []DiffSegment {
	return p.diffLines(newTokenEncoder(), oldText, newText)
}

func (p *myersProvider) diffLines(enc *tokenEncoder, oldText, newText string) []DiffSegment {
	oldRunes := enc.encode(splitLinesKeepEOL(oldText))
	newRunes := enc.encode(splitLinesKeepEOL(newText))
	if enc.overflow {
		return replaceAll(oldText, newText)
	}
	diffs := p.dmp.DiffMainRunes(oldRunes, newRunes, false)

	segs := make([]DiffSegment, 0, len(diffs))
	for _, d := range diffs {
		segs = appendSegment(segs, kindFromOperation(d.Type), enc.decode(d.Text))
	}
	return segs
}

// replaceAll is the script used when the inputs have more distinct lines
// than runes available to encode them
func replaceAll(oldText, newText string) []DiffSegment {
	if oldText == newText {
		return appendSegment(nil, SegmentUnchanged, oldText)
	}
	segs := appendSegment(nil, SegmentRemoved, oldText)
	return appendSegment(segs, SegmentAdded, newText)
}

// DiffWordsWithSpace computes a word-level edit script for one line pair
func (p *myersProvider) DiffWordsWithSpace(oldLine, newLine string) []DiffSegment {
	enc := newTokenEncoder()
	oldRunes := enc.encode(tokenizeWords(oldLine))
	newRunes := enc.encode(tokenizeWords(newLine))
	diffs := p.dmp.DiffMainRunes(oldRunes, newRunes, false)

	segs := make([]DiffSegment, 0, len(diffs))
	for _, d := range diffs {
		segs = appendSegment(segs, kindFromOperation(d.Type), enc.decode(d.Text))
	}
	return segs
}

func kindFromOperation(op diffmatchpatch.Operation) SegmentKind {
	switch op {
	case diffmatchpatch.DiffInsert:
		return SegmentAdded
	case diffmatchpatch.DiffDelete:
		return SegmentRemoved
	default:
		return SegmentUnchanged
	}
}

// tokenizeWords splits a line into word runs, whitespace runs and single
// punctuation characters. Concatenating the tokens reproduces the line.
func tokenizeWords(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string
	start := -1
	var class tokenClass
	for i, r := range s {
		c := classify(r)
		if start >= 0 && (c != class || c == classPunct) {
			tokens = append(tokens, s[start:i])
			start = -1
		}
		if start < 0 {
			start = i
			class = c
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

type tokenClass int

const (
	classWord tokenClass = iota
	classSpace
	classPunct
)

func classify(r rune) tokenClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
		return classWord
	default:
		return classPunct
	}
}

// tokenEncoder maps each distinct token to a rune. The surrogate range is
// skipped since those runes do not survive a string round trip. overflow is
// set once a token would need a rune past maxRune.
type tokenEncoder struct {
	index    map[string]rune
	tokens   []string
	maxRune  rune
	overflow bool
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

func newTokenEncoder() *tokenEncoder {
	return &tokenEncoder{index: make(map[string]rune), maxRune: unicode.MaxRune}
}

func (e *tokenEncoder) encode(tokens []string) []rune {
	runes := make([]rune, 0, len(tokens))
	for _, tok := range tokens {
		r, ok := e.index[tok]
		if !ok {
			r = rune(len(e.tokens) + 1)
			if r >= surrogateMin {
				r += surrogateMax - surrogateMin + 1
			}
			if r > e.maxRune {
				e.overflow = true
				return nil
			}
			e.index[tok] = r
			e.tokens = append(e.tokens, tok)
		}
		runes = append(runes, r)
	}
	return runes
}

func (e *tokenEncoder) decode(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > surrogateMax {
			r -= surrogateMax - surrogateMin + 1
		}
		idx := int(r) - 1
		if idx >= 0 && idx < len(e.tokens) {
			b.WriteString(e.tokens[idx])
		}
	}
	return b.String()
}
