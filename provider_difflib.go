package main

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// difflibProvider diffs with difflib's SequenceMatcher (Ratcliff/Obershelp).
// It tends to produce longer unchanged runs than Myers on reordered code.
type difflibProvider struct{}

// NewDifflibProvider creates a SequenceMatcher-backed provider
func NewDifflibProvider() Provider {
	return difflibProvider{}
}

// DiffLines computes a line-level edit script
func (difflibProvider) DiffLines(oldText, newText string) []DiffSegment {
	return opCodesToSegments(splitLinesKeepEOL(oldText), splitLinesKeepEOL(newText))
}

// DiffWordsWithSpace computes a word-level edit script for one line pair
func (difflibProvider) DiffWordsWithSpace(oldLine, newLine string) []DiffSegment {
	return opCodesToSegments(tokenizeWords(oldLine), tokenizeWords(newLine))
}

// opCodesToSegments converts matcher opcodes into merged segments. A replace
// opcode becomes a removed run followed by an added run.
func opCodesToSegments(oldItems, newItems []string) []DiffSegment {
	// Autojunk treats frequent lines (blank lines, braces) as noise, which
	// fragments code diffs badly.
	matcher := difflib.NewMatcherWithJunk(oldItems, newItems, false, nil)

	var segs []DiffSegment
	for _, op := range matcher.GetOpCodes() {
		oldRun := strings.Join(oldItems[op.I1:op.I2], "")
		newRun := strings.Join(newItems[op.J1:op.J2], "")
		switch op.Tag {
		case 'e':
			segs = appendSegment(segs, SegmentUnchanged, oldRun)
		case 'd':
			segs = appendSegment(segs, SegmentRemoved, oldRun)
		case 'i':
			segs = appendSegment(segs, SegmentAdded, newRun)
		case 'r':
			segs = appendSegment(segs, SegmentRemoved, oldRun)
			segs = appendSegment(segs, SegmentAdded, newRun)
		}
	}
	return segs
}

// splitLinesKeepEOL splits text after each newline so joining the result
// reproduces the input exactly.
func splitLinesKeepEOL(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
