package main

import "strings"

// SegmentKind tags a run of text in an edit script
type SegmentKind int

const (
	SegmentUnchanged SegmentKind = iota
	SegmentAdded
	SegmentRemoved
)

// String returns the string representation of the segment kind
func (k SegmentKind) String() string {
	switch k {
	case SegmentAdded:
		return "added"
	case SegmentRemoved:
		return "removed"
	default:
		return "unchanged"
	}
}

// DiffSegment is one run of an edit script. Concatenating the unchanged and
// removed segments yields the old text; unchanged and added yield the new text.
type DiffSegment struct {
	Text string
	Kind SegmentKind
}

// Provider computes edit scripts. Implementations wrap a third-party diff
// engine; the alignment code only relies on the segment contract above.
type Provider interface {
	// DiffLines returns a line-granularity edit script. Each segment holds
	// whole lines including their trailing newline where present.
	DiffLines(oldText, newText string) []DiffSegment
	// DiffWordsWithSpace returns an edit script over word, whitespace and
	// punctuation tokens of a single line pair.
	DiffWordsWithSpace(oldLine, newLine string) []DiffSegment
}

// splitLines splits segment text into lines.
// A single trailing empty element left by a terminal newline is dropped:
// "a\nb\n" -> ["a", "b"], "\n\n" -> ["", ""].
func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// appendSegment appends text to segs, merging it into the last segment when
// the kinds match. Empty text is ignored.
func appendSegment(segs []DiffSegment, kind SegmentKind, text string) []DiffSegment {
	if text == "" {
		return segs
	}
	if n := len(segs); n > 0 && segs[n-1].Kind == kind {
		segs[n-1].Text += text
		return segs
	}
	return append(segs, DiffSegment{Text: text, Kind: kind})
}
