package main

import "strings"

// RowKind describes how one side of a row is rendered
type RowKind int

const (
	RowUnchanged RowKind = iota
	RowAdded
	RowRemoved
	RowPlaceholder
)

// String returns the string representation of the row kind
func (k RowKind) String() string {
	switch k {
	case RowAdded:
		return "added"
	case RowRemoved:
		return "removed"
	case RowPlaceholder:
		return "placeholder"
	default:
		return "unchanged"
	}
}

// Span is a piece of line content, highlighted when it differs from the
// paired line on the other side.
type Span struct {
	Text        string
	Highlighted bool
}

// LineRow is one side of a rendered row
type LineRow struct {
	Number int    // 1-based source line number, 0 for placeholders
	Spans  []Span // inline content; plain rows hold at most one span
	Raw    string // source line used for copy export, empty for placeholders
	Kind   RowKind
}

// Text returns the row content without highlighting
func (r LineRow) Text() string {
	if len(r.Spans) == 1 {
		return r.Spans[0].Text
	}
	var b strings.Builder
	for _, s := range r.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// HasHighlights reports whether any span carries word-level highlighting
func (r LineRow) HasHighlights() bool {
	for _, s := range r.Spans {
		if s.Highlighted {
			return true
		}
	}
	return false
}

// RowPair is one rendered line across both columns
type RowPair struct {
	Left  LineRow
	Right LineRow
}

// Summary counts changed lines on each side
type Summary struct {
	Additions int
	Removals  int
}

// HasChanges reports whether the compared texts differ
func (s Summary) HasChanges() bool {
	return s.Additions > 0 || s.Removals > 0
}

// Comparison is the aligned result of comparing two texts
type Comparison struct {
	Summary
	Rows []RowPair
}

// LeftRows returns the original-text column
func (c Comparison) LeftRows() []LineRow {
	rows := make([]LineRow, len(c.Rows))
	for i, p := range c.Rows {
		rows[i] = p.Left
	}
	return rows
}

// RightRows returns the changed-text column
func (c Comparison) RightRows() []LineRow {
	rows := make([]LineRow, len(c.Rows))
	for i, p := range c.Rows {
		rows[i] = p.Right
	}
	return rows
}

// WordDiffFunc computes a word-level edit script for one line pair
type WordDiffFunc func(oldLine, newLine string) []DiffSegment

// Compare diffs two texts with p and aligns the result. A nil provider means
// no diff capability is available and yields the empty comparison.
func Compare(p Provider, oldText, newText string) Comparison {
	if p == nil {
		return Comparison{}
	}
	return Align(p.DiffLines(oldText, newText), p.DiffWordsWithSpace)
}

// Align turns a line-level edit script into side-by-side rows.
//
// A removed run directly followed by an added run is a replace block: its
// lines are paired by position, each complete pair gets word-level spans from
// wordDiff, and the shorter side is padded with placeholders. Other runs map
// one line per row with a placeholder opposite added or removed lines.
// Line numbers on each side count up from 1 and skip placeholders.
func Align(segs []DiffSegment, wordDiff WordDiffFunc) Comparison {
	a := aligner{leftNum: 1, rightNum: 1, wordDiff: wordDiff}

	for i := 0; i < len(segs); {
		cur := segs[i]
		switch {
		case cur.Kind == SegmentRemoved && i+1 < len(segs) && segs[i+1].Kind == SegmentAdded:
			a.replaceBlock(splitLines(cur.Text), splitLines(segs[i+1].Text))
			i += 2
		case cur.Kind == SegmentRemoved:
			for _, line := range splitLines(cur.Text) {
				a.emit(a.removedRow(line, plainSpans(line)), placeholderRow())
				a.out.Removals++
			}
			i++
		case cur.Kind == SegmentAdded:
			for _, line := range splitLines(cur.Text) {
				a.emit(placeholderRow(), a.addedRow(line, plainSpans(line)))
				a.out.Additions++
			}
			i++
		default:
			for _, line := range splitLines(cur.Text) {
				left := LineRow{Number: a.leftNum, Spans: plainSpans(line), Raw: line, Kind: RowUnchanged}
				right := LineRow{Number: a.rightNum, Spans: plainSpans(line), Raw: line, Kind: RowUnchanged}
				a.leftNum++
				a.rightNum++
				a.emit(left, right)
			}
			i++
		}
	}
	return a.out
}

type aligner struct {
	leftNum  int
	rightNum int
	wordDiff WordDiffFunc
	out      Comparison
}

func (a *aligner) emit(left, right LineRow) {
	a.out.Rows = append(a.out.Rows, RowPair{Left: left, Right: right})
}

func (a *aligner) replaceBlock(removed, added []string) {
	a.out.Removals += len(removed)
	a.out.Additions += len(added)

	n := max(len(removed), len(added))
	for j := 0; j < n; j++ {
		switch {
		case j < len(removed) && j < len(added):
			leftSpans, rightSpans := a.wordSpans(removed[j], added[j])
			a.emit(a.removedRow(removed[j], leftSpans), a.addedRow(added[j], rightSpans))
		case j < len(removed):
			a.emit(a.removedRow(removed[j], plainSpans(removed[j])), placeholderRow())
		default:
			a.emit(placeholderRow(), a.addedRow(added[j], plainSpans(added[j])))
		}
	}
}

// wordSpans splits a word-level script into the spans shown on each side.
// Removed words only appear on the left and added words only on the right.
func (a *aligner) wordSpans(oldLine, newLine string) (left, right []Span) {
	if a.wordDiff == nil {
		return highlightedSpans(oldLine), highlightedSpans(newLine)
	}
	for _, seg := range a.wordDiff(oldLine, newLine) {
		switch seg.Kind {
		case SegmentRemoved:
			left = append(left, Span{Text: seg.Text, Highlighted: true})
		case SegmentAdded:
			right = append(right, Span{Text: seg.Text, Highlighted: true})
		default:
			left = append(left, Span{Text: seg.Text})
			right = append(right, Span{Text: seg.Text})
		}
	}
	return left, right
}

func (a *aligner) removedRow(line string, spans []Span) LineRow {
	row := LineRow{Number: a.leftNum, Spans: spans, Raw: line, Kind: RowRemoved}
	a.leftNum++
	return row
}

func (a *aligner) addedRow(line string, spans []Span) LineRow {
	row := LineRow{Number: a.rightNum, Spans: spans, Raw: line, Kind: RowAdded}
	a.rightNum++
	return row
}

func placeholderRow() LineRow {
	return LineRow{Kind: RowPlaceholder}
}

func plainSpans(line string) []Span {
	if line == "" {
		return nil
	}
	return []Span{{Text: line}}
}

func highlightedSpans(line string) []Span {
	if line == "" {
		return nil
	}
	return []Span{{Text: line, Highlighted: true}}
}
