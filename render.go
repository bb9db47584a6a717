package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// cellRenderer draws one side of a row into a fixed-width cell
type cellRenderer struct {
	styles      Styles
	highlighter *SyntaxHighlighter
}

// renderRow draws a full row: left cell, gutter, right cell
func (c cellRenderer) renderRow(pair RowPair, colWidth int) string {
	return c.renderCell(pair.Left, colWidth) +
		c.styles.Gutter.Render(" │ ") +
		c.renderCell(pair.Right, colWidth)
}

// renderCell draws a line number followed by content truncated or padded to
// exactly width cells. Placeholders render blank.
func (c cellRenderer) renderCell(row LineRow, width int) string {
	num := strings.Repeat(" ", lineNumWidth)
	if row.Number > 0 {
		num = fmt.Sprintf("%*d", lineNumWidth, row.Number)
	}
	contentWidth := max(0, width-lineNumWidth-1)
	base := c.styles.rowStyle(row.Kind)

	var b strings.Builder
	b.WriteString(c.styles.LineNum.Render(num))
	b.WriteString(" ")

	used := 0
	if row.HasHighlights() || !c.highlighter.Enabled() {
		used = c.writeSpans(&b, row, contentWidth, base)
	} else {
		text, w := fitText(expandTabs(row.Text()), contentWidth)
		b.WriteString(c.highlighter.Highlight(text, base))
		used = w
	}

	if pad := contentWidth - used; pad > 0 {
		b.WriteString(base.Render(strings.Repeat(" ", pad)))
	}
	return b.String()
}

// writeSpans writes the row spans, styling highlighted words, until width
// cells are used. It returns the number of cells written.
func (c cellRenderer) writeSpans(b *strings.Builder, row LineRow, width int, base lipgloss.Style) int {
	used := 0
	for _, span := range row.Spans {
		if used >= width {
			break
		}
		text, w := fitText(expandTabs(span.Text), width-used)
		style := base
		if span.Highlighted {
			style = c.styles.highlightStyle(row.Kind)
		}
		b.WriteString(style.Render(text))
		used += w
	}
	return used
}

// fitText truncates s to width cells, marking the cut with an ellipsis.
// It returns the text and its width.
func fitText(s string, width int) (string, int) {
	if width <= 0 {
		return "", 0
	}
	w := runewidth.StringWidth(s)
	if w <= width {
		return s, w
	}
	s = runewidth.Truncate(s, width, ellipsis)
	return s, runewidth.StringWidth(s)
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// columnHeader renders the summary line above one column: the change count,
// the input's line count and the copy action.
func (c cellRenderer) columnHeader(side Side, count, lines int, copied bool, width int) string {
	icon, noun := c.styles.RemovedIcon.Render("−"), "removals"
	copyKey := "y"
	if side == SideRight {
		icon, noun = c.styles.AddedIcon.Render("+"), "additions"
		copyKey = "Y"
	}

	left := icon + " " + c.styles.ColumnHeader.Render(fmt.Sprintf("%d %s", count, noun))
	action := c.styles.CopyAction.Render("[" + copyKey + "] Copy")
	if copied {
		action = c.styles.CopiedAction.Render("Copied!")
	}
	right := c.styles.ColumnHeader.Render(fmt.Sprintf("%d lines", lines)) + "  " + action

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// Side identifies a comparison column
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "original"
	case SideRight:
		return "changed"
	default:
		return "none"
	}
}

// totalLines counts lines the way the panel headers report them: every
// newline starts a new line, including a final empty one.
func totalLines(text string) int {
	return strings.Count(text, "\n") + 1
}
