package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Printer writes a comparison as plain side-by-side text
type Printer struct {
	Out         io.Writer
	Width       int
	Styles      Styles
	Highlighter *SyntaxHighlighter
}

// Print writes the comparison of in. Identical inputs produce a single
// notice instead of the two columns.
func (p *Printer) Print(in Inputs, cmp Comparison) error {
	w := bufio.NewWriter(p.Out)

	if !cmp.HasChanges() {
		fmt.Fprintln(w, p.Styles.Notice.Render("No Differences Found"))
		fmt.Fprintln(w, p.Styles.NoticeSubtle.Render("The two code blocks are identical."))
		return w.Flush()
	}

	colWidth := columnWidth(p.Width)
	cells := cellRenderer{styles: p.Styles, highlighter: p.Highlighter}
	gutter := p.Styles.Gutter.Render(" │ ")

	labelLeft, _ := fitText(in.Original.Label, colWidth)
	labelRight, _ := fitText(in.Changed.Label, colWidth)
	fmt.Fprintln(w, p.Styles.Title.Render(padRight(labelLeft, colWidth))+gutter+p.Styles.Title.Render(labelRight))

	fmt.Fprintln(w,
		cells.columnHeader(SideLeft, cmp.Removals, totalLines(in.Original.Text), false, colWidth)+
			gutter+
			cells.columnHeader(SideRight, cmp.Additions, totalLines(in.Changed.Text), false, colWidth))

	rule := strings.Repeat("─", colWidth)
	fmt.Fprintln(w, p.Styles.Separator.Render(rule+"─┼─"+rule))

	for _, pair := range cmp.Rows {
		fmt.Fprintln(w, cells.renderRow(pair, colWidth))
	}
	return w.Flush()
}

func padRight(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
