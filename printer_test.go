package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Print(t *testing.T) {
	t.Parallel()

	in := Inputs{
		Original: Source{Label: "old.txt", Text: "a\nb\nc"},
		Changed:  Source{Label: "new.txt", Text: "a\nX\nc"},
	}
	cmp := Compare(NewMyersProvider(), in.Original.Text, in.Changed.Text)

	var buf bytes.Buffer
	p := &Printer{Out: &buf, Width: 43, Styles: plainStyles()}
	require.NoError(t, p.Print(in, cmp))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "old.txt              │ new.txt", lines[0])
	assert.Contains(t, lines[1], "− 1 removals")
	assert.Contains(t, lines[1], "+ 1 additions")
	assert.Contains(t, lines[1], "3 lines")
	assert.Equal(t, strings.Repeat("─", 20)+"─┼─"+strings.Repeat("─", 20), lines[2])
	assert.Equal(t, "   1 a               │    1 a", strings.TrimRight(lines[3], " "))
	assert.Equal(t, "   2 b               │    2 X", strings.TrimRight(lines[4], " "))
	assert.Equal(t, "   3 c               │    3 c", strings.TrimRight(lines[5], " "))
}

func TestPrinter_NoDifferences(t *testing.T) {
	t.Parallel()

	cmp := Compare(NewMyersProvider(), "same\ntext", "same\ntext")

	var buf bytes.Buffer
	p := &Printer{Out: &buf, Width: 80, Styles: plainStyles()}
	require.NoError(t, p.Print(Inputs{}, cmp))

	assert.Equal(t, "No Differences Found\nThe two code blocks are identical.\n", buf.String())
}
