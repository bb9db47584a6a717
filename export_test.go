package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockClipboard records what was written
type mockClipboard struct {
	WriteAllFn func(text string) error
	writes     []string
}

func (m *mockClipboard) WriteAll(text string) error {
	m.writes = append(m.writes, text)
	if m.WriteAllFn != nil {
		return m.WriteAllFn(text)
	}
	return nil
}

func failingClipboard() *mockClipboard {
	return &mockClipboard{WriteAllFn: func(string) error { return errors.New("xclip not found") }}
}

func TestExportText(t *testing.T) {
	t.Parallel()

	rows := []LineRow{
		{Number: 1, Raw: "a", Kind: RowUnchanged},
		{Kind: RowPlaceholder},
		{Number: 2, Raw: "c", Kind: RowRemoved},
	}
	assert.Equal(t, "a\n\nc", ExportText(rows))
	assert.Equal(t, "", ExportText(nil))
}

func TestExportText_RoundTrip(t *testing.T) {
	t.Parallel()

	cmp := Compare(NewMyersProvider(), sampleOriginal, sampleChanged)

	var kept []string
	for _, row := range cmp.LeftRows() {
		if row.Kind != RowPlaceholder {
			kept = append(kept, row.Raw)
		}
	}
	assert.Equal(t, strings.TrimSuffix(sampleOriginal, "\n"), strings.Join(kept, "\n"))

	right := ExportText(cmp.RightRows())
	assert.Equal(t, len(cmp.Rows)-1, strings.Count(right, "\n"), "one line per row")
}
