package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutHeights(t *testing.T) {
	t.Parallel()

	for _, height := range []int{10, 24, 40, 100} {
		total := headerRows + inputPanelHeight(height) + diffPanelHeight(height) + footerRows
		assert.LessOrEqual(t, total, max(height, headerRows+footerRows+minInputHeight+panelBorderRows+inputLabelRows+panelBorderRows+1),
			"height %d", height)
		assert.Positive(t, textareaHeight(height))
		assert.Positive(t, diffViewportHeight(height))
	}

	assert.Equal(t, 22, diffViewportHeight(40))
	assert.Equal(t, 9, textareaHeight(40))
}

func TestColumnWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 47, columnWidth(98))
	assert.Equal(t, 20, columnWidth(43))
	assert.Equal(t, lineNumWidth+2, columnWidth(0))
}

func TestHelpModalDimensions(t *testing.T) {
	t.Parallel()

	w, h := helpModalDimensions(200, 100)
	assert.Equal(t, helpModalMaxWidth, w)
	assert.Equal(t, helpModalMaxHeight, h)

	w, h = helpModalDimensions(40, 20)
	assert.Equal(t, 40-helpModalPadding, w)
	assert.Equal(t, 20-helpModalPadding, h)
}
