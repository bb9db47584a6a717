package main

import (
	"strings"

	"github.com/atotto/clipboard"
)

// ExportText joins the raw text of rows with newlines, keeping row order.
// Placeholder rows contribute an empty line.
func ExportText(rows []LineRow) string {
	raw := make([]string, len(rows))
	for i, row := range rows {
		raw[i] = row.Raw
	}
	return strings.Join(raw, "\n")
}

// Clipboard writes text to a clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// systemClipboard writes to the OS clipboard (xclip/xsel/wl-copy, pbcopy or
// the Windows API, as chosen by atotto/clipboard).
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// NewSystemClipboard returns the OS clipboard, or nil when the platform has
// no usable clipboard utility.
func NewSystemClipboard() Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return systemClipboard{}
}
