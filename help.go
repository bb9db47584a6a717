package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help modal centred on the screen
func (m Model) renderHelp() string {
	modalWidth, modalHeight := helpModalDimensions(m.width, m.height)

	var content strings.Builder
	content.WriteString(m.styles.HelpTitle.Render("Keyboard Shortcuts"))
	content.WriteString("\n")

	for _, section := range m.keys.helpSections() {
		content.WriteString(m.styles.HelpSection.Render(section.title))
		content.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			content.WriteString(m.styles.HelpKey.Render(h.Key))
			content.WriteString(" ")
			content.WriteString(m.styles.HelpDesc.Render(h.Desc))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(m.styles.Subtle.Render("Press ? to close"))

	modal := m.styles.HelpModal.
		Width(max(1, modalWidth)).
		MaxHeight(max(1, modalHeight)).
		Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
