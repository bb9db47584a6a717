package main

// Layout constants for the TUI
const (
	headerRows      = 2 // title + separator
	footerRows      = 1
	panelBorderRows = 2 // top + bottom border
	panelBorderCols = 2 // left + right border
	inputLabelRows  = 1
	columnHeadRows  = 1 // removals/additions header above the diff rows

	// Inputs take 1/inputHeightRatio of the content height
	inputHeightRatio = 3
	minInputHeight   = 3

	lineNumWidth = 4 // width of each line number column
	gutterWidth  = 3 // " │ " between the two columns
	tabWidth     = 4

	helpModalMaxWidth  = 60
	helpModalMaxHeight = 40
	helpModalPadding   = 4
)

// contentHeight is the height between header and footer
func contentHeight(totalHeight int) int {
	return max(1, totalHeight-headerRows-footerRows)
}

// inputPanelHeight is the outer height of each input panel, borders included
func inputPanelHeight(totalHeight int) int {
	return max(minInputHeight+panelBorderRows+inputLabelRows, contentHeight(totalHeight)/inputHeightRatio)
}

// textareaHeight is the number of editable rows inside an input panel
func textareaHeight(totalHeight int) int {
	return max(1, inputPanelHeight(totalHeight)-panelBorderRows-inputLabelRows)
}

// inputPanelWidth is the outer width of each input panel
func inputPanelWidth(totalWidth int) int {
	return max(panelBorderCols+1, totalWidth/2)
}

// diffPanelHeight is the outer height of the comparison panel
func diffPanelHeight(totalHeight int) int {
	return max(panelBorderRows+1, contentHeight(totalHeight)-inputPanelHeight(totalHeight))
}

// diffViewportHeight is the number of scrollable rows in the comparison panel
func diffViewportHeight(totalHeight int) int {
	return max(1, diffPanelHeight(totalHeight)-panelBorderRows-columnHeadRows)
}

// columnWidth splits the inner width into two columns around the gutter
func columnWidth(innerWidth int) int {
	return max(lineNumWidth+2, (innerWidth-gutterWidth)/2)
}

// helpModalDimensions calculates the dimensions for the help modal
func helpModalDimensions(screenWidth, screenHeight int) (width, height int) {
	width = min(helpModalMaxWidth, screenWidth-helpModalPadding)
	height = min(helpModalMaxHeight, screenHeight-helpModalPadding)
	return width, height
}
