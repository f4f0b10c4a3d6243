// Package layout provides pure functions for UI dimension calculations.
package layout

// PanelChromeHeight is the rows a panel adds around its list:
// top and bottom border, title row and separator.
const PanelChromeHeight = 4

// PanelChromeWidth is the columns a panel adds: border and padding.
const PanelChromeWidth = 4

// Bounds of the text prompt width.
const (
	MinInputWidth = 10
	MaxInputWidth = 60
)

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	FooterHeight int // status line + key hints
}

// ContentHeight calculates the available height for the main panel.
// This is the terminal height minus header and footer.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.FooterHeight, 0)
}

// ListSize returns the inner size of a panel list filling the content area.
func ListSize(windowWidth, contentHeight int) (width, height int) {
	return max(windowWidth-PanelChromeWidth, 0), max(contentHeight-PanelChromeHeight, 0)
}

// InputWidth returns the prompt width for a given list width.
func InputWidth(listWidth int) int {
	return max(min(listWidth-8, MaxInputWidth), MinInputWidth)
}
