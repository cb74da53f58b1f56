package tui

// Editor dimensions
const (
	// editorHeight is the number of visible lines in the names editor.
	editorHeight = 8

	// editorMinWidth keeps the editor usable on very narrow terminals.
	editorMinWidth = 20
)

// Layout offsets - these represent the space taken by fixed UI elements
const (
	// ContentWidthOffset accounts for the content box border and padding.
	ContentWidthOffset = 6

	// ChromeHeight accounts for the tab bar, status line and help bar.
	ChromeHeight = 6

	// NamesChromeHeight is the Names tab space above the list: title,
	// editor, prompt and headings.
	NamesChromeHeight = editorHeight + 8

	// DrawChromeHeight is the Draw tab space above the history list.
	DrawChromeHeight = 14
)

// CalculateContentWidth returns the width available inside the content box.
func CalculateContentWidth(termWidth int) int {
	return max(termWidth-ContentWidthOffset, editorMinWidth)
}

// listRows returns how many list rows fit below the given chrome, never
// fewer than three.
func listRows(termHeight, chrome int) int {
	if termHeight == 0 {
		return 0
	}
	return max(termHeight-ChromeHeight-chrome, 3)
}
