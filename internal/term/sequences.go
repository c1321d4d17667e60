// Package term owns the raw terminal: escape sequences, interactivity
// detection, size reporting, and the alternate-screen and cursor state
// that must be unwound before the process exits.
package term

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Sequence helpers build on termenv's escape constants so the byte
// forms stay in one well-known place. Rows and columns are 1-indexed,
// matching the terminal's own addressing.

// CursorPosition moves the cursor to the given row and column.
func CursorPosition(row, col int) string {
	return termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, row, col)
}

// SetScrollRegion confines scrolling to the rows top through bottom,
// inclusive.
func SetScrollRegion(top, bottom int) string {
	return termenv.CSI + fmt.Sprintf(termenv.ChangeScrollingRegionSeq, top, bottom)
}

// ResetScrollRegion restores scrolling to the full screen.
func ResetScrollRegion() string {
	return termenv.CSI + "r"
}

// ScrollUp scrolls the scroll region up by n lines.
func ScrollUp(n int) string {
	return termenv.CSI + fmt.Sprintf(termenv.ScrollUpSeq, n)
}

// ClearLine erases from the cursor to the end of the current line.
func ClearLine() string {
	return termenv.CSI + "K"
}

// ClearScreen erases the entire visible screen.
func ClearScreen() string {
	return termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 2)
}
