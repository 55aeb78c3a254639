// Text selection coordinate system
//
// The text selection code uses coordinates relative to the transcript
// viewport:
//
//	┌─────────────────────────────────────────────┐
//	│ ← 1px border                                │
//	│ header row (drag handle)                    │
//	│  ┌─────────────────────────────────────────┐│
//	│  │ (0,0)   Viewport content area           ││
//	│  │                                         ││
//	│  │    Selection coordinates are            ││
//	│  │    relative to this inner area          ││
//	│  │                                         ││
//	│  │                             (width, height)
//	│  └─────────────────────────────────────────┘│
//	└─────────────────────────────────────────────┘
//
// Mouse events from Bubble Tea arrive in terminal coordinates (0,0 =
// top-left of terminal). The app's mouse routing translates them before the
// chat sees them: subtract the panel origin, then the 1-cell border, then the
// header row. Selection state is stored in these viewport-relative
// coordinates and used directly both for text extraction and for the
// ultraviolet screen buffer that paints the highlight.
//
// When extracting selected text, ANSI escape codes are stripped first so
// coordinates align with visible character positions, and lines are sliced by
// rune so accented characters keep the alignment.

package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/jvalva/consulta/internal/clipboard"
	"github.com/jvalva/consulta/internal/logger"
)

// ClipboardErrorMsg is sent when the native clipboard fallback fails
type ClipboardErrorMsg struct {
	Error error
}

const (
	doubleClickThreshold = 500 * time.Millisecond
	clickTolerance       = 2 // cells
)

// StartSelection begins a text selection at the given coordinates
func (c *Chat) StartSelection(col, line int) {
	c.selection.StartCol = col
	c.selection.StartLine = line
	c.selection.EndCol = col
	c.selection.EndLine = line
	c.selection.Active = true
}

// EndSelection updates the end position of the selection during drag
func (c *Chat) EndSelection(col, line int) {
	if !c.selection.Active {
		return
	}
	c.selection.EndCol = col
	c.selection.EndLine = line
}

// SelectionStop ends the drag but keeps the selection visible
func (c *Chat) SelectionStop() {
	c.selection.Active = false
}

// SelectionClear clears the selection entirely
func (c *Chat) SelectionClear() {
	c.selection.Clear()
}

// HasTextSelection returns true if there is an active or completed selection
func (c *Chat) HasTextSelection() bool {
	return c.selection.HasSelection()
}

// handleMouseClick handles click events in the transcript and detects
// double/triple clicks
func (c *Chat) handleMouseClick(x, y int) tea.Cmd {
	now := time.Now()

	if now.Sub(c.selection.LastClickTime) <= doubleClickThreshold &&
		abs(x-c.selection.LastClickX) <= clickTolerance &&
		abs(y-c.selection.LastClickY) <= clickTolerance {
		c.selection.ClickCount++
	} else {
		c.selection.ClickCount = 1
	}

	c.selection.LastClickTime = now
	c.selection.LastClickX = x
	c.selection.LastClickY = y

	switch c.selection.ClickCount {
	case 1:
		// Single click - start selection
		c.StartSelection(x, y)
	case 2:
		// Double click - select word and copy immediately
		c.SelectWord(x, y)
		return c.CopySelectedText()
	case 3:
		// Triple click - select paragraph and copy immediately
		c.SelectParagraph(x, y)
		c.selection.ClickCount = 0
		return c.CopySelectedText()
	}

	return nil
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SelectWord selects the word at the given position
func (c *Chat) SelectWord(col, line int) {
	content := c.viewport.View()
	lines := strings.Split(content, "\n")

	if line < 0 || line >= len(lines) {
		return
	}

	runes := []rune(ansi.Strip(lines[line]))
	if col < 0 || col >= len(runes) {
		return
	}

	// Search backward for the last word boundary before the click. The
	// boundary uniseg reports at end-of-string is artificial, so the final
	// grapheme's flag is skipped.
	startCol := 0
	gr := uniseg.NewGraphemes(string(runes[:col]))
	pos := 0
	for gr.Next() {
		pos += len(gr.Runes())
		if pos < col && gr.IsWordBoundary() {
			startCol = pos
		}
	}

	// Search forward for the word end
	endCol := col
	gr = uniseg.NewGraphemes(string(runes[col:]))
	pos = col
	for gr.Next() {
		pos += len(gr.Runes())
		if gr.IsWordBoundary() {
			endCol = pos
			break
		}
	}
	if endCol <= col {
		endCol = len(runes)
	}

	c.selection.StartCol = startCol
	c.selection.StartLine = line
	c.selection.EndCol = endCol
	c.selection.EndLine = line
	c.selection.Active = false
}

// SelectParagraph selects the paragraph at the given position
func (c *Chat) SelectParagraph(col, line int) {
	content := c.viewport.View()
	lines := strings.Split(content, "\n")

	if line < 0 || line >= len(lines) {
		return
	}

	// Paragraph boundaries are blank lines
	startLine := line
	endLine := line

	for startLine > 0 {
		prevLine := ansi.Strip(lines[startLine-1])
		if strings.TrimSpace(prevLine) == "" {
			break
		}
		startLine--
	}

	for endLine < len(lines)-1 {
		nextLine := ansi.Strip(lines[endLine+1])
		if strings.TrimSpace(nextLine) == "" {
			break
		}
		endLine++
	}

	lastLineWidth := len([]rune(ansi.Strip(lines[endLine])))

	c.selection.StartCol = 0
	c.selection.StartLine = startLine
	c.selection.EndCol = lastLineWidth
	c.selection.EndLine = endLine
	c.selection.Active = false
}

// selectionArea returns the normalized selection area (start before end).
//
// Selection can happen in any direction - the user might drag from
// bottom-right to top-left. This normalizes the coordinates so that
// (startCol, startLine) always precedes (endCol, endLine) in reading order.
func (c *Chat) selectionArea() (startCol, startLine, endCol, endLine int) {
	startCol = c.selection.StartCol
	startLine = c.selection.StartLine
	endCol = c.selection.EndCol
	endLine = c.selection.EndLine

	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}

	return
}

// GetSelectedText returns the currently selected text.
//
// The viewport's rendered content contains ANSI escape codes, so each line is
// stripped before slicing. Selection coordinates address visible character
// positions; slicing happens in runes so multi-byte characters stay aligned.
func (c *Chat) GetSelectedText() string {
	if !c.HasTextSelection() {
		return ""
	}

	content := c.viewport.View()
	lines := strings.Split(content, "\n")

	startCol, startLine, endCol, endLine := c.selectionArea()

	var result strings.Builder

	// Drags onto the border can yield negative coordinates; skip those rows
	for y := startLine; y <= endLine && y < len(lines); y++ {
		if y < 0 {
			continue
		}
		runes := []rune(ansi.Strip(lines[y]))

		var lineStart, lineEnd int
		if y == startLine {
			lineStart = startCol
		} else {
			lineStart = 0
		}
		if y == endLine {
			lineEnd = endCol
		} else {
			lineEnd = len(runes)
		}

		if lineStart < 0 {
			lineStart = 0
		}
		if lineEnd > len(runes) {
			lineEnd = len(runes)
		}
		if lineStart > lineEnd {
			lineStart = lineEnd
		}

		if lineStart < len(runes) {
			result.WriteString(string(runes[lineStart:lineEnd]))
		}
		if y < endLine {
			result.WriteString("\n")
		}
	}

	return strings.TrimSpace(result.String())
}

// CopySelectedText copies the selected text to the clipboard and starts the
// flash animation
func (c *Chat) CopySelectedText() tea.Cmd {
	if !c.HasTextSelection() {
		return nil
	}

	selectedText := c.GetSelectedText()
	if selectedText == "" {
		return nil
	}

	c.selection.FlashFrame = 0

	return tea.Batch(
		// OSC 52 escape sequence (works in modern terminals)
		tea.SetClipboard(selectedText),
		// Native clipboard fallback - reports an error message if it fails
		func() tea.Msg {
			if err := clipboard.WriteText(selectedText); err != nil {
				logger.Warn("Failed to write to clipboard: %v", err)
				return ClipboardErrorMsg{Error: err}
			}
			return nil
		},
		SelectionFlashTick(),
	)
}

// handleSelectionFlashTick advances the copy flash. The selection clears when
// the flash ends.
func (c *Chat) handleSelectionFlashTick() tea.Cmd {
	if c.selection.FlashFrame < 0 {
		return nil
	}

	c.selection.FlashFrame++
	if c.selection.FlashFrame >= 2 {
		c.selection.FlashFrame = -1
		c.SelectionClear()
		return nil
	}
	return SelectionFlashTick()
}

// selectionView applies selection highlighting to the rendered transcript
// using an ultraviolet screen buffer
func (c *Chat) selectionView(view string) string {
	if !c.HasTextSelection() {
		return view
	}

	width := c.viewport.Width()
	height := c.viewport.Height()
	if width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	startCol, startLine, endCol, endLine := c.selectionArea()

	// Flash style while the copy flash runs, normal selection otherwise
	var selBg, selFg color.Color
	if c.selection.FlashFrame >= 0 {
		selBg = TextSelectionFlashStyle.GetBackground()
		selFg = TextSelectionFlashStyle.GetForeground()
	} else {
		selBg = TextSelectionStyle.GetBackground()
		selFg = TextSelectionStyle.GetForeground()
	}

	for y := startLine; y <= endLine && y < height; y++ {
		if y < 0 {
			continue
		}
		var xStart, xEnd int
		switch {
		case y == startLine && y == endLine:
			xStart = startCol
			xEnd = endCol
		case y == startLine:
			xStart = startCol
			xEnd = width
		case y == endLine:
			xStart = 0
			xEnd = endCol
		default:
			xStart = 0
			xEnd = width
		}

		for x := xStart; x < xEnd && x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell != nil {
				cell = cell.Clone()
				cell.Style.Bg = selBg
				cell.Style.Fg = selFg
				scr.SetCell(x, y, cell)
			}
		}
	}

	return scr.Render()
}
