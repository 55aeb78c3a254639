package ui

import (
	"sync"

	"github.com/jvalva/consulta/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a debug message to the log file using structured logging.
// For new code, prefer using logger.WithComponent("ui").Debug() directly.
func (v *ViewContext) Log(msg string, args ...interface{}) {
	logger.WithComponent("ui").Debug(msg, args...)
}

// UpdateTerminalSize records the terminal dimensions when the terminal is
// resized. This method is thread-safe and should be called from the main
// event loop.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
	)
}

// Size returns the current terminal dimensions.
func (v *ViewContext) Size() (width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.TerminalWidth, v.TerminalHeight
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}

// TranscriptHeight returns the height of the conversation viewport for a
// panel of the given outer height: the interior minus the header row, the
// input area, and the footer row.
func (v *ViewContext) TranscriptHeight(panelHeight int) int {
	h := v.InnerHeight(panelHeight) - HeaderHeight - InputTotalHeight - FooterHeight
	if h < 1 {
		h = 1
	}
	return h
}

// TranscriptWidth returns the wrap width for conversation content inside a
// panel of the given outer width.
func (v *ViewContext) TranscriptWidth(panelWidth int) int {
	w := v.InnerWidth(panelWidth)
	if w < 1 {
		w = DefaultWrapWidth
	}
	return w
}
