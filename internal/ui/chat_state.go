package ui

import (
	"time"

	"charm.land/bubbles/v2/viewport"
)

// PendingEdit tracks an in-place rework of a previously sent message.
// Non-nil while the composer holds the message being edited.
type PendingEdit struct {
	MessageID string // ID of the user message being edited
	Original  string // original text, shown again if the edit is cancelled
	Draft     string // composer content stashed when the edit began
}

// TextSelection tracks mouse-based text selection state in the transcript.
type TextSelection struct {
	StartCol, StartLine int  // Start position (column, line in viewport)
	EndCol, EndLine     int  // End position (column, line in viewport)
	Active              bool // True during drag operation

	// Click tracking for double/triple click detection
	LastClickTime time.Time
	LastClickX    int
	LastClickY    int
	ClickCount    int

	// Selection flash animation (brief highlight after copy, then clear)
	FlashFrame int // -1 = inactive, 0 = flash visible, 1+ = done
}

// NewTextSelection creates a new TextSelection in inactive state.
func NewTextSelection() *TextSelection {
	return &TextSelection{
		FlashFrame: -1,
	}
}

// HasSelection returns true if there's a non-empty text selection.
func (s *TextSelection) HasSelection() bool {
	if s.StartLine != s.EndLine {
		return true
	}
	return s.StartCol != s.EndCol
}

// Clear resets the selection to empty state.
func (s *TextSelection) Clear() {
	s.StartCol = -1
	s.StartLine = -1
	s.EndCol = -1
	s.EndLine = -1
	s.Active = false
}

// StatsSection is one page of the backend info overlay.
type StatsSection struct {
	Title   string // Display name (e.g., "Estadísticas")
	Content string // Pretty-printed JSON payload
}

// StatsViewState tracks the backend info overlay state.
// Non-nil when the overlay is displayed.
type StatsViewState struct {
	Viewport     viewport.Model // Viewport for payload scrolling
	Sections     []StatsSection // Available sections
	SectionIndex int            // Currently selected section index
	Refreshing   bool           // True while a cache refresh is in flight
}

// SpinnerState tracks the typing-indicator spinner animation.
type SpinnerState struct {
	Idx        int    // Current spinner frame index
	Verb       string // Random verb to display while waiting (e.g., "Escribiendo")
	StartTime  time.Time
	FlashFrame int // Completion flash animation: -1 = inactive, 0-2 = animation frames
}

// NewSpinnerState creates a new SpinnerState.
func NewSpinnerState() *SpinnerState {
	return &SpinnerState{
		FlashFrame: -1,
	}
}
