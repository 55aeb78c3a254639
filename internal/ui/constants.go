// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the panel title bar in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TextareaHeight is the number of lines for the composer textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MaxInputChars caps composer input length, mirroring the backend's
	// message cap
	MaxInputChars = 2000

	// MinTerminalWidth and MinTerminalHeight floor the reported terminal size
	// so layout math never goes negative on degenerate resizes
	MinTerminalWidth  = 20
	MinTerminalHeight = 10
)

// Panel geometry bounds. Size clamps to [MinPanelWidth,MaxPanelWidth] x
// [MinPanelHeight,MaxPanelHeight]; position clamps to the terminal viewport.
const (
	MinPanelWidth  = 40
	MaxPanelWidth  = 120
	MinPanelHeight = 14
	MaxPanelHeight = 45

	// DefaultPanelWidth and DefaultPanelHeight size the panel on first run,
	// before any geometry is persisted.
	DefaultPanelWidth  = 64
	DefaultPanelHeight = 22
)

// Launcher and unread badge
const (
	// LauncherWidth and LauncherHeight bound the minimized bubble
	LauncherWidth  = 16
	LauncherHeight = 3

	// MaxUnreadDisplay caps the badge counter; above this it renders "9+"
	MaxUnreadDisplay = 9
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)
