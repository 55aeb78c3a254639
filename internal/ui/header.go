package ui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// BackendStatus summarizes the last known state of the backend, shown as a
// colored dot next to the title.
type BackendStatus int

const (
	StatusUnknown BackendStatus = iota
	StatusOnline
	StatusUnauthenticated
	StatusOffline
)

// HeaderControl identifies the window controls on the right edge of the
// header.
type HeaderControl int

const (
	ControlNone HeaderControl = iota
	ControlMinimize
	ControlClose
)

const (
	headerTitle    = " ● consulta"
	headerControls = "[-] [x] "
	// dot position within headerTitle, in runes
	headerDotIndex = 1
)

// Header represents the panel title bar. It doubles as the drag handle:
// clicks that miss the window controls start a drag gesture.
type Header struct {
	width  int
	status BackendStatus
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStatus sets the backend status shown by the dot
func (h *Header) SetStatus(status BackendStatus) {
	h.status = status
}

// Status returns the currently displayed backend status
func (h *Header) Status() BackendStatus {
	return h.status
}

// HitControl maps a header-relative column to the window control under it.
// Columns are relative to the header's left edge.
func (h *Header) HitControl(x int) HeaderControl {
	if !h.controlsVisible() {
		return ControlNone
	}
	start := h.width - runewidth.StringWidth(headerControls)
	switch {
	case x >= start && x < start+3:
		return ControlMinimize
	case x >= start+4 && x < start+7:
		return ControlClose
	default:
		return ControlNone
	}
}

// controlsVisible reports whether the header is wide enough for the controls
func (h *Header) controlsVisible() bool {
	return h.width >= runewidth.StringWidth(headerTitle)+runewidth.StringWidth(headerControls)
}

// View renders the header
func (h *Header) View() string {
	titleText := headerTitle
	controls := ""
	if h.controlsVisible() {
		controls = headerControls
	}

	// Calculate padding
	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(controls)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + controls

	controlsStart := -1
	if controls != "" {
		controlsStart = len([]rune(fullContent)) - len([]rune(controls))
	}

	// Render with gradient background
	return h.renderGradient(fullContent, len([]rune(titleText)), controlsStart)
}

// statusColor returns the dot color for the current backend status
func (h *Header) statusColor() color.Color {
	theme := CurrentTheme()
	switch h.status {
	case StatusOnline:
		return lipgloss.Color(theme.Success)
	case StatusUnauthenticated:
		return lipgloss.Color(theme.Warning)
	case StatusOffline:
		return lipgloss.Color(theme.Error)
	default:
		return lipgloss.Color(theme.TextMuted)
	}
}

// parseHexColor parses a hex color string (e.g., "#8C2332") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// titleRunes marks the bolded title prefix; controlsStart marks the window
// controls at the right edge (-1 when hidden).
func (h *Header) renderGradient(content string, titleRunes, controlsStart int) string {
	if len(content) == 0 {
		return ""
	}

	// Get colors from current theme
	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	// End color: fade to the main background
	endR, endG, endB := parseHexColor(theme.Bg)

	// Text color from theme
	textColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		// Calculate interpolation factor (0.0 to 1.0)
		t := float64(i) / float64(width)

		// Interpolate colors
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		// Create color string
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		// Style for this character
		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleRunes || (controlsStart >= 0 && i >= controlsStart))

		if i == headerDotIndex {
			style = style.Foreground(h.statusColor())
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
