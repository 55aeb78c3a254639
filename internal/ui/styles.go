package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/jvalva/consulta/internal/ui/modals"
)

// Color palette - Institucional guinda + gold theme
var (
	ColorPrimary     = lipgloss.Color("#8C2332") // Guinda
	ColorSecondary   = lipgloss.Color("#D9A441") // Gold
	ColorMuted       = lipgloss.Color("#A99A94") // Warm gray
	ColorBorder      = lipgloss.Color("#503A3F") // Dark border
	ColorBorderFocus = lipgloss.Color("#C04A5A") // Bright guinda when focused
	ColorBg          = lipgloss.Color("#241B1E") // Dark background
	ColorText        = lipgloss.Color("#F4ECE6") // Warm white text
	ColorTextMuted   = lipgloss.Color("#A99A94") // Muted text
	ColorTextInverse = lipgloss.Color("#241B1E") // Dark text for light backgrounds
	ColorUser        = lipgloss.Color("#E3A8B2") // Rose for user messages
	ColorAssistant   = lipgloss.Color("#DEB15C") // Gold for assistant messages
	ColorWarning     = lipgloss.Color("#E0913D") // Amber for degraded status
	ColorInfo        = lipgloss.Color("#8CACC8") // Blue for info notices
	ColorError       = lipgloss.Color("#E25D5D") // Red for errors
	ColorSuccess     = lipgloss.Color("#76B97F") // Green for success
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Flash message styles (shown in the footer, replacing key bindings)
var (
	FlashErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	FlashWarningStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWarning)

	FlashInfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	FlashSuccessStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// Backdrop style for the shaded area behind the floating panel
var (
	BackdropStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Launcher styles for the minimized bubble
var (
	LauncherStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocus).
			Bold(true).
			Foreground(ColorText)

	// LauncherBadgeStyle renders the unread message counter
	LauncherBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorTextInverse).
				Background(ColorError)
)

// Chat styles
var (
	ChatUserStyle = lipgloss.NewStyle().
			Foreground(ColorUser).
			Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
				Foreground(ColorAssistant).
				Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	ChatTimestampStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	// ChatSelectedStyle uses theme's BgSelected color - initialized properly in regenerateStyles()
	ChatSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetBgSelected())).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].Text))

	ChatInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)
)

// Feedback marker styles for the like/dislike indicators under replies
var (
	FeedbackActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	FeedbackMutedStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)
)

// Welcome suggestion styles
var (
	SuggestionKeyStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	SuggestionTextStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)
)

// List styles used by the documents modal
var (
	ListItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// ListSelectedStyle uses theme's BgSelected color - initialized properly in regenerateStyles()
	ListSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetBgSelected())).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].Text)).
				Bold(true).
				Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1)
)

// Status styles
var (
	StatusLoadingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Text selection styles (updated by regenerateStyles)
var (
	TextSelectionStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetTextSelectionBg())).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].GetTextSelectionFg()))

	// TextSelectionFlashStyle is used briefly when text is copied to indicate success
	// (updated by regenerateStyles)
	TextSelectionFlashStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].Success)).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].TextInverse))
)

// RefreshModalStyles pushes the current style set into the modals package.
// Must be called once at startup and again after every theme change so modal
// forms pick up the new palette.
func RefreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, ListItemStyle, ListSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorUser, ColorWarning,
		ModalInputWidth, ModalInputCharLimit, ModalWidth,
	)
}
