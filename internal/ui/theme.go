package ui

import "charm.land/lipgloss/v2"

// Theme defines a complete color palette for the application.
// Each theme provides colors for all UI elements, ensuring visual consistency.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for the header, focus, highlights)
	Primary string
	// Secondary is the secondary accent color (used for assistant messages, hints)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	User      string // User message labels
	Assistant string // Assistant message labels
	Warning   string // Degraded status, cautionary notices
	Error     string // Error messages, unread badge
	Info      string // Information notices
	Success   string // Confirmations, healthy status

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Text selection colors
	TextSelectionBg string // Selection background (defaults to Primary if empty)
	TextSelectionFg string // Selection foreground (defaults to TextInverse if empty)
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// GetTextSelectionBg returns the selection background color, defaulting to Primary
func (t Theme) GetTextSelectionBg() string {
	if t.TextSelectionBg != "" {
		return t.TextSelectionBg
	}
	return t.Primary
}

// GetTextSelectionFg returns the selection foreground color, defaulting to TextInverse
func (t Theme) GetTextSelectionFg() string {
	if t.TextSelectionFg != "" {
		return t.TextSelectionFg
	}
	return t.TextInverse
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeInstitutional ThemeName = "institutional"
	ThemeDarkPurple    ThemeName = "dark-purple"
	ThemeNord          ThemeName = "nord"
	ThemeDracula       ThemeName = "dracula"
	ThemeLight         ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeInstitutional

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	// The institute's guinda-and-gold palette.
	ThemeInstitutional: {
		Name:            "Institucional",
		Primary:         "#8C2332",
		Secondary:       "#D9A441",
		Bg:              "#241B1E",
		BgSelected:      "#3D262D",
		Text:            "#F4ECE6",
		TextMuted:       "#A99A94",
		TextInverse:     "#241B1E",
		User:            "#E3A8B2",
		Assistant:       "#DEB15C",
		Warning:         "#E0913D",
		Error:           "#E25D5D",
		Info:            "#8CACC8",
		Success:         "#76B97F",
		Border:          "#503A3F",
		BorderFocus:     "#C04A5A",
		TextSelectionBg: "#C04A5A",
		TextSelectionFg: "#241B1E",
	},
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		User:        "#A78BFA",
		Assistant:   "#22D3EE",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#06B6D4",
		Success:     "#10B981",
		Border:      "#374151",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		User:        "#A3BE8C",
		Assistant:   "#88C0D0",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Success:     "#A3BE8C",
		Border:      "#4C566A",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		User:        "#FF79C6",
		Assistant:   "#8BE9FD",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Info:        "#8BE9FD",
		Success:     "#50FA7B",
		Border:      "#44475A",
	},
	ThemeLight: {
		Name:            "Light",
		Primary:         "#6366F1",
		Secondary:       "#0891B2",
		Bg:              "#FFFFFF",
		BgSelected:      "#E0E7FF",
		Text:            "#1F2937",
		TextMuted:       "#6B7280",
		TextInverse:     "#FFFFFF",
		User:            "#7C3AED",
		Assistant:       "#0891B2",
		Warning:         "#D97706",
		Error:           "#DC2626",
		Info:            "#0891B2",
		Success:         "#16A34A",
		Border:          "#D1D5DB",
		BorderFocus:     "#6366F1",
		TextSelectionBg: "#C7D2FE",
		TextSelectionFg: "#1F2937",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeInstitutional,
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to Institucional if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	// Update header styles
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	// Update footer styles
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Update flash styles
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

	// Update panel styles
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

	// Update backdrop style
	BackdropStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	// Update launcher styles
	LauncherStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Bold(true).
		Foreground(ColorText)

	LauncherBadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorError)

	// Update chat styles
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

	ChatSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text))

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	// Update feedback marker styles
	FeedbackActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	FeedbackMutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Update welcome suggestion styles
	SuggestionKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	SuggestionTextStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Update list styles
	ListItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	ListSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	// Update modal styles
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

	// Update status styles
	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	// Update text selection styles
	TextSelectionStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetTextSelectionBg())).
		Foreground(lipgloss.Color(t.GetTextSelectionFg()))

	TextSelectionFlashStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.Success)).
		Foreground(lipgloss.Color(t.TextInverse))
}
