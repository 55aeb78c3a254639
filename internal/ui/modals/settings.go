package modals

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SettingsState - State for the Settings modal
// =============================================================================

// SettingsState holds the huh form for the global settings: backend server
// URL, color theme, and desktop notifications.
type SettingsState struct {
	// Bound form values
	serverURL            string
	selectedTheme        string
	OriginalTheme        string // To detect if theme changed
	NotificationsEnabled bool

	// MultiSelect bindings
	generalOptions []string

	form *huh.Form

	// Size tracking
	availableWidth int
}

const optionNotifications = "notifications"

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return ModalWidthWide }

// SetSize updates the available width for rendering content.
func (s *SettingsState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *SettingsState) contentWidth() int {
	if s.availableWidth > 0 {
		return s.availableWidth - 10
	}
	return ModalWidthWide - 10
}

func (s *SettingsState) Title() string { return "Configuración" }

func (s *SettingsState) Help() string {
	return "Tab: siguiente campo  Enter: guardar  Esc: cancelar"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.syncFromMultiSelect()
	return s, cmd
}

// syncFromMultiSelect updates boolean fields from the MultiSelect bindings.
func (s *SettingsState) syncFromMultiSelect() {
	s.NotificationsEnabled = slices.Contains(s.generalOptions, optionNotifications)
}

// GetServerURL returns the backend server URL value.
func (s *SettingsState) GetServerURL() string {
	return strings.TrimSpace(s.serverURL)
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (s *SettingsState) GetNotificationsEnabled() bool {
	return s.NotificationsEnabled
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// NewSettingsState creates a new SettingsState with the current settings values.
func NewSettingsState(themes []string, themeDisplayNames []string, currentTheme string,
	serverURL string, notificationsEnabled bool) *SettingsState {

	s := &SettingsState{
		serverURL:            serverURL,
		selectedTheme:        currentTheme,
		OriginalTheme:        currentTheme,
		NotificationsEnabled: notificationsEnabled,
		availableWidth:       ModalWidthWide,
	}

	// Build theme options
	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	// Build general options MultiSelect
	generalOpts := []huh.Option[string]{
		huh.NewOption("Notificaciones de escritorio", optionNotifications).
			Selected(notificationsEnabled),
	}
	// Initialize the bound slice to match
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}

	group := huh.NewGroup(
		huh.NewInput().
			Title("Servidor").
			Description("URL del backend de trámites").
			Placeholder("http://localhost:5000").
			CharLimit(ModalInputCharLimit).
			Value(&s.serverURL),
		huh.NewSelect[string]().
			Title("Tema").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewMultiSelect[string]().
			Title("Opciones").
			Options(generalOpts...).
			Height(len(generalOpts)).
			Value(&s.generalOptions),
	)

	s.form = huh.NewForm(group).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(s.contentWidth())

	initHuhForm(s.form)
	return s
}
