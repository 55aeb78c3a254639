package app

import (
	"net/url"

	tea "charm.land/bubbletea/v2"

	"github.com/jvalva/consulta/internal/api"
	"github.com/jvalva/consulta/internal/keys"
	"github.com/jvalva/consulta/internal/logger"
	"github.com/jvalva/consulta/internal/thread"
	"github.com/jvalva/consulta/internal/ui"
	"github.com/jvalva/consulta/internal/ui/modals"
)

// handleModalKey routes modal key events to the handler for the open modal.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *modals.FeedbackCommentState:
		return m.handleFeedbackCommentModal(key, msg, s)
	case *modals.DocumentsState:
		return m.handleDocumentsModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	// Default: forward to the modal's own widgets
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// showSettingsModal opens the settings form pre-filled from the config.
func (m *Model) showSettingsModal() {
	names := ui.ThemeNames()
	themes := make([]string, len(names))
	displays := make([]string, len(names))
	for i, n := range names {
		themes[i] = string(n)
		displays[i] = ui.GetTheme(n).Name
	}
	m.modal.Show(modals.NewSettingsState(
		themes, displays, string(ui.CurrentThemeName()),
		m.config.GetServerURL(), m.config.GetNotificationsEnabled(),
	))
}

// handleSettingsModal applies or abandons the settings form.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		serverURL := state.GetServerURL()
		if errText := validateServerURL(serverURL); errText != "" {
			m.modal.SetError(errText)
			return m, nil
		}

		if state.ThemeChanged() {
			theme := state.GetSelectedTheme()
			ui.SetThemeByName(theme)
			m.config.SetTheme(theme)
			logger.Log("App: Theme changed to %s", theme)
		}
		m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())

		// A new backend origin needs a fresh client and a fresh probe
		var probe tea.Cmd
		if serverURL != m.config.GetServerURL() {
			m.config.SetServerURL(serverURL)
			m.client = api.New(serverURL).WithSession(m.config.GetClientID())
			m.header.SetStatus(ui.StatusUnknown)
			probe = m.checkHealthCmd()
			logger.Log("App: Server URL changed to %s", serverURL)
		}

		if err := m.config.Save(); err != nil {
			logger.Error("App: Failed to save config: %v", err)
			m.modal.SetError("No se pudo guardar la configuración")
			return m, nil
		}
		m.modal.Hide()
		return m, tea.Batch(m.ShowFlashSuccess("Configuración guardada"), probe)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// validateServerURL checks that the backend origin is a usable http(s) URL.
// Returns a user-facing message, or "" when the URL is fine.
func validateServerURL(raw string) string {
	if raw == "" {
		return "La dirección del servidor no puede estar vacía"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "La dirección del servidor no es válida"
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "La dirección debe empezar con http:// o https://"
	}
	return ""
}

// handleFeedbackCommentModal finishes a dislike. The rating itself was
// applied when the modal opened; Enter submits it with the comment, Esc
// submits it without one.
func (m *Model) handleFeedbackCommentModal(key string, msg tea.KeyPressMsg, state *modals.FeedbackCommentState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, m.submitFeedbackCmd(state.MessageID, thread.FeedbackDisliked, "", m.dislikePrevious)
	case keys.Enter:
		comment := state.GetComment()
		m.modal.Hide()
		return m, m.submitFeedbackCmd(state.MessageID, thread.FeedbackDisliked, comment, m.dislikePrevious)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleDocumentsModal handles the knowledge base listing. Enter copies the
// selected document name for pasting into a consultation.
func (m *Model) handleDocumentsModal(key string, msg tea.KeyPressMsg, state *modals.DocumentsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape, "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		doc := state.GetSelectedDocument()
		if doc == nil {
			return m, nil
		}
		m.modal.Hide()
		return m, tea.Batch(
			copyToClipboardCmd(doc.Name),
			m.ShowFlashSuccess("Nombre del documento copiado"),
		)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles the searchable shortcut listing. Enter triggers the
// selected shortcut after the modal closes.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While the user types in the filter, every key belongs to the list
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := state.GetSelectedShortcut()
		if shortcut == nil {
			return m, nil
		}
		m.modal.Hide()
		triggered := shortcut.Key
		return m, func() tea.Msg {
			return modals.HelpShortcutTriggeredMsg{Key: triggered}
		}
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpShortcutTrigger runs a shortcut chosen from the help modal.
func (m *Model) handleHelpShortcutTrigger(displayKey string) (tea.Model, tea.Cmd) {
	key := normalizeHelpDisplayKey(displayKey)
	if key == "" {
		return m, nil
	}
	logger.Log("App: Help modal triggered shortcut %q", key)
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}
	return m, nil
}
