package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jvalva/consulta/internal/changelog"
	apperrors "github.com/jvalva/consulta/internal/errors"
	"github.com/jvalva/consulta/internal/logger"
	"github.com/jvalva/consulta/internal/notification"
	"github.com/jvalva/consulta/internal/thread"
	"github.com/jvalva/consulta/internal/ui"
	"github.com/jvalva/consulta/internal/ui/modals"
)

// handleStartup posts pending release notes and fires the backend probe that
// establishes the header status.
func (m *Model) handleStartup() (tea.Model, tea.Cmd) {
	logger.Log("App: Startup probe for %s", m.client.BaseURL())
	m.showUpdateNotice()
	return m, m.checkHealthCmd()
}

// showUpdateNotice announces release notes once after the binary changes
// version. A fresh install records the version silently; dev builds have no
// release notes to show.
func (m *Model) showUpdateNotice() {
	if m.version == "" || m.version == "dev" {
		return
	}
	lastSeen := m.config.GetLastSeenVersion()
	if lastSeen == m.version {
		return
	}
	if lastSeen != "" {
		entries := changelog.EntriesSince(lastSeen, changelog.Parse(changelog.Content))
		if len(entries) > 0 {
			logger.Log("App: Showing release notes (%s -> %s, %d entries)", lastSeen, m.version, len(entries))
			m.appendAssistantNotice(updateNotice(entries))
		}
	}
	m.config.SetLastSeenVersion(m.version)
	if err := m.config.Save(); err != nil {
		logger.Warn("App: Could not persist last seen version: %v", err)
	}
}

// updateNotice renders release entries as a single thread notice.
func updateNotice(entries []changelog.Entry) string {
	var b strings.Builder
	b.WriteString("El panel se actualizó. Novedades:")
	for _, entry := range entries {
		b.WriteString("\n\nv" + entry.Version)
		if entry.Date != "" {
			b.WriteString(" (" + entry.Date + ")")
		}
		for _, change := range entry.Changes {
			b.WriteString("\n• " + change)
		}
	}
	return b.String()
}

// handleHealthChecked updates the status dot from the probe result.
func (m *Model) handleHealthChecked(msg HealthCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Warn("App: Health probe failed: %v", msg.Err)
		m.authenticated = false
		m.header.SetStatus(ui.StatusOffline)
		return m, nil
	}
	m.authenticated = msg.Resp.Authenticated
	if msg.Resp.Authenticated {
		m.header.SetStatus(ui.StatusOnline)
	} else {
		m.header.SetStatus(ui.StatusUnauthenticated)
	}
	logger.Log("App: Backend healthy (authenticated=%v)", msg.Resp.Authenticated)
	return m, nil
}

// handleChatResult applies a finished chat request to the thread.
func (m *Model) handleChatResult(msg ChatResultMsg) (tea.Model, tea.Cmd) {
	if m.pending == nil || m.pending.userID != msg.UserID {
		// Cancelled or superseded; the rollback already happened
		logger.Log("App: Dropping stale chat result for %s", msg.UserID)
		return m, nil
	}
	m.pending = nil
	m.setState(StateIdle)
	m.chat.SetWaiting(false)

	if msg.Err != nil {
		return m.handleChatError(msg.Err)
	}

	resp := msg.Resp
	// Backfill the sheet row onto the question so edits and ratings target
	// the same exchange the backend recorded.
	m.thread.Update(msg.UserID, "", resp.RowNumber)
	reply := thread.Message{
		ID:        m.thread.NewID(),
		Role:      thread.RoleAssistant,
		Content:   resp.Response,
		RowNumber: resp.RowNumber,
	}
	m.thread.Append(reply)
	m.thread.TrimContext()
	m.syncThread()
	logger.Log("App: Reply %s stored (row=%d, type=%s)", reply.ID, resp.RowNumber, resp.QueryType)

	m.authenticated = true
	m.header.SetStatus(ui.StatusOnline)
	m.noteUnread()

	if !m.windowFocused && m.config.GetNotificationsEnabled() {
		go notification.ReplyReceived(resp.Response)
	}
	return m, m.chat.StartCompletionFlash()
}

// handleChatError surfaces a failed exchange in the thread. The question
// stays in place so the user can review, edit, and resend it.
func (m *Model) handleChatError(err error) (tea.Model, tea.Cmd) {
	logger.Error("App: Chat request failed: %v", err)

	switch apperrors.GetKind(err) {
	case apperrors.KindCanceled:
		return m, nil

	case apperrors.KindAuth:
		m.authenticated = false
		m.header.SetStatus(ui.StatusUnauthenticated)
		return m, tea.Batch(
			m.ShowFlashWarning("El servidor necesita autorización de Google"),
			m.fetchAuthURLCmd(),
		)

	case apperrors.KindAPI:
		m.appendAssistantNotice("Lo siento, ocurrió un error al procesar tu consulta. Inténtalo de nuevo en unos minutos.")
		return m, m.ShowFlashError("El servidor rechazó la consulta")

	default:
		m.header.SetStatus(ui.StatusOffline)
		m.appendAssistantNotice("No se pudo conectar con el servidor. Verifica tu conexión e inténtalo de nuevo.")
		return m, m.ShowFlashError("Sin conexión con el servidor")
	}
}

// handleAuthURLFetched puts the authorization hand-off notice in the thread.
// The transcript renders the URL as an underlined link.
func (m *Model) handleAuthURLFetched(msg AuthURLFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: Failed to fetch auth URL: %v", msg.Err)
		m.appendAssistantNotice("El servidor necesita autorización de Google, pero no se pudo obtener el enlace. Avisa al área de sistemas del instituto.")
		return m, nil
	}
	m.appendAssistantNotice("El servidor necesita autorización de Google para continuar. Abre este enlace, concede el acceso y vuelve a enviar tu consulta:\n\n" + msg.URL)
	return m, nil
}

// handleFeedbackResult reverts the optimistic rating if the backend refused it.
func (m *Model) handleFeedbackResult(msg FeedbackResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err == nil {
		logger.Log("App: Feedback recorded for %s", msg.MessageID)
		return m, nil
	}
	logger.Error("App: Feedback submission failed: %v", msg.Err)
	m.thread.SetFeedback(msg.MessageID, msg.Previous)
	m.syncThread()
	return m, m.ShowFlashError("No se pudo registrar tu valoración")
}

// handleDocumentsFetched fills the documents modal, if it is still open.
func (m *Model) handleDocumentsFetched(msg DocumentsFetchedMsg) (tea.Model, tea.Cmd) {
	state, ok := m.modal.State.(*modals.DocumentsState)
	if !ok {
		return m, nil // modal dismissed while the fetch ran
	}
	if msg.Err != nil {
		logger.Error("App: Documents fetch failed: %v", msg.Err)
		state.SetLoadError("No se pudo obtener la lista de documentos")
		return m, nil
	}
	items := make([]modals.DocumentItem, 0, len(msg.Documents))
	for _, doc := range msg.Documents {
		items = append(items, modals.DocumentItem{Name: doc.Name, ID: doc.ID})
	}
	state.SetDocuments(items)
	return m, nil
}

// handleStatsFetched fills the server info overlay, if it is still open.
func (m *Model) handleStatsFetched(msg StatsFetchedMsg) (tea.Model, tea.Cmd) {
	if !m.chat.IsInStatsMode() {
		return m, nil // overlay dismissed while the fetch ran
	}
	if msg.Err != nil {
		logger.Error("App: Stats fetch failed: %v", msg.Err)
		m.chat.ExitStatsMode()
		return m, m.ShowFlashError("No se pudieron obtener los datos del servidor")
	}
	m.chat.SetStatsSections(msg.Sections)
	return m, nil
}

// handleCacheRefreshed reloads the overlay after a backend cache refresh.
func (m *Model) handleCacheRefreshed(msg CacheRefreshedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: Cache refresh failed: %v", msg.Err)
		m.chat.SetStatsRefreshing(false)
		return m, m.ShowFlashError("No se pudo actualizar la caché del servidor")
	}
	logger.Log("App: Backend cache refreshed: %s", msg.Message)
	return m, tea.Batch(
		m.ShowFlashSuccess("Caché del servidor actualizada"),
		m.fetchStatsCmd(),
	)
}

// appendAssistantNotice adds an assistant-voiced notice to the thread.
func (m *Model) appendAssistantNotice(text string) {
	m.thread.Append(thread.Message{ID: m.thread.NewID(), Role: thread.RoleAssistant, Content: text})
	m.thread.TrimContext()
	m.syncThread()
	m.noteUnread()
}
