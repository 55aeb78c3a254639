package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/jvalva/consulta/internal/api"
	"github.com/jvalva/consulta/internal/logger"
	"github.com/jvalva/consulta/internal/thread"
	"github.com/jvalva/consulta/internal/ui"
	"github.com/jvalva/consulta/internal/ui/modals"
)

// historyPayload converts the retained context window into the wire format.
func (m *Model) historyPayload() []api.HistoryEntry {
	window := m.thread.ContextWindow()
	history := make([]api.HistoryEntry, 0, len(window))
	for _, msg := range window {
		history = append(history, api.HistoryEntry{Role: string(msg.Role), Content: msg.Content})
	}
	return history
}

// beginExchange fires a chat request for text whose user entry is already in
// the thread. The pendingSend records how to roll the thread back if the user
// cancels before the reply arrives.
func (m *Model) beginExchange(text string, p *pendingSend, history []api.HistoryEntry) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	m.pending = p
	m.setState(StateSending)
	m.chat.SetWaiting(true)

	req := api.ChatRequest{Message: text, History: history, RowNumber: p.row}
	client := m.client
	userID := p.userID
	return tea.Batch(
		ui.StopwatchTick(),
		func() tea.Msg {
			resp, err := client.Chat(ctx, req)
			return ChatResultMsg{UserID: userID, Resp: resp, Err: err}
		},
	)
}

// sendText appends text as a new user entry and fires the exchange.
func (m *Model) sendText(text string) (tea.Model, tea.Cmd) {
	history := m.historyPayload()

	id := m.thread.NewID()
	m.thread.Append(thread.Message{ID: id, Role: thread.RoleUser, Content: text})
	m.syncThread()
	logger.Log("App: Sending message %s", id)

	return m, m.beginExchange(text, &pendingSend{userID: id, restore: text, appended: true}, history)
}

// resendEdited sends the reworked text of an edited message, replacing the
// original exchange. The superseded question and its reply leave the thread
// before the request goes out so the replayed context doesn't contain them.
func (m *Model) resendEdited() (tea.Model, tea.Cmd) {
	id, text := m.chat.FinishEdit()
	if text == "" {
		// An empty edit keeps the original message untouched
		return m, nil
	}

	row := 0
	if original, ok := m.thread.Find(id); ok {
		row = original.RowNumber
	}
	m.thread.RemoveForEdit(id)

	history := m.historyPayload()
	newID := m.thread.NewID()
	m.thread.Append(thread.Message{ID: newID, Role: thread.RoleUser, Content: text})
	m.syncThread()
	logger.Log("App: Resending edited message %s as %s (row=%d)", id, newID, row)

	return m, m.beginExchange(text, &pendingSend{userID: newID, restore: text, appended: true, row: row}, history)
}

// regenerateSelected redoes the newest exchange. Only the newest reply can be
// regenerated; older exchanges are settled history.
func (m *Model) regenerateSelected() (tea.Model, tea.Cmd) {
	sel, ok := m.chat.SelectedMessage()
	if !ok || sel.Role != thread.RoleAssistant {
		return m, nil
	}
	if m.state != StateIdle {
		return m, m.ShowFlashWarning("Espera a que termine la consulta actual")
	}
	last, ok := m.thread.Last()
	if !ok || last.ID != sel.ID {
		return m, m.ShowFlashWarning("Solo se puede regenerar la última respuesta")
	}

	m.chat.ExitSelection()
	m.thread.Remove(sel.ID)

	query, ok := m.thread.Last()
	if !ok || query.Role != thread.RoleUser {
		m.syncThread()
		return m, nil
	}
	m.syncThread()

	// The question rides in the message field, so it comes off the end of
	// the replayed history.
	history := m.historyPayload()
	if n := len(history); n > 0 {
		history = history[:n-1]
	}
	logger.Log("App: Regenerating reply for %s (row=%d)", query.ID, sel.RowNumber)

	// Cancelling a regeneration keeps the question in place
	return m, m.beginExchange(query.Content, &pendingSend{userID: query.ID, row: sel.RowNumber}, history)
}

// cancelSend aborts the in-flight request and rolls the thread back.
func (m *Model) cancelSend() (tea.Model, tea.Cmd) {
	if m.pending == nil {
		return m, nil
	}
	logger.Log("App: Canceling send for %s", m.pending.userID)
	if m.pending.cancel != nil {
		m.pending.cancel()
	}
	if m.pending.appended {
		m.thread.Remove(m.pending.userID)
		m.chat.SetInput(m.pending.restore)
	}
	m.pending = nil
	m.setState(StateIdle)
	m.chat.SetWaiting(false)
	m.syncThread()
	return m, m.ShowFlashInfo("Consulta detenida")
}

// startEditSelected loads the reviewed message into the composer for rework.
func (m *Model) startEditSelected() (tea.Model, tea.Cmd) {
	sel, ok := m.chat.SelectedMessage()
	if !ok || sel.Role != thread.RoleUser {
		return m, nil
	}
	if m.state != StateIdle {
		return m, m.ShowFlashWarning("Espera a que termine la consulta actual")
	}
	m.chat.StartEdit(sel)
	m.focusComposer()
	logger.Log("App: Editing message %s", sel.ID)
	return m, nil
}

// copySelectedMessage copies the reviewed message body to the clipboard.
func (m *Model) copySelectedMessage() (tea.Model, tea.Cmd) {
	sel, ok := m.chat.SelectedMessage()
	if !ok {
		return m, nil
	}
	return m, tea.Batch(
		copyToClipboardCmd(sel.Content),
		m.ShowFlashSuccess("Mensaje copiado al portapapeles"),
	)
}

// rateSelected applies a rating action to the reviewed reply. Only assistant
// messages carry ratings.
func (m *Model) rateSelected(action thread.Feedback) (tea.Model, tea.Cmd) {
	sel, ok := m.chat.SelectedMessage()
	if !ok || sel.Role != thread.RoleAssistant {
		return m, nil
	}
	return m.applyFeedback(sel, action)
}

// applyFeedback runs the rating transition for a reply: pressing the active
// rating clears it, pressing the other one switches, and a fresh dislike asks
// for an optional comment before anything is submitted.
func (m *Model) applyFeedback(msg thread.Message, action thread.Feedback) (tea.Model, tea.Cmd) {
	previous := msg.Feedback
	next := action
	if previous == action {
		next = thread.FeedbackNone
	}

	m.thread.SetFeedback(msg.ID, next)
	m.syncThread()
	logger.Log("App: Feedback %s -> %s for %s", previous, next, msg.ID)

	if next == thread.FeedbackDisliked {
		// The comment modal finishes the submission when it closes
		m.dislikePrevious = previous
		m.modal.Show(modals.NewFeedbackCommentState(msg.ID))
		return m, nil
	}
	return m, m.submitFeedbackCmd(msg.ID, next, "", previous)
}

// submitFeedbackCmd posts a rating change to the backend. The previous rating
// rides along so a failed submission can be reverted.
func (m *Model) submitFeedbackCmd(messageID string, fb thread.Feedback, comment string, previous thread.Feedback) tea.Cmd {
	msg, ok := m.thread.Find(messageID)
	if !ok {
		return nil
	}
	req := api.FeedbackRequest{
		MessageID:    messageID,
		FeedbackType: fb.String(),
		Comment:      comment,
		BotResponse:  msg.Content,
		UserQuery:    m.queryForReply(messageID),
		RowNumber:    msg.RowNumber,
	}
	client := m.client
	return func() tea.Msg {
		_, err := client.Feedback(context.Background(), req)
		return FeedbackResultMsg{MessageID: messageID, Previous: previous, Err: err}
	}
}

// queryForReply returns the user question the given reply answers.
func (m *Model) queryForReply(replyID string) string {
	msgs := m.thread.Messages()
	for i, msg := range msgs {
		if msg.ID != replyID {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if msgs[j].Role == thread.RoleUser {
				return msgs[j].Content
			}
		}
		break
	}
	return ""
}
