package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jvalva/consulta/internal/keys"
	"github.com/jvalva/consulta/internal/logger"
	"github.com/jvalva/consulta/internal/thread"
	"github.com/jvalva/consulta/internal/ui"
	"github.com/jvalva/consulta/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes every message to the appropriate handler.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Not handled above: fall through to the chat area below

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m.handleMouse(msg)

	case StartupMsg:
		return m.handleStartup()

	case HealthCheckedMsg:
		return m.handleHealthChecked(msg)

	case ChatResultMsg:
		return m.handleChatResult(msg)

	case AuthURLFetchedMsg:
		return m.handleAuthURLFetched(msg)

	case FeedbackResultMsg:
		return m.handleFeedbackResult(msg)

	case DocumentsFetchedMsg:
		return m.handleDocumentsFetched(msg)

	case StatsFetchedMsg:
		return m.handleStatsFetched(msg)

	case CacheRefreshedMsg:
		return m.handleCacheRefreshed(msg)

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)
	}

	// Animation ticks run regardless of focus or modal state
	if cmd, handled := m.handleTickMessages(msg); handled {
		return m, cmd
	}

	// While a modal is open, remaining messages still feed its widgets so
	// filter inputs and lists keep working.
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Everything else goes to the chat area
	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleTickMessages processes animation ticks and clipboard errors. Returns
// handled=false for messages that belong to other components.
func (m *Model) handleTickMessages(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case ui.StopwatchTickMsg, ui.CompletionFlashTickMsg, ui.SelectionFlashTickMsg:
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		return cmd, true

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return nil, true
		}
		if m.footer.HasFlash() {
			return ui.FlashTick(), true
		}
		return nil, true

	case ui.ClipboardErrorMsg:
		return m.ShowFlashError("No se pudo copiar al portapapeles"), true
	}
	return nil, false
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should
// fall through to the chat area.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.Log("App: KeyPressMsg received: key=%q, focus=%s, state=%s, modalVisible=%v",
		key, m.focus, m.state, m.modal.IsVisible())

	// ctrl+c always quits, saving the panel geometry on the way out
	if key == keys.CtrlC {
		m.saveGeometry()
		return m, tea.Quit
	}

	// An open modal captures everything else
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// A dismissed panel only listens for its reopen key
	if m.closed {
		if key == "o" {
			m.reopenPanel()
		}
		return m, nil
	}

	// The launcher bubble restores on m, o or enter
	if m.panel.Minimized() {
		switch key {
		case "m", "o", keys.Enter:
			m.restore()
		}
		return m, nil
	}

	if key == keys.Escape {
		if result, cmd, handled := m.handleEscapeKey(); handled {
			return result, cmd
		}
	}

	// The server info overlay handles its own navigation; r refreshes it
	if m.chat.IsInStatsMode() {
		if key == "r" && !m.chat.IsStatsRefreshing() {
			m.chat.SetStatsRefreshing(true)
			return m, m.refreshCacheCmd()
		}
		return nil, nil
	}

	// Review mode owns the message action keys
	if m.chat.IsSelecting() {
		return m.handleReviewKeys(key)
	}

	if m.focus == FocusComposer {
		if result, cmd, handled := m.handleComposerKeys(key); handled {
			return result, cmd
		}
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	if key == keys.Enter {
		return m.handleEnterKey()
	}

	// Not handled - fall through to the chat area
	return nil, nil
}

// handleEscapeKey dismisses things in priority order: the in-flight request
// first, then whatever interaction layer is open, and finally the panel
// itself collapses to the launcher.
func (m *Model) handleEscapeKey() (tea.Model, tea.Cmd, bool) {
	if m.state == StateSending {
		result, cmd := m.cancelSend()
		return result, cmd, true
	}
	if m.chat.IsInStatsMode() {
		// The chat's own esc handling closes the overlay
		return nil, nil, false
	}
	if m.chat.IsSelecting() {
		m.chat.ExitSelection()
		return m, nil, true
	}
	if m.chat.IsEditing() {
		m.chat.CancelEdit()
		return m, nil, true
	}
	if m.chat.HasTextSelection() {
		m.chat.SelectionClear()
		return m, nil, true
	}
	m.minimize()
	return m, nil, true
}

// handleReviewKeys handles keys while message review mode is active.
func (m *Model) handleReviewKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Up, "k":
		m.chat.SelectPrev()
		return m, nil
	case keys.Down, "j":
		m.chat.SelectNext()
		return m, nil
	case keys.CtrlDown:
		m.chat.ExitSelection()
		return m, nil
	case "c":
		return m.copySelectedMessage()
	case "e":
		return m.startEditSelected()
	case "r":
		return m.regenerateSelected()
	case "g":
		return m.rateSelected(thread.FeedbackLiked)
	case "d":
		return m.rateSelected(thread.FeedbackDisliked)
	case keys.PgUp, keys.PgDown, keys.Home, keys.End:
		// Scrolling still works while reviewing
		return nil, nil
	}
	// Swallow everything else so stray keys don't land in the composer
	return m, nil
}

// handleComposerKeys handles bindings that act on the composer itself.
func (m *Model) handleComposerKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case keys.ShiftEnter, keys.AltEnter:
		m.chat.InsertNewline()
		return m, nil, true
	case "1", "2", "3", "4":
		// Starter suggestions apply only to a fresh, empty conversation
		if m.chat.HasMessages() || !m.chat.InputEmpty() || !m.CanSendMessage() {
			return m, nil, false
		}
		text, ok := ui.WelcomeSuggestion(int(key[0] - '0'))
		if !ok {
			return m, nil, false
		}
		logger.Log("App: Sending starter suggestion %s", key)
		result, cmd := m.sendText(text)
		return result, cmd, true
	}
	return m, nil, false
}

// handleEnterKey sends the composer content, or resubmits an edit in
// progress. Enter pressed with the transcript focused refocuses the composer.
func (m *Model) handleEnterKey() (tea.Model, tea.Cmd) {
	if m.focus != FocusComposer {
		m.focusComposer()
		return m, nil
	}
	if m.chat.IsEditing() {
		return m.resendEdited()
	}
	if !m.CanSendMessage() {
		// The composer is locked while a request runs; esc cancels it
		return m, nil
	}
	text := m.chat.GetInput()
	if text == "" {
		return m, nil
	}
	m.chat.ClearInput()
	return m.sendText(text)
}
