package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jvalva/consulta/internal/logger"
	"github.com/jvalva/consulta/internal/ui"
)

// handleMouse routes pointer events: panel gestures first, then the
// transcript. Coordinates arrive in terminal cells.
func (m *Model) handleMouse(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Modals have no pointer surface; swallow clicks while one is open
	if m.modal.IsVisible() {
		return m, nil
	}
	if m.closed {
		return m, nil
	}

	switch mouse := msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			return m, nil
		}
		return m.handleLeftPress(mouse.X, mouse.Y)

	case tea.MouseMotionMsg:
		if m.panel.InGesture() {
			m.panel.UpdateGesture(mouse.X, mouse.Y)
			m.updateSizes()
			return m, nil
		}
		return m.forwardMouseToChat(msg, mouse.X, mouse.Y)

	case tea.MouseReleaseMsg:
		if m.panel.InGesture() {
			if m.panel.EndGesture() {
				// A click on the launcher bubble restores the panel
				m.restore()
			}
			m.saveGeometry()
			return m, nil
		}
		return m.forwardMouseToChat(msg, mouse.X, mouse.Y)

	case tea.MouseWheelMsg:
		return m.handleWheel(msg, mouse.X, mouse.Y)
	}
	return m, nil
}

// handleLeftPress starts panel gestures, hits the window controls, or begins
// a text selection in the transcript.
func (m *Model) handleLeftPress(x, y int) (tea.Model, tea.Cmd) {
	if !m.panel.Contains(x, y) {
		return m, nil
	}

	// The whole launcher surface drags; release decides click vs move
	if m.panel.Minimized() {
		m.panel.StartGesture(x, y)
		return m, nil
	}

	rect := m.panel.Rect()

	// Window controls sit on the header row inside the border
	if y == rect.Top+1 {
		switch m.header.HitControl(x - rect.Left - 1) {
		case ui.ControlMinimize:
			m.minimize()
			return m, nil
		case ui.ControlClose:
			m.closePanel()
			return m, nil
		}
	}

	// Border ring resizes, header row drags
	if m.panel.StartGesture(x, y) {
		logger.Log("App: Panel gesture started at (%d,%d)", x, y)
		return m, nil
	}

	return m.forwardMouseToChat(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}, x, y)
}

// handleWheel scrolls whatever sits under the pointer. Wheel events outside
// the panel are ignored.
func (m *Model) handleWheel(msg tea.Msg, x, y int) (tea.Model, tea.Cmd) {
	if m.panel.Minimized() || !m.panel.Contains(x, y) {
		return m, nil
	}
	// The viewport only needs the direction; coordinates stay untranslated
	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	return m, cmd
}

// forwardMouseToChat translates a pointer event into transcript coordinates
// and hands it to the chat area. A click on the composer rows focuses the
// input instead.
func (m *Model) forwardMouseToChat(msg tea.Msg, x, y int) (tea.Model, tea.Cmd) {
	if m.panel.Minimized() {
		return m, nil
	}
	rect := m.panel.Rect()
	tx := x - rect.Left - 1
	ty := y - rect.Top - 1 - ui.HeaderHeight

	switch mouse := msg.(type) {
	case tea.MouseClickMsg:
		if ty >= ui.GetViewContext().TranscriptHeight(rect.Height) {
			m.focusComposer()
			return m, nil
		}
		adjusted := tea.MouseClickMsg{X: tx, Y: ty, Button: mouse.Button, Mod: mouse.Mod}
		chat, cmd := m.chat.Update(adjusted)
		m.chat = chat
		return m, cmd

	case tea.MouseMotionMsg:
		adjusted := tea.MouseMotionMsg{X: tx, Y: ty, Button: mouse.Button, Mod: mouse.Mod}
		chat, cmd := m.chat.Update(adjusted)
		m.chat = chat
		return m, cmd

	case tea.MouseReleaseMsg:
		adjusted := tea.MouseReleaseMsg{X: tx, Y: ty, Button: mouse.Button, Mod: mouse.Mod}
		chat, cmd := m.chat.Update(adjusted)
		m.chat = chat
		return m, cmd
	}
	return m, nil
}
