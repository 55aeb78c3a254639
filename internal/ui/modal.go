package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jvalva/consulta/internal/ui/modals"
)

// Modal hosts the currently visible dialog, if any. The concrete dialog state
// lives in the modals package; the host owns visibility, centering, and the
// error line shown under the dialog body.
type Modal struct {
	State modals.ModalState
	error string

	screenWidth  int
	screenHeight int
}

// NewModal creates a new modal host with no dialog visible.
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state modals.ModalState) {
	m.State = state
	m.error = ""
	m.propagateSize()
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// SetSize records the screen dimensions and forwards them to size-aware
// dialogs. Call on every terminal resize.
func (m *Modal) SetSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
	m.propagateSize()
}

func (m *Modal) propagateSize() {
	if m.State == nil {
		return
	}
	if sizer, ok := m.State.(modals.ModalWithSize); ok {
		// Leave room for the modal border, padding, and help line
		height := m.screenHeight - 6
		if height < 1 {
			height = 1
		}
		sizer.SetSize(m.preferredWidth(), height)
	}
}

func (m *Modal) preferredWidth() int {
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		return pw.PreferredWidth()
	}
	return ModalWidth
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered over the full screen area.
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	// Add error if present
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	width := m.preferredWidth()
	if width > screenWidth-BorderSize {
		width = screenWidth - BorderSize
	}
	modal := ModalStyle.Width(width).Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}
