package modals

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jvalva/consulta/internal/keys"
)

// =============================================================================
// DocumentsState - State for the knowledge-base documents modal
// =============================================================================

// DocumentsState lists the source documents the backend answers from. The
// modal opens in a loading state; the app layer fetches the document list and
// delivers it via SetDocuments (or SetLoadError on failure).
type DocumentsState struct {
	Items         []DocumentItem
	SelectedIndex int
	ScrollOffset  int
	Loading       bool
	LoadError     string
}

func (*DocumentsState) modalState() {}

func (s *DocumentsState) Title() string { return "Base de conocimiento" }

func (s *DocumentsState) Help() string {
	if s.Loading || s.LoadError != "" || len(s.Items) == 0 {
		return "Esc: cerrar"
	}
	return "↑/↓: navegar  Enter: copiar nombre  Esc: cerrar"
}

func (s *DocumentsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())

	if s.Loading {
		loading := lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1).
			Render("Consultando documentos...")
		return lipgloss.JoinVertical(lipgloss.Left, title, loading, help)
	}

	if s.LoadError != "" {
		errMsg := lipgloss.NewStyle().
			Foreground(ColorWarning).
			MarginTop(1).
			Render(s.LoadError)
		return lipgloss.JoinVertical(lipgloss.Left, title, errMsg, help)
	}

	if len(s.Items) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1).
			Render("No hay documentos disponibles.")
		return lipgloss.JoinVertical(lipgloss.Left, title, empty, help)
	}

	countLabel := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Render(fmt.Sprintf("El asistente responde con información de %d documentos:", len(s.Items)))

	return lipgloss.JoinVertical(lipgloss.Left, title, countLabel, s.renderList(), help)
}

func (s *DocumentsState) renderList() string {
	var lines []string

	startIdx := s.ScrollOffset
	endIdx := startIdx + DocumentsModalMaxVisible
	if endIdx > len(s.Items) {
		endIdx = len(s.Items)
	}

	if startIdx > 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Render(fmt.Sprintf("  ... %d más arriba", startIdx)))
	}

	visible := make([]string, 0, endIdx-startIdx)
	for i := startIdx; i < endIdx; i++ {
		visible = append(visible, TruncateString(s.Items[i].Name, ModalWidth-10))
	}
	lines = append(lines, strings.TrimRight(RenderSelectableList(visible, s.SelectedIndex-startIdx), "\n"))

	if endIdx < len(s.Items) {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Render(fmt.Sprintf("  ... %d más abajo", len(s.Items)-endIdx)))
	}

	return strings.Join(lines, "\n")
}

func (s *DocumentsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Up, "k":
			s.moveSelection(-1)
		case keys.Down, "j":
			s.moveSelection(1)
		}
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			s.moveSelection(-1)
		case tea.MouseWheelDown:
			s.moveSelection(1)
		}
	}
	return s, nil
}

func (s *DocumentsState) moveSelection(delta int) {
	if len(s.Items) == 0 {
		return
	}
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex > len(s.Items)-1 {
		s.SelectedIndex = len(s.Items) - 1
	}
	// Keep the selection inside the visible window
	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ScrollOffset+DocumentsModalMaxVisible {
		s.ScrollOffset = s.SelectedIndex - DocumentsModalMaxVisible + 1
	}
}

// GetSelectedDocument returns the currently selected document, or nil when
// the list is empty.
func (s *DocumentsState) GetSelectedDocument() *DocumentItem {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Items) {
		return nil
	}
	return &s.Items[s.SelectedIndex]
}

// SetDocuments replaces the list contents and leaves the loading state.
func (s *DocumentsState) SetDocuments(items []DocumentItem) {
	s.Items = items
	s.Loading = false
	s.LoadError = ""
	s.SelectedIndex = 0
	s.ScrollOffset = 0
}

// SetLoadError records a fetch failure so the modal shows it instead of the list.
func (s *DocumentsState) SetLoadError(errMsg string) {
	s.Loading = false
	s.LoadError = errMsg
}

// NewDocumentsState creates a DocumentsState in the loading state.
func NewDocumentsState() *DocumentsState {
	return &DocumentsState{Loading: true}
}
