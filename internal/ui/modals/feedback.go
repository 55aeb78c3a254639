package modals

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// FeedbackCommentState - State for the dislike comment modal
// =============================================================================

// FeedbackCommentState collects the optional free-text comment that accompanies
// a dislike. The dislike itself is already registered when this modal opens;
// closing it with Esc sends the feedback without a comment.
type FeedbackCommentState struct {
	MessageID    string // Assistant message the dislike belongs to
	CommentInput textarea.Model
}

func (*FeedbackCommentState) modalState() {}

func (s *FeedbackCommentState) Title() string { return "¿Qué podemos mejorar?" }

func (s *FeedbackCommentState) Help() string {
	return "Enter: enviar  Esc: omitir comentario"
}

func (s *FeedbackCommentState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	label := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Cuéntanos por qué la respuesta no fue útil (opcional):")

	inputView := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1).
		Render(s.CommentInput.View())

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, label, inputView, help)
}

func (s *FeedbackCommentState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.CommentInput, cmd = s.CommentInput.Update(msg)
	return s, cmd
}

// GetComment returns the trimmed comment text. Empty is fine, the comment
// is optional.
func (s *FeedbackCommentState) GetComment() string {
	return strings.TrimSpace(s.CommentInput.Value())
}

// NewFeedbackCommentState creates the comment modal for the given assistant
// message, with the textarea focused and ready for typing.
func NewFeedbackCommentState(messageID string) *FeedbackCommentState {
	input := textarea.New()
	input.Placeholder = "Ej.: la respuesta no menciona los requisitos..."
	input.CharLimit = FeedbackCommentCharLimit
	input.SetWidth(ModalWidth - 8) // Account for modal padding and the left border
	input.SetHeight(4)
	input.ShowLineNumbers = false

	// Apply transparent background styles
	ApplyTextareaStyles(&input)

	input.Focus()

	return &FeedbackCommentState{
		MessageID:    messageID,
		CommentInput: input,
	}
}
