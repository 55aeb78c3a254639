package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/jvalva/consulta/internal/thread"
)

// counterShowThreshold is the remaining-character mark at which the composer
// starts showing its length counter.
const counterShowThreshold = 200

// Chat is the conversation area of the panel: the scrollable transcript, the
// typing indicator, and the composer box below them.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int // inner width available to the chat area
	height   int // inner height available to the chat area
	focused  bool
	messages []thread.Message

	waiting      bool // a chat request is in flight
	spinner      *SpinnerState
	finalElapsed time.Duration // shown by the completion flash

	selection *TextSelection

	// Review mode: keyboard navigation over past messages
	selecting   bool
	selectedIdx int
	msgOffsets  []int // transcript line offset of each message block

	editing      *PendingEdit
	counterShown bool

	statsView *StatsViewState
}

// NewChat creates the chat area with an empty transcript.
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Escribe tu consulta..."
	ti.CharLimit = MaxInputChars
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport:  vp,
		input:     ti,
		spinner:   NewSpinnerState(),
		selection: NewTextSelection(),
	}
	c.updateContent()
	return c
}

// SetSize sets the chat area dimensions. Width and height are the inner panel
// cells left over after the panel border, header and footer.
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.layout()
	c.updateContent()

	ctx := GetViewContext()
	ctx.Log("Chat.SetSize: area=%dx%d, viewport=%dx%d", width, height, c.viewport.Width(), c.viewport.Height())
}

// layout distributes the available height between transcript and composer.
func (c *Chat) layout() {
	vpHeight := c.height - InputTotalHeight
	if c.counterShown {
		vpHeight--
	}
	if vpHeight < 1 {
		vpHeight = 1
	}
	c.viewport.SetWidth(c.width)
	c.viewport.SetHeight(vpHeight)
	c.input.SetWidth(c.width - BorderSize - InputPaddingWidth)
}

// SetFocused sets the focus state of the composer.
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state.
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetMessages replaces the transcript content. Called after every thread
// mutation so the view tracks the store.
func (c *Chat) SetMessages(msgs []thread.Message) {
	c.messages = msgs
	if c.selectedIdx >= len(msgs) {
		c.selectedIdx = len(msgs) - 1
	}
	if len(msgs) == 0 {
		c.selecting = false
	}
	c.updateContent()
}

// HasMessages returns whether the transcript holds any messages.
func (c *Chat) HasMessages() bool {
	return len(c.messages) > 0
}

// GetInput returns the trimmed composer text.
func (c *Chat) GetInput() string {
	return strings.TrimSpace(c.input.Value())
}

// InputEmpty returns whether the composer holds no text. Suggestion shortcuts
// only fire on an empty composer.
func (c *Chat) InputEmpty() bool {
	return strings.TrimSpace(c.input.Value()) == ""
}

// ClearInput clears the composer.
func (c *Chat) ClearInput() {
	c.input.Reset()
	c.syncCounter()
}

// SetInput sets the composer text.
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
	c.syncCounter()
}

// InsertNewline inserts a line break at the cursor. Bound to shift+enter or
// opt+enter depending on what the terminal can report.
func (c *Chat) InsertNewline() {
	c.input.InsertString("\n")
}

// WelcomeSuggestion returns the canned suggestion for the 1-based shortcut n.
func WelcomeSuggestion(n int) (string, bool) {
	if n < 1 || n > len(welcomeSuggestions) {
		return "", false
	}
	return welcomeSuggestions[n-1], true
}

// EnterSelection enters review mode on the newest message. Returns false when
// the transcript is empty.
func (c *Chat) EnterSelection() bool {
	if len(c.messages) == 0 {
		return false
	}
	c.selecting = true
	c.selectedIdx = len(c.messages) - 1
	c.updateContent()
	return true
}

// ExitSelection leaves review mode and re-pins the transcript to the bottom.
func (c *Chat) ExitSelection() {
	c.selecting = false
	c.updateContent()
}

// IsSelecting returns whether review mode is active.
func (c *Chat) IsSelecting() bool {
	return c.selecting
}

// SelectPrev moves the review cursor one message up.
func (c *Chat) SelectPrev() {
	if !c.selecting || c.selectedIdx <= 0 {
		return
	}
	c.selectedIdx--
	c.updateContent()
}

// SelectNext moves the review cursor one message down.
func (c *Chat) SelectNext() {
	if !c.selecting || c.selectedIdx >= len(c.messages)-1 {
		return
	}
	c.selectedIdx++
	c.updateContent()
}

// SelectedMessage returns the message under the review cursor.
func (c *Chat) SelectedMessage() (thread.Message, bool) {
	if !c.selecting || c.selectedIdx < 0 || c.selectedIdx >= len(c.messages) {
		return thread.Message{}, false
	}
	return c.messages[c.selectedIdx], true
}

// StartEdit loads a previously sent message into the composer, stashing the
// current draft so a cancelled edit restores it.
func (c *Chat) StartEdit(msg thread.Message) {
	c.editing = &PendingEdit{
		MessageID: msg.ID,
		Original:  msg.Content,
		Draft:     c.input.Value(),
	}
	c.input.SetValue(msg.Content)
	c.selecting = false
	c.syncCounter()
	c.updateContent()
}

// IsEditing returns whether an edit is in progress.
func (c *Chat) IsEditing() bool {
	return c.editing != nil
}

// EditingID returns the ID of the message being edited, or "".
func (c *Chat) EditingID() string {
	if c.editing == nil {
		return ""
	}
	return c.editing.MessageID
}

// FinishEdit returns the edited message ID and the composer text, clearing the
// edit state. The caller resends the text as a fresh exchange.
func (c *Chat) FinishEdit() (id, content string) {
	if c.editing == nil {
		return "", ""
	}
	id = c.editing.MessageID
	content = strings.TrimSpace(c.input.Value())
	c.input.Reset()
	c.editing = nil
	c.syncCounter()
	return id, content
}

// CancelEdit abandons the edit and restores the stashed draft.
func (c *Chat) CancelEdit() {
	if c.editing == nil {
		return
	}
	c.input.SetValue(c.editing.Draft)
	c.editing = nil
	c.syncCounter()
}

// inputRuneCount returns the composer length in runes, matching the unit the
// textarea's CharLimit counts.
func (c *Chat) inputRuneCount() int {
	return len([]rune(c.input.Value()))
}

// syncCounter recomputes counter visibility, reflowing the transcript when it
// changes.
func (c *Chat) syncCounter() {
	show := MaxInputChars-c.inputRuneCount() <= counterShowThreshold
	if show != c.counterShown {
		c.counterShown = show
		c.layout()
		c.updateContent()
	}
}

// renderCounter renders the right-aligned composer length counter.
func (c *Chat) renderCounter() string {
	count := c.inputRuneCount()
	remaining := MaxInputChars - count

	style := lipgloss.NewStyle().Foreground(ColorTextMuted)
	if remaining <= 0 {
		style = style.Foreground(ColorError)
	} else if remaining <= 50 {
		style = style.Foreground(ColorWarning)
	}

	text := fmt.Sprintf("%d/%d", count, MaxInputChars)
	pad := c.width - len(text)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + style.Render(text)
}

// renderFeedbackRow renders the rating affordances under an assistant reply.
func renderFeedbackRow(fb thread.Feedback) string {
	like := "▲ útil"
	dislike := "▼ no útil"
	switch fb {
	case thread.FeedbackLiked:
		return FeedbackActiveStyle.Render(like) + "   " + FeedbackMutedStyle.Render(dislike)
	case thread.FeedbackDisliked:
		return FeedbackMutedStyle.Render(like) + "   " + FeedbackActiveStyle.Render(dislike)
	default:
		return FeedbackMutedStyle.Render(like + "   " + dislike)
	}
}

// renderMessage renders one transcript block: role header with timestamp,
// wrapped content, and the feedback row for assistant replies.
func (c *Chat) renderMessage(msg thread.Message, idx, wrapWidth int) string {
	roleStyle := ChatAssistantStyle
	roleName := "JVA"
	if msg.Role == thread.RoleUser {
		roleStyle = ChatUserStyle
		roleName = "Tú"
	}

	selected := c.selecting && idx == c.selectedIdx

	header := roleStyle.Render(roleName + ":")
	if !msg.SentAt.IsZero() {
		header += " " + ChatTimestampStyle.Render(msg.SentAt.Format("15:04"))
	}
	if selected {
		header = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render("▸ ") + header
	}

	content := renderMessageLines(msg.Lines(), wrapWidth)
	if selected && content != "" {
		lines := strings.Split(content, "\n")
		for i := range lines {
			lines[i] = ChatSelectedStyle.Render(lines[i])
		}
		content = strings.Join(lines, "\n")
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(content)
	if msg.Role == thread.RoleAssistant {
		sb.WriteString("\n")
		sb.WriteString(renderFeedbackRow(msg.Feedback))
	}
	return sb.String()
}

// updateContent rebuilds the transcript and re-pins the scroll position.
func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder
	c.msgOffsets = c.msgOffsets[:0]
	lineCount := 0

	if len(c.messages) == 0 && !c.waiting {
		sb.WriteString(renderWelcome(wrapWidth))
	} else {
		for i, msg := range c.messages {
			if i > 0 {
				sb.WriteString("\n\n")
				lineCount += 2
			}
			c.msgOffsets = append(c.msgOffsets, lineCount)
			block := c.renderMessage(msg, i, wrapWidth)
			sb.WriteString(block)
			lineCount += strings.Count(block, "\n") + 1
		}

		if c.waiting {
			if len(c.messages) > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(ChatAssistantStyle.Render("JVA:"))
			sb.WriteString("\n")
			sb.WriteString(renderTypingStatus(c.spinner.Verb, c.spinner.Idx, time.Since(c.spinner.StartTime)))
		} else if c.spinner.FlashFrame >= 0 {
			if flash := renderCompletionFlash(c.spinner.FlashFrame, c.finalElapsed); flash != "" {
				sb.WriteString("\n\n")
				sb.WriteString(flash)
			}
		}
	}

	c.viewport.SetContent(sb.String())
	if c.selecting {
		c.scrollToSelected()
	} else {
		c.viewport.GotoBottom()
	}
}

// scrollToSelected scrolls the viewport so the review cursor is visible.
func (c *Chat) scrollToSelected() {
	if c.selectedIdx < 0 || c.selectedIdx >= len(c.msgOffsets) {
		return
	}
	offset := c.msgOffsets[c.selectedIdx]
	if offset > 0 {
		offset--
	}
	c.viewport.SetYOffset(offset)
}

// Update handles messages.
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	switch msg.(type) {
	case StopwatchTickMsg:
		return c, c.handleStopwatchTick()
	case CompletionFlashTickMsg:
		return c, c.handleCompletionFlashTick()
	case SelectionFlashTickMsg:
		return c, c.handleSelectionFlashTick()
	}

	var cmds []tea.Cmd

	if c.statsView != nil {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "left":
				c.PrevStatsSection()
				return c, nil
			case "right":
				c.NextStatsSection()
				return c, nil
			case "esc", "q":
				c.ExitStatsMode()
				return c, nil
			}
		}
		var cmd tea.Cmd
		c.statsView.Viewport, cmd = c.statsView.Viewport.Update(msg)
		return c, cmd
	}

	// Pointer events arrive translated to transcript coordinates. Press
	// anchors a selection, drag extends it, release copies it.
	switch mouse := msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button == tea.MouseLeft {
			return c, c.handleMouseClick(mouse.X, mouse.Y)
		}
		return c, nil
	case tea.MouseMotionMsg:
		c.EndSelection(mouse.X, mouse.Y)
		return c, nil
	case tea.MouseReleaseMsg:
		if c.selection.Active {
			c.SelectionStop()
			return c, c.CopySelectedText()
		}
		return c, nil
	}

	if c.focused && !c.selecting {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "pgup", "pgdown", "ctrl+u", "ctrl+d", "home", "end":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)
		c.syncCounter()

		// Keep keystrokes out of the viewport while typing so spacebar and
		// arrows edit text instead of scrolling.
		if _, isKey := msg.(tea.KeyPressMsg); isKey {
			return c, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

// View renders the transcript and composer stacked vertically, or the backend
// info overlay when it is active.
func (c *Chat) View() string {
	if c.statsView != nil {
		return c.renderStatsMode()
	}

	transcript := c.selectionView(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width - BorderSize).Render(c.input.View())

	if c.counterShown {
		return lipgloss.JoinVertical(lipgloss.Left, transcript, c.renderCounter(), inputArea)
	}
	return lipgloss.JoinVertical(lipgloss.Left, transcript, inputArea)
}
