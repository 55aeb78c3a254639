package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType classifies a transient footer notice
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// DefaultFlashDuration is how long a flash stays visible unless a custom
// duration is given
const DefaultFlashDuration = 4 * time.Second

// FlashMessage is a transient notice shown in the footer in place of the
// key bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the flash has outlived its duration
func (m *FlashMessage) IsExpired() bool {
	return time.Since(m.CreatedAt) > m.Duration
}

// FlashTickMsg is emitted periodically while a flash is visible so the
// footer can expire it
type FlashTickMsg struct {
	Time time.Time
}

// FlashTick returns a command that emits a FlashTickMsg after a short delay
func FlashTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return FlashTickMsg{Time: t}
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width         int
	bindings      []KeyBinding
	flashMessage  *FlashMessage
	sending       bool // a chat request is in flight
	editing       bool // the composer holds a message being edited
	selecting     bool // message selection mode is active
	hasMessages   bool // the thread has at least one entry
	kittyKeyboard bool // terminal reports the kitty keyboard protocol
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "enter", Desc: "enviar"},
			{Key: "ctrl+↑", Desc: "mensajes"},
			{Key: "ctrl+s", Desc: "ajustes"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(sending, editing, selecting, hasMessages, kittyKeyboard bool) {
	f.sending = sending
	f.editing = editing
	f.selecting = selecting
	f.hasMessages = hasMessages
	f.kittyKeyboard = kittyKeyboard
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a transient notice with the default duration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a transient notice for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes the current flash immediately
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash is currently set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes the flash if it has outlived its duration and
// reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// flashIcon returns the icon and style for a flash type
func flashIcon(t FlashType) (string, lipgloss.Style) {
	switch t {
	case FlashError:
		return "✕", FlashErrorStyle
	case FlashWarning:
		return "⚠", FlashWarningStyle
	case FlashSuccess:
		return "✓", FlashSuccessStyle
	default:
		return "ℹ", FlashInfoStyle
	}
}

// newlineKey returns the newline shortcut label for the active keyboard
// protocol. Plain terminals cannot distinguish shift+enter from enter, so
// the textarea falls back to alt+enter there.
func (f *Footer) newlineKey() string {
	if f.kittyKeyboard {
		return "shift+enter"
	}
	return "opt+enter"
}

// View renders the footer
func (f *Footer) View() string {
	// A flash takes priority over every binding set
	if f.flashMessage != nil && !f.flashMessage.IsExpired() {
		icon, style := flashIcon(f.flashMessage.Type)
		content := style.Render(icon + " " + f.flashMessage.Text)
		return FooterStyle.Width(f.width).Render(content)
	}

	var bindings []KeyBinding
	switch {
	case f.selecting:
		bindings = []KeyBinding{
			{Key: "↑/↓", Desc: "navegar"},
			{Key: "c", Desc: "copiar"},
			{Key: "e", Desc: "editar"},
			{Key: "r", Desc: "regenerar"},
			{Key: "g/d", Desc: "valorar"},
			{Key: "esc", Desc: "salir"},
		}
	case f.sending:
		bindings = []KeyBinding{
			{Key: "esc", Desc: "detener"},
			{Key: "pgup/dn", Desc: "desplazar"},
		}
	case f.editing:
		bindings = []KeyBinding{
			{Key: "enter", Desc: "reenviar"},
			{Key: f.newlineKey(), Desc: "línea nueva"},
			{Key: "esc", Desc: "cancelar edición"},
		}
	case !f.hasMessages:
		bindings = []KeyBinding{
			{Key: "enter", Desc: "enviar"},
			{Key: "1-4", Desc: "sugerencias"},
			{Key: "ctrl+s", Desc: "ajustes"},
		}
	default:
		bindings = f.bindings
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
