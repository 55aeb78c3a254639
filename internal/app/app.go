package app

import (
	"context"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/jvalva/consulta/internal/api"
	"github.com/jvalva/consulta/internal/config"
	"github.com/jvalva/consulta/internal/logger"
	"github.com/jvalva/consulta/internal/thread"
	"github.com/jvalva/consulta/internal/ui"
)

// Focus identifies which part of the panel receives keyboard input.
type Focus int

const (
	// FocusComposer routes keystrokes into the input box.
	FocusComposer Focus = iota
	// FocusTranscript frees the plain letter keys for shortcuts and sends
	// scroll keys to the conversation view.
	FocusTranscript
)

// String returns a human-readable name for the focus target
func (f Focus) String() string {
	switch f {
	case FocusComposer:
		return "Composer"
	case FocusTranscript:
		return "Transcript"
	default:
		return "Unknown"
	}
}

// ConvState represents the current state of the conversation.
// An explicit state machine keeps send and cancel transitions traceable.
type ConvState int

const (
	// StateIdle means the composer is ready for a new consultation
	StateIdle ConvState = iota
	// StateSending means a chat request is in flight
	StateSending
)

// String returns a human-readable name for the state
func (s ConvState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSending:
		return "Sending"
	default:
		return "Unknown"
	}
}

// pendingSend tracks the exchange currently in flight and how to undo it.
type pendingSend struct {
	userID   string             // thread entry awaiting its reply
	restore  string             // composer text brought back when the send is cancelled
	appended bool               // the user entry was added for this send and rolls back on cancel
	row      int                // sheet row when redoing an exchange, 0 for a fresh one
	cancel   context.CancelFunc // aborts the HTTP request
}

// StartupMsg is sent once on startup to trigger the backend probes.
type StartupMsg struct{}

// HealthCheckedMsg is sent when a backend health probe finishes.
type HealthCheckedMsg struct {
	Resp *api.HealthResponse
	Err  error
}

// ChatResultMsg is sent when a chat request finishes.
type ChatResultMsg struct {
	UserID string // thread entry the reply belongs to
	Resp   *api.ChatResponse
	Err    error
}

// AuthURLFetchedMsg carries the Google authorization URL for the hand-off
// notice shown when the backend has lost its credentials.
type AuthURLFetchedMsg struct {
	URL string
	Err error
}

// FeedbackResultMsg is sent when a rating submission finishes.
type FeedbackResultMsg struct {
	MessageID string
	Previous  thread.Feedback // rating restored if the submission failed
	Err       error
}

// DocumentsFetchedMsg carries the knowledge base listing for the documents
// modal.
type DocumentsFetchedMsg struct {
	Documents []api.Document
	Err       error
}

// StatsFetchedMsg carries the rendered server info sections for the overlay.
type StatsFetchedMsg struct {
	Sections []ui.StatsSection
	Err      error
}

// CacheRefreshedMsg is sent when a backend cache refresh finishes.
type CacheRefreshedMsg struct {
	Message string
	Err     error
}

// Model is the main Bubble Tea model for the floating chat panel.
type Model struct {
	config  *config.Config
	version string
	client  *api.Client
	thread  *thread.Store

	header   *ui.Header
	footer   *ui.Footer
	chat     *ui.Chat
	modal    *ui.Modal
	panel    *ui.Panel
	launcher *ui.Launcher

	width  int
	height int
	focus  Focus

	state   ConvState
	pending *pendingSend

	// Rating to restore if a dislike submission fails after the comment
	// modal closes. Only one dislike flow runs at a time.
	dislikePrevious thread.Feedback

	authenticated bool
	closed        bool // panel dismissed with [x]; 'o' brings it back
	unread        int

	windowFocused bool
	kittyKeyboard bool
}

// New creates the app model from a loaded configuration.
func New(cfg *config.Config, version string) *Model {
	// Apply the configured theme; unknown names fall back to the default
	ui.SetThemeByName(cfg.GetTheme())

	m := &Model{
		config:   cfg,
		version:  version,
		client:   api.New(cfg.GetServerURL()).WithSession(cfg.GetClientID()),
		thread:   thread.NewStore(),
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		chat:     ui.NewChat(),
		modal:    ui.NewModal(),
		panel:    ui.NewPanel(),
		launcher: ui.NewLauncher(),
		focus:    FocusComposer,
		state:    StateIdle,
		// Assume focused until the terminal reports otherwise
		windowFocused: true,
		// Kitty's keyboard protocol lets the composer tell shift+enter
		// apart from enter; other terminals fall back to alt+enter.
		kittyKeyboard: os.Getenv("KITTY_WINDOW_ID") != "",
	}

	if rect := cfg.GetPanelRect(); !rect.IsZero() {
		m.panel.SetRect(ui.Rect{Left: rect.Left, Top: rect.Top, Width: rect.Width, Height: rect.Height})
	}

	m.chat.SetFocused(true)
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return StartupMsg{}
	}
}

// IsIdle returns true if no chat request is in flight.
func (m *Model) IsIdle() bool {
	return m.state == StateIdle
}

// CanSendMessage returns true if a new consultation can be sent right now.
func (m *Model) CanSendMessage() bool {
	return m.state == StateIdle && !m.panel.Minimized() && !m.closed
}

// setState transitions to a new conversation state with logging.
func (m *Model) setState(newState ConvState) {
	if m.state != newState {
		logger.Log("App: State transition %s -> %s", m.state, newState)
		m.state = newState
	}
}

// syncThread pushes the current transcript into the chat view.
func (m *Model) syncThread() {
	m.chat.SetMessages(m.thread.Messages())
}

// toggleFocus switches keyboard focus between the composer and the transcript.
func (m *Model) toggleFocus() {
	if m.focus == FocusComposer {
		m.focus = FocusTranscript
	} else {
		m.focus = FocusComposer
	}
	m.chat.SetFocused(m.focus == FocusComposer)
	logger.Log("App: Focus switched to %s", m.focus)
}

// focusComposer pulls keyboard focus back to the input box.
func (m *Model) focusComposer() {
	m.focus = FocusComposer
	m.chat.SetFocused(true)
}

// minimize collapses the panel to the launcher bubble. The conversation and
// any in-flight request keep running underneath.
func (m *Model) minimize() {
	m.panel.SetMinimized(true)
	m.launcher.SetUnread(m.unread)
	logger.Log("App: Panel minimized")
}

// restore brings the full panel back and clears the unread badge.
func (m *Model) restore() {
	m.panel.SetMinimized(false)
	m.unread = 0
	m.launcher.SetUnread(0)
	m.updateSizes()
	logger.Log("App: Panel restored")
}

// closePanel dismisses the panel entirely, leaving only the backdrop.
func (m *Model) closePanel() {
	m.closed = true
	m.saveGeometry()
	logger.Log("App: Panel closed")
}

// reopenPanel brings a dismissed panel back at its previous position.
func (m *Model) reopenPanel() {
	m.closed = false
	m.panel.SetMinimized(false)
	m.unread = 0
	m.launcher.SetUnread(0)
	m.updateSizes()
	logger.Log("App: Panel reopened")
}

// saveGeometry persists the panel rectangle so the next run restores it.
func (m *Model) saveGeometry() {
	r := m.panel.Rect()
	m.config.SetPanelRect(config.PanelRect{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height})
	if err := m.config.Save(); err != nil {
		logger.Warn("App: Failed to save panel geometry: %v", err)
	}
}

// noteUnread bumps the unread badge when a reply lands while the panel is not
// showing the conversation.
func (m *Model) noteUnread() {
	if m.panel.Minimized() || m.closed {
		m.unread++
		m.launcher.SetUnread(m.unread)
	}
}
