package ui

import (
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// StopwatchTickMsg is sent to update the animated typing indicator
type StopwatchTickMsg time.Time

// CompletionFlashTickMsg is sent to animate the completion checkmark flash
type CompletionFlashTickMsg time.Time

// SelectionFlashTickMsg is sent to animate the selection copy flash
type SelectionFlashTickMsg time.Time

// typingVerbs cycle while waiting for the backend to answer
var typingVerbs = []string{
	"Escribiendo",
	"Consultando",
	"Buscando",
	"Revisando",
	"Redactando",
	"Verificando",
}

// randomTypingVerb returns a random verb from the list
func randomTypingVerb() string {
	return typingVerbs[rand.Intn(len(typingVerbs))]
}

// spinnerFrames are the characters used for the shimmering spinner animation
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// CompletionFlashTick returns a command that sends a completion flash tick
func CompletionFlashTick() tea.Cmd {
	return tea.Tick(160*time.Millisecond, func(t time.Time) tea.Msg {
		return CompletionFlashTickMsg(t)
	})
}

// SelectionFlashTick returns a command that sends a selection flash tick
func SelectionFlashTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return SelectionFlashTickMsg(t)
	})
}

// StartCompletionFlash starts the completion checkmark flash animation
func (c *Chat) StartCompletionFlash() tea.Cmd {
	c.finalElapsed = time.Since(c.spinner.StartTime)
	c.spinner.FlashFrame = 0
	c.updateContent()
	return CompletionFlashTick()
}

// IsCompletionFlashing returns whether the completion flash animation is active
func (c *Chat) IsCompletionFlashing() bool {
	return c.spinner.FlashFrame >= 0
}

// IsSelectionFlashing returns whether the selection flash animation is active
func (c *Chat) IsSelectionFlashing() bool {
	return c.selection.FlashFrame >= 0
}

// renderTypingStatus renders the typing indicator line shown while a request
// is in flight. Format: ✺ Escribiendo... (esc para detener • 12s)
func renderTypingStatus(verb string, frameIdx int, elapsed time.Duration) string {
	frame := spinnerFrames[frameIdx%len(spinnerFrames)]

	spinnerStyle := lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)
	verbStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Italic(true)
	metaStyle := lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	meta := metaStyle.Render("(esc para detener • " + formatElapsed(elapsed) + ")")
	return spinnerStyle.Render(frame) + " " + verbStyle.Render(verb+"...") + " " + meta
}

// renderCompletionFlash renders the checkmark flash shown when a reply lands.
// Frame 0 is bright, frame 1 dimmer, frame 2+ gone.
func renderCompletionFlash(frame int, elapsed time.Duration) string {
	meta := ""
	if elapsed >= time.Second {
		metaStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
		meta = " " + metaStyle.Render("("+formatElapsed(elapsed)+")")
	}

	switch frame {
	case 0:
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(CurrentTheme().Success)).
			Bold(true)
		return style.Render("✓") + " " + lipgloss.NewStyle().Foreground(ColorSecondary).Italic(true).Render("Listo") + meta
	case 1:
		style := lipgloss.NewStyle().
			Foreground(ColorSecondary)
		return style.Render("✓") + meta
	default:
		return ""
	}
}

// formatElapsed formats a duration for display (e.g., "12s", "1m30s")
func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%ds", secs/60, secs%60)
}

// SetWaiting sets the waiting state while a chat request is in flight
func (c *Chat) SetWaiting(waiting bool) {
	c.waiting = waiting
	if waiting {
		c.spinner.Verb = randomTypingVerb()
		c.spinner.Idx = 0
		c.spinner.StartTime = time.Now()
	}
	c.updateContent()
}

// IsWaiting returns whether a response is pending
func (c *Chat) IsWaiting() bool {
	return c.waiting
}

// handleStopwatchTick handles the spinner animation tick
func (c *Chat) handleStopwatchTick() tea.Cmd {
	if !c.waiting {
		return nil
	}

	c.spinner.Idx++
	if c.spinner.Idx >= len(spinnerFrames) {
		c.spinner.Idx = 0
	}
	c.updateContent()
	return StopwatchTick()
}

// handleCompletionFlashTick handles the completion flash animation tick
func (c *Chat) handleCompletionFlashTick() tea.Cmd {
	if c.spinner.FlashFrame < 0 {
		return nil
	}

	c.spinner.FlashFrame++
	if c.spinner.FlashFrame >= 3 {
		c.spinner.FlashFrame = -1
	}
	c.updateContent()
	if c.spinner.FlashFrame >= 0 {
		return CompletionFlashTick()
	}
	return nil
}
