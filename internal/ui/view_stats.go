package ui

import (
	"fmt"

	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"
)

// EnterStatsMode enters the backend info overlay with the given sections.
func (c *Chat) EnterStatsMode(sections []StatsSection) {
	c.statsView = &StatsViewState{
		Sections:     sections,
		SectionIndex: 0,
		Viewport:     viewport.New(),
	}

	c.statsView.Viewport.MouseWheelEnabled = true
	c.statsView.Viewport.MouseWheelDelta = 3
	c.statsView.Viewport.SoftWrap = true

	// Sized properly in render; set an initial size
	c.statsView.Viewport.SetWidth(c.viewport.Width())
	c.statsView.Viewport.SetHeight(c.viewport.Height())

	c.updateStatsContent()
}

// SetStatsSections replaces the overlay data after a refresh, keeping the
// current section in view.
func (c *Chat) SetStatsSections(sections []StatsSection) {
	if c.statsView == nil {
		return
	}
	c.statsView.Sections = sections
	c.statsView.Refreshing = false
	c.updateStatsContent()
}

// updateStatsContent updates the overlay viewport with the currently selected
// section's payload, highlighted as JSON.
func (c *Chat) updateStatsContent() {
	if c.statsView == nil || len(c.statsView.Sections) == 0 {
		if c.statsView != nil {
			c.statsView.Viewport.SetContent("Sin datos del servidor")
		}
		return
	}
	if c.statsView.SectionIndex >= len(c.statsView.Sections) {
		c.statsView.SectionIndex = len(c.statsView.Sections) - 1
	}

	section := c.statsView.Sections[c.statsView.SectionIndex]
	c.statsView.Viewport.SetContent(highlightCode(section.Content, "json"))
	c.statsView.Viewport.GotoTop()
}

// ExitStatsMode exits the overlay and returns to the transcript.
func (c *Chat) ExitStatsMode() {
	c.statsView = nil
}

// IsInStatsMode returns whether the backend info overlay is showing.
func (c *Chat) IsInStatsMode() bool {
	return c.statsView != nil
}

// NextStatsSection moves to the next overlay section.
func (c *Chat) NextStatsSection() {
	if c.statsView == nil || c.statsView.SectionIndex >= len(c.statsView.Sections)-1 {
		return
	}
	c.statsView.SectionIndex++
	c.updateStatsContent()
}

// PrevStatsSection moves to the previous overlay section.
func (c *Chat) PrevStatsSection() {
	if c.statsView == nil || c.statsView.SectionIndex <= 0 {
		return
	}
	c.statsView.SectionIndex--
	c.updateStatsContent()
}

// SetStatsRefreshing marks a cache refresh in flight so the nav bar shows it.
func (c *Chat) SetStatsRefreshing(refreshing bool) {
	if c.statsView != nil {
		c.statsView.Refreshing = refreshing
	}
}

// IsStatsRefreshing returns whether a cache refresh is in flight.
func (c *Chat) IsStatsRefreshing() bool {
	return c.statsView != nil && c.statsView.Refreshing
}

// renderStatsMode renders the overlay: section nav bar over a scrollable
// payload view, filling the chat area.
func (c *Chat) renderStatsMode() string {
	if c.statsView == nil {
		return ""
	}

	navBar := c.renderStatsNavBar(c.width)
	payloadHeight := c.height - 1
	if payloadHeight < 1 {
		payloadHeight = 1
	}

	c.statsView.Viewport.SetWidth(c.width)
	c.statsView.Viewport.SetHeight(payloadHeight)

	payload := lipgloss.NewStyle().
		MaxHeight(payloadHeight).
		Render(c.statsView.Viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, navBar, payload)
}

// renderStatsNavBar renders the section navigation bar for the overlay.
func (c *Chat) renderStatsNavBar(width int) string {
	if c.statsView == nil || len(c.statsView.Sections) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Foreground(ColorTextMuted).
			Render("Sin datos del servidor")
	}

	current := c.statsView.Sections[c.statsView.SectionIndex]

	leftArrow := "  "
	if c.statsView.SectionIndex > 0 {
		leftArrow = "← "
	}
	rightArrow := "  "
	if c.statsView.SectionIndex < len(c.statsView.Sections)-1 {
		rightArrow = " →"
	}

	counterStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	counter := counterStyle.Render(fmt.Sprintf("(%d de %d)", c.statsView.SectionIndex+1, len(c.statsView.Sections)))

	arrowStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	refreshHint := ""
	if c.statsView.Refreshing {
		busyStyle := lipgloss.NewStyle().Foreground(ColorWarning)
		refreshHint = " " + busyStyle.Render("actualizando…")
	} else {
		hintStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
		refreshHint = " " + hintStyle.Render("[r: actualizar]")
	}

	fixedWidth := lipgloss.Width(leftArrow) + lipgloss.Width(counter) + lipgloss.Width(rightArrow) + lipgloss.Width(refreshHint) + 1
	maxTitleWidth := max(width-fixedWidth, 10)

	title := current.Title
	if titleRunes := []rune(title); len(titleRunes) > maxTitleWidth {
		title = string(titleRunes[:maxTitleWidth-1]) + "…"
	}
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	navContent := arrowStyle.Render(leftArrow) +
		titleStyle.Render(title) + " " +
		counter +
		arrowStyle.Render(rightArrow) +
		refreshHint

	return lipgloss.NewStyle().Width(width).Render(navContent)
}
