package ui

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Launcher renders the minimized chat bubble. While the panel is minimized
// it is the only visible surface: its whole area acts as a drag handle and
// it carries the unread badge.
type Launcher struct {
	unread int
}

// NewLauncher creates a new launcher
func NewLauncher() *Launcher {
	return &Launcher{}
}

// SetUnread sets the unread message count shown on the badge
func (l *Launcher) SetUnread(count int) {
	l.unread = count
}

// Unread returns the current unread count
func (l *Launcher) Unread() int {
	return l.unread
}

// FormatUnread renders an unread count for the badge: empty for zero,
// the number up to MaxUnreadDisplay, and "9+" beyond it.
func FormatUnread(count int) string {
	if count <= 0 {
		return ""
	}
	if count > MaxUnreadDisplay {
		return strconv.Itoa(MaxUnreadDisplay) + "+"
	}
	return strconv.Itoa(count)
}

// View renders the launcher bubble
func (l *Launcher) View() string {
	inner := LauncherWidth - BorderSize
	label := " consulta"

	badgeText := FormatUnread(l.unread)
	badge := ""
	badgeWidth := 0
	if badgeText != "" {
		badge = LauncherBadgeStyle.Render(" " + badgeText + " ")
		badgeWidth = runewidth.StringWidth(" " + badgeText + " ")
	}

	padding := inner - runewidth.StringWidth(label) - badgeWidth
	if padding < 0 {
		padding = 0
	}

	row := label + strings.Repeat(" ", padding) + badge
	return LauncherStyle.Width(inner).Render(row)
}
