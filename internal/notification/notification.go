// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/jvalva/consulta/internal/logger"
)

// notifyFn matches beeep.Notify so tests can swap in a recorder.
type notifyFn func(title, message string, appIcon any) error

var notifier notifyFn = beeep.Notify

// SetNotifier replaces the notification function. Used in tests.
func SetNotifier(fn notifyFn) {
	notifier = fn
}

// ResetNotifier restores the default beeep-backed notifier.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Debug("Notification: Sending notification - title=%q, message=%q", title, message)
	// Empty icon - beeep handles platform defaults
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("Notification: Failed to send notification: %v", err)
	}
	return err
}

// ReplyReceived sends a notification that the assistant answered while the
// terminal was in the background.
func ReplyReceived(preview string) error {
	if runes := []rune(preview); len(runes) > 80 {
		preview = string(runes[:77]) + "..."
	}
	return Send("Consulta IESTP", preview)
}
