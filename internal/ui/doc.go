// Package ui provides the user interface components for the consulta TUI.
//
// # Overview
//
// The ui package implements the visual pieces of consulta using the Bubble Tea
// framework and Lipgloss styling library. It follows the Model-Update-View
// pattern established by Bubble Tea. The app package composes these pieces;
// nothing here talks to the backend directly.
//
// # Layout System
//
// The chat panel floats over a shaded backdrop and can be dragged by its
// header row or resized from its borders. Inside the panel:
//
//	╭─────────────────────────────────────╮
//	│ Header: title + status + controls   │
//	├─────────────────────────────────────┤
//	│                                     │
//	│   Transcript (viewport)             │
//	│                                     │
//	│ ╭─────────────────────────────────╮ │
//	│ │ Composer (textarea)             │ │
//	│ ╰─────────────────────────────────╯ │
//	│ Footer: contextual keys / flash     │
//	╰─────────────────────────────────────╯
//
// When minimized, the panel collapses to a small launcher bubble that carries
// the unread counter badge.
//
// # Components
//
// ViewContext: Centralized layout math for the panel interior. All size
// calculations should go through ViewContext to ensure consistency.
//
// Panel: Geometry state for the floating rectangle — position, size, and the
// active drag or resize gesture, clamped to the terminal.
//
// Header: Single-line title bar with a gradient background; it doubles as the
// drag handle and hosts the minimize and close controls.
//
// Footer: Shows context-aware keyboard shortcuts, replaced temporarily by
// flash messages (the toast equivalent).
//
// Chat: The conversation surface — transcript viewport, composer textarea,
// typing indicator, review mode for acting on individual messages, and the
// text-selection layer.
//
// Launcher: The minimized bubble with the unread badge.
//
// Modal: Popup dialog host. Concrete dialogs live in the modals subpackage:
//   - modals.SettingsState: server URL, theme, notifications (huh form)
//   - modals.FeedbackCommentState: optional dislike comment
//   - modals.DocumentsState: knowledge-base source documents
//   - modals.HelpState: keyboard shortcut reference
//
// # Focus System
//
// The composer owns keystrokes while the panel is focused; scroll keys and
// the mouse wheel reach the transcript viewport. Review mode (ctrl+up) moves
// focus to the transcript so per-message affordances apply. A modal, when
// visible, captures all input first.
//
// # Styles
//
// All styles are defined in styles.go using Lipgloss and regenerate when the
// theme changes (see theme.go). The default Institucional palette:
//   - ColorPrimary (#8C2332): Guinda, highlights and focused elements
//   - ColorSecondary (#D9A441): Gold, accents and suggestion keys
//   - ColorBg (#241B1E): Dark background
//   - ColorText (#F4ECE6): Warm white text
//   - ColorTextMuted (#A99A94): Muted text for secondary content
package ui
