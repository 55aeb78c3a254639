package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jvalva/consulta/internal/keys"
	"github.com/jvalva/consulta/internal/logger"
	"github.com/jvalva/consulta/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for the panel's shortcuts: execution,
// guard checks, and the help modal all read from the same registry.
type Shortcut struct {
	Key         string // key string as produced by tea.KeyPressMsg.String()
	DisplayKey  string // display override for the help modal (e.g. "ctrl+↑")
	Description string
	Category    string

	// Guards. RequiresTranscript keeps plain-letter bindings away from the
	// composer, RequiresMessages needs a non-empty thread, and Condition is
	// an optional extra check.
	RequiresTranscript bool
	RequiresMessages   bool
	Condition          func(m *Model) bool

	Handler func(m *Model) (tea.Model, tea.Cmd)
}

// Shortcut categories, in the order the help modal lists them.
const (
	CategoryPanel   = "Panel"
	CategoryChat    = "Conversación"
	CategoryReview  = "Revisión de mensajes"
	CategoryServer  = "Servidor"
	CategoryGeneral = "General"
)

var categoryOrder = []string{
	CategoryPanel,
	CategoryChat,
	CategoryReview,
	CategoryServer,
	CategoryGeneral,
}

// ShortcutRegistry holds all executable shortcuts.
var ShortcutRegistry = []Shortcut{
	{
		Key:         keys.Tab,
		Description: "Cambiar el foco entre escribir y leer",
		Category:    CategoryPanel,
		Handler:     shortcutToggleFocus,
	},
	{
		Key:                "m",
		Description:        "Minimizar el panel",
		Category:           CategoryPanel,
		RequiresTranscript: true,
		Handler:            shortcutMinimize,
	},
	{
		Key:              keys.CtrlUp,
		DisplayKey:       "ctrl+↑",
		Description:      "Revisar los mensajes enviados",
		Category:         CategoryChat,
		RequiresMessages: true,
		Handler:          shortcutReview,
	},
	{
		Key:         keys.CtrlS,
		Description: "Abrir los ajustes",
		Category:    CategoryGeneral,
		Handler:     shortcutSettings,
	},
	{
		Key:         keys.CtrlL,
		Description: "Ver la base de conocimiento",
		Category:    CategoryServer,
		Handler:     shortcutDocuments,
	},
	{
		Key:         keys.CtrlR,
		Description: "Ver el estado del servidor",
		Category:    CategoryServer,
		Handler:     shortcutStats,
		Condition: func(m *Model) bool {
			return !m.chat.IsInStatsMode()
		},
	},
}

// helpShortcut is defined separately to avoid an initialization cycle.
// Its handler reads ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:                "?",
	Description:        "Mostrar esta ayuda",
	Category:           CategoryGeneral,
	RequiresTranscript: true,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help
// modal. These are context-sensitive or mouse-driven entries.
var DisplayOnlyShortcuts = []Shortcut{
	// Panel (mouse-driven)
	{DisplayKey: "arrastrar la cabecera", Description: "Mover el panel", Category: CategoryPanel},
	{DisplayKey: "arrastrar el borde", Description: "Cambiar el tamaño", Category: CategoryPanel},
	{DisplayKey: "[-] / [x]", Description: "Minimizar o cerrar con el ratón", Category: CategoryPanel},
	{DisplayKey: "o", Description: "Reabrir el panel cerrado", Category: CategoryPanel},

	// Conversación (context-sensitive)
	{DisplayKey: "enter", Description: "Enviar la consulta", Category: CategoryChat},
	{DisplayKey: "shift+enter", Description: "Insertar una línea nueva", Category: CategoryChat},
	{DisplayKey: "1-4", Description: "Enviar una sugerencia de inicio", Category: CategoryChat},
	{DisplayKey: "esc", Description: "Detener la consulta en curso", Category: CategoryChat},
	{DisplayKey: "arrastrar en el texto", Description: "Seleccionar y copiar", Category: CategoryChat},

	// Revisión de mensajes (active inside review mode)
	{DisplayKey: "↑/↓ o k/j", Description: "Moverse entre mensajes", Category: CategoryReview},
	{DisplayKey: "c", Description: "Copiar el mensaje", Category: CategoryReview},
	{DisplayKey: "e", Description: "Editar tu consulta", Category: CategoryReview},
	{DisplayKey: "r", Description: "Regenerar la respuesta", Category: CategoryReview},
	{DisplayKey: "g", Description: "Marcar como útil", Category: CategoryReview},
	{DisplayKey: "d", Description: "Marcar como no útil", Category: CategoryReview},

	// General
	{DisplayKey: "ctrl+c", Description: "Salir de consulta", Category: CategoryGeneral},
}

// isShortcutApplicable checks if a shortcut is applicable given the current
// model state. This filters which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresTranscript && m.focus == FocusComposer {
		return false
	}
	if s.RequiresMessages && !m.chat.HasMessages() {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// It checks all guards before executing.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// The help shortcut lives outside the registry to avoid an init cycle
	if key == helpShortcut.Key {
		if helpShortcut.RequiresTranscript && m.focus == FocusComposer {
			return m, nil, false // let "?" reach the textarea
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.RequiresTranscript && m.focus == FocusComposer {
			logger.Log("Shortcut: Guard failed for %q - composer is focused", key)
			return m, nil, false // let the key reach the textarea
		}
		if s.RequiresMessages && !m.chat.HasMessages() {
			logger.Log("Shortcut: Guard failed for %q - no messages yet", key)
			return m, nil, false
		}
		if s.Condition != nil && !s.Condition(m) {
			logger.Log("Shortcut: Guard failed for %q - condition returned false", key)
			return m, nil, false
		}
		logger.Log("Shortcut: Executing handler for %q", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections builds the help modal sections from the
// shortcuts applicable in the current state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	for _, s := range registry {
		if !m.isShortcutApplicable(s) {
			continue
		}
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	for _, s := range displayOnly {
		// The review keys only matter once there is something to review
		if s.Category == CategoryReview && !m.chat.HasMessages() {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  s.DisplayKey,
			Desc: s.Description,
		})
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// normalizeHelpDisplayKey converts a help modal display key back to the key
// value ExecuteShortcut expects. Returns "" for display-only entries.
func normalizeHelpDisplayKey(display string) string {
	if display == helpShortcut.Key {
		return helpShortcut.Key
	}
	for _, s := range ShortcutRegistry {
		if display == s.Key || (s.DisplayKey != "" && display == s.DisplayKey) {
			return s.Key
		}
	}
	return ""
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutMinimize(m *Model) (tea.Model, tea.Cmd) {
	m.minimize()
	return m, nil
}

func shortcutReview(m *Model) (tea.Model, tea.Cmd) {
	if m.chat.EnterSelection() {
		logger.Log("App: Entered review mode")
	}
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	m.showSettingsModal()
	return m, nil
}

func shortcutDocuments(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewDocumentsState())
	return m, m.fetchDocumentsCmd()
}

func shortcutStats(m *Model) (tea.Model, tea.Cmd) {
	m.chat.EnterStatsMode(nil)
	m.chat.SetStatsRefreshing(true)
	return m, m.fetchStatsCmd()
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include the help shortcut itself in the listing
	allShortcuts := append(ShortcutRegistry, helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpStateFromSections(sections))
	return m, nil
}
