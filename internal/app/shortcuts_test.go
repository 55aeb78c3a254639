package app

import (
	"context"
	"testing"

	"github.com/jvalva/consulta/internal/errors"
	"github.com/jvalva/consulta/internal/keys"
	"github.com/jvalva/consulta/internal/ui"
)

// ============================================================================
// Registry validation
// ============================================================================

func TestShortcutRegistry_AllShortcutsHaveHandlers(t *testing.T) {
	for _, s := range ShortcutRegistry {
		if s.Handler == nil {
			t.Errorf("shortcut %q has no handler", s.Key)
		}
		if s.Key == "" {
			t.Errorf("shortcut %q has no key", s.Description)
		}
		if s.Description == "" {
			t.Errorf("shortcut %q has no description", s.Key)
		}
	}
}

func TestShortcutRegistry_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range ShortcutRegistry {
		if seen[s.Key] {
			t.Errorf("duplicate shortcut key %q", s.Key)
		}
		seen[s.Key] = true
	}
	if seen[helpShortcut.Key] {
		t.Errorf("help key %q collides with the registry", helpShortcut.Key)
	}
}

func TestShortcutRegistry_ValidCategories(t *testing.T) {
	valid := make(map[string]bool)
	for _, cat := range categoryOrder {
		valid[cat] = true
	}

	for _, s := range ShortcutRegistry {
		if !valid[s.Category] {
			t.Errorf("shortcut %q has unknown category %q", s.Key, s.Category)
		}
	}
	for _, s := range DisplayOnlyShortcuts {
		if !valid[s.Category] {
			t.Errorf("display-only shortcut %q has unknown category %q", s.DisplayKey, s.Category)
		}
		if s.DisplayKey == "" {
			t.Errorf("display-only shortcut %q has no display key", s.Description)
		}
	}
}

// ============================================================================
// Guards
// ============================================================================

func TestExecuteShortcut_UnknownKey(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	_, _, handled := m.ExecuteShortcut("ctrl+z")
	if handled {
		t.Error("an unknown key should not be handled")
	}
}

func TestExecuteShortcut_TranscriptGuard(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	_, _, handled := m.ExecuteShortcut("m")
	if handled {
		t.Error("m should be refused while the composer is focused")
	}

	m.toggleFocus()
	_, _, handled = m.ExecuteShortcut("m")
	if !handled {
		t.Error("m should run with the transcript focused")
	}
}

func TestExecuteShortcut_MessagesGuard(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	_, _, handled := m.ExecuteShortcut(keys.CtrlUp)
	if handled {
		t.Error("review should be refused on an empty thread")
	}

	m = seedExchange(m, "consulta", "respuesta", 1)
	_, _, handled = m.ExecuteShortcut(keys.CtrlUp)
	if !handled {
		t.Error("review should run once the thread has messages")
	}
	if !m.chat.IsSelecting() {
		t.Error("review should enter selection mode")
	}
}

func TestExecuteShortcut_ConditionGuard(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m.chat.EnterStatsMode(nil)

	_, _, handled := m.ExecuteShortcut(keys.CtrlR)
	if handled {
		t.Error("ctrl+r should be refused while the overlay is already open")
	}
}

// ============================================================================
// Help sections
// ============================================================================

func helpSectionFor(m *Model, category string) ([]string, bool) {
	all := append(ShortcutRegistry, helpShortcut)
	for _, section := range m.getApplicableHelpSections(all, DisplayOnlyShortcuts) {
		if section.Title != category {
			continue
		}
		var ks []string
		for _, s := range section.Shortcuts {
			ks = append(ks, s.Key)
		}
		return ks, true
	}
	return nil, false
}

func TestHelpSections_ComposerWithEmptyThread(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	if _, ok := helpSectionFor(m, CategoryReview); ok {
		t.Error("the review section should be hidden with nothing to review")
	}

	panel, ok := helpSectionFor(m, CategoryPanel)
	if !ok {
		t.Fatal("the panel section should always be present")
	}
	for _, k := range panel {
		if k == "m" {
			t.Error("m should be hidden while the composer is focused")
		}
	}

	if chat, ok := helpSectionFor(m, CategoryChat); ok {
		for _, k := range chat {
			if k == "ctrl+↑" {
				t.Error("review entry should be hidden on an empty thread")
			}
		}
	}
}

func TestHelpSections_TranscriptWithMessages(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = seedExchange(m, "consulta", "respuesta", 1)
	m.toggleFocus()

	if _, ok := helpSectionFor(m, CategoryReview); !ok {
		t.Error("the review section should appear once there are messages")
	}

	panel, _ := helpSectionFor(m, CategoryPanel)
	foundM := false
	for _, k := range panel {
		if k == "m" {
			foundM = true
		}
	}
	if !foundM {
		t.Error("m should be listed with the transcript focused")
	}

	chat, _ := helpSectionFor(m, CategoryChat)
	foundReview := false
	for _, k := range chat {
		if k == "ctrl+↑" {
			foundReview = true
		}
	}
	if !foundReview {
		t.Error("the review entry should be listed with messages present")
	}
}

// ============================================================================
// Server info overlay
// ============================================================================

func TestStatsOverlay_OpenAndRefresh(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	result, cmd := m.Update(keyPress(keys.CtrlR))
	m = result.(*Model)

	if !m.chat.IsInStatsMode() {
		t.Fatal("ctrl+r should open the server info overlay")
	}
	if !m.chat.IsStatsRefreshing() {
		t.Error("the overlay should show the fetch in progress")
	}
	if cmd == nil {
		t.Error("opening the overlay should fire the stats fetch")
	}

	result, _ = m.Update(StatsFetchedMsg{Sections: []ui.StatsSection{
		{Title: "Estadísticas de consultas", Content: `{"total": 12}`},
		{Title: "Estado del servidor", Content: `{"status": "healthy"}`},
	}})
	m = result.(*Model)

	if m.chat.IsStatsRefreshing() {
		t.Error("the fetch result should clear the refreshing state")
	}

	// r refreshes the backend cache and reloads the overlay
	result, cmd = m.Update(keyPress("r"))
	m = result.(*Model)

	if !m.chat.IsStatsRefreshing() {
		t.Error("r should start a cache refresh")
	}
	if cmd == nil {
		t.Error("r should fire the refresh command")
	}
}

func TestStatsOverlay_RefreshKeySwallowedWhileBusy(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.CtrlR) // still refreshing

	m = sendKey(m, "r")

	if !m.chat.IsInStatsMode() {
		t.Error("r should not close the overlay")
	}
	if !m.chat.IsStatsRefreshing() {
		t.Error("a second r should not cancel the running fetch")
	}
}

func TestStatsOverlay_FetchErrorCloses(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.CtrlR)

	result, _ := m.Update(StatsFetchedMsg{Err: errors.RequestFailed("/api/statistics", context.DeadlineExceeded)})
	m = result.(*Model)

	if m.chat.IsInStatsMode() {
		t.Error("a failed fetch should close the overlay")
	}
	if !m.footer.HasFlash() {
		t.Error("a failed fetch should flash an error")
	}
}

func TestStatsOverlay_EscReturnsToTranscript(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.CtrlR)

	m = sendKey(m, keys.Escape)

	if m.chat.IsInStatsMode() {
		t.Error("esc should close the overlay")
	}
	if m.panel.Minimized() {
		t.Error("esc in the overlay should not minimize the panel")
	}
}

func TestCacheRefreshSuccess_ReloadsOverlay(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.CtrlR)

	result, cmd := m.Update(CacheRefreshedMsg{Message: "refreshed"})
	m = result.(*Model)

	if !m.footer.HasFlash() {
		t.Error("a finished refresh should flash a confirmation")
	}
	if cmd == nil {
		t.Error("a finished refresh should fetch the overlay data again")
	}
}
