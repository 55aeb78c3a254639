package modals

import (
	"testing"
)

func testThemes() ([]string, []string) {
	return []string{"institutional", "nord", "light"},
		[]string{"Institucional", "Nord", "Light"}
}

func TestNewSettingsState(t *testing.T) {
	themes, names := testThemes()
	state := NewSettingsState(themes, names, "institutional", "http://localhost:5000", true)

	if state.GetServerURL() != "http://localhost:5000" {
		t.Errorf("expected server URL to round-trip, got %q", state.GetServerURL())
	}
	if state.GetSelectedTheme() != "institutional" {
		t.Errorf("expected selected theme 'institutional', got %q", state.GetSelectedTheme())
	}
	if state.OriginalTheme != "institutional" {
		t.Errorf("expected original theme 'institutional', got %q", state.OriginalTheme)
	}
	if !state.GetNotificationsEnabled() {
		t.Error("expected notifications enabled")
	}
	if len(state.generalOptions) != 1 || state.generalOptions[0] != optionNotifications {
		t.Errorf("expected generalOptions to carry the notifications key, got %v", state.generalOptions)
	}
}

func TestNewSettingsState_NotificationsDisabled(t *testing.T) {
	themes, names := testThemes()
	state := NewSettingsState(themes, names, "nord", "http://backend", false)

	if state.GetNotificationsEnabled() {
		t.Error("expected notifications disabled")
	}
	if len(state.generalOptions) != 0 {
		t.Errorf("expected empty generalOptions, got %v", state.generalOptions)
	}
}

func TestSettingsState_Title(t *testing.T) {
	themes, names := testThemes()
	state := NewSettingsState(themes, names, "institutional", "", true)
	if state.Title() != "Configuración" {
		t.Errorf("unexpected title: %s", state.Title())
	}
}

func TestSettingsState_GetServerURL_Trims(t *testing.T) {
	themes, names := testThemes()
	state := NewSettingsState(themes, names, "institutional", "  http://x:5000  ", true)

	if got := state.GetServerURL(); got != "http://x:5000" {
		t.Errorf("expected trimmed server URL, got %q", got)
	}
}

func TestSettingsState_ThemeChanged(t *testing.T) {
	themes, names := testThemes()
	state := NewSettingsState(themes, names, "institutional", "", true)

	if state.ThemeChanged() {
		t.Error("theme should be unchanged initially")
	}

	state.selectedTheme = "nord"
	if !state.ThemeChanged() {
		t.Error("expected ThemeChanged after selecting a different theme")
	}

	state.selectedTheme = "institutional"
	if state.ThemeChanged() {
		t.Error("selecting the original theme again should read as unchanged")
	}
}

func TestSettingsState_SyncFromMultiSelect(t *testing.T) {
	themes, names := testThemes()
	state := NewSettingsState(themes, names, "institutional", "", true)

	// Simulate the user unchecking the notifications option
	state.generalOptions = nil
	state.syncFromMultiSelect()
	if state.GetNotificationsEnabled() {
		t.Error("expected notifications disabled after clearing the option")
	}

	state.generalOptions = []string{optionNotifications}
	state.syncFromMultiSelect()
	if !state.GetNotificationsEnabled() {
		t.Error("expected notifications enabled after restoring the option")
	}
}

func TestSettingsState_Render(t *testing.T) {
	themes, names := testThemes()
	state := NewSettingsState(themes, names, "institutional", "http://localhost:5000", true)

	rendered := state.Render()
	if rendered == "" {
		t.Error("expected non-empty rendered output")
	}
}

func TestSettingsState_PreferredWidth(t *testing.T) {
	themes, names := testThemes()
	state := NewSettingsState(themes, names, "institutional", "", true)

	if state.PreferredWidth() != ModalWidthWide {
		t.Errorf("expected preferred width %d, got %d", ModalWidthWide, state.PreferredWidth())
	}
}

func TestSettingsState_SetSize(t *testing.T) {
	themes, names := testThemes()
	state := NewSettingsState(themes, names, "institutional", "", true)

	state.SetSize(90, 30)
	if state.availableWidth != 90 {
		t.Errorf("expected availableWidth 90, got %d", state.availableWidth)
	}
	if state.contentWidth() != 80 {
		t.Errorf("expected contentWidth 80, got %d", state.contentWidth())
	}
}
