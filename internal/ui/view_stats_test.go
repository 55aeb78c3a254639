package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func statsFixture() []StatsSection {
	return []StatsSection{
		{Title: "Estadísticas", Content: `{"total_consultas": 42}`},
		{Title: "Documentos", Content: `{"documents": [], "total": 0}`},
		{Title: "Estado", Content: `{"status": "ok"}`},
	}
}

func TestChat_StatsMode_EnterExit(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 40)

	if chat.IsInStatsMode() {
		t.Error("Chat should not be in stats mode initially")
	}

	chat.EnterStatsMode(statsFixture())
	if !chat.IsInStatsMode() {
		t.Error("Chat should be in stats mode after entering")
	}

	chat.ExitStatsMode()
	if chat.IsInStatsMode() {
		t.Error("Chat should not be in stats mode after exiting")
	}
}

func TestChat_StatsMode_KeyNavigation(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 40)
	chat.EnterStatsMode(statsFixture())

	tests := []struct {
		name          string
		key           string
		expectedIndex int
	}{
		{"right arrow navigates to next section", "right", 1},
		{"right arrow again", "right", 2},
		{"right at end stays at end", "right", 2},
		{"left arrow navigates to previous section", "left", 1},
		{"left arrow again", "left", 0},
		{"left at start stays at start", "left", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat.Update(statsKeyPressMsg(tt.key))

			if !chat.IsInStatsMode() {
				t.Fatal("Should still be in stats mode")
			}
			if chat.statsView.SectionIndex != tt.expectedIndex {
				t.Errorf("Expected section index %d, got %d", tt.expectedIndex, chat.statsView.SectionIndex)
			}
		})
	}
}

func TestChat_StatsMode_EscapeExits(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 40)
	chat.EnterStatsMode(statsFixture())

	chat.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	if chat.IsInStatsMode() {
		t.Error("Escape should exit stats mode")
	}
}

func TestChat_StatsMode_QExits(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 40)
	chat.EnterStatsMode(statsFixture())

	chat.Update(tea.KeyPressMsg{Code: 0, Text: "q"})

	if chat.IsInStatsMode() {
		t.Error("'q' should exit stats mode")
	}
}

func TestChat_StatsMode_Refreshing(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 40)
	chat.EnterStatsMode(statsFixture())

	if chat.IsStatsRefreshing() {
		t.Error("Should not report refreshing initially")
	}

	chat.SetStatsRefreshing(true)
	if !chat.IsStatsRefreshing() {
		t.Error("Should report refreshing after SetStatsRefreshing(true)")
	}

	// New data lands: refreshing clears, section position survives
	chat.NextStatsSection()
	chat.SetStatsRefreshing(true)
	chat.SetStatsSections(statsFixture())

	if chat.IsStatsRefreshing() {
		t.Error("SetStatsSections should clear the refreshing flag")
	}
	if chat.statsView.SectionIndex != 1 {
		t.Errorf("Section position should survive a refresh, got %d", chat.statsView.SectionIndex)
	}
}

func TestChat_StatsMode_NavBar(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 40)
	chat.EnterStatsMode(statsFixture())

	bar := stripANSI(chat.renderStatsNavBar(78))
	if !strings.Contains(bar, "Estadísticas") {
		t.Errorf("nav bar should show the section title, got %q", bar)
	}
	if !strings.Contains(bar, "(1 de 3)") {
		t.Errorf("nav bar should show the section counter, got %q", bar)
	}
	if !strings.Contains(bar, "[r: actualizar]") {
		t.Errorf("nav bar should show the refresh hint, got %q", bar)
	}

	chat.SetStatsRefreshing(true)
	bar = stripANSI(chat.renderStatsNavBar(78))
	if !strings.Contains(bar, "actualizando") {
		t.Errorf("nav bar should show refresh progress, got %q", bar)
	}
}

func TestChat_StatsMode_EmptySections(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 40)
	chat.EnterStatsMode(nil)

	bar := stripANSI(chat.renderStatsNavBar(78))
	if !strings.Contains(bar, "Sin datos") {
		t.Errorf("nav bar should report missing data, got %q", bar)
	}

	// Navigation on empty sections must not panic
	chat.NextStatsSection()
	chat.PrevStatsSection()
}

func TestChat_StatsMode_ViewShowsOverlay(t *testing.T) {
	chat := NewChat()
	chat.SetSize(80, 40)
	chat.EnterStatsMode(statsFixture())

	view := stripANSI(chat.View())
	if !strings.Contains(view, "Estadísticas") {
		t.Errorf("overlay view should show the active section, got %q", view)
	}
	if strings.Contains(view, "Escribe tu consulta") {
		t.Error("overlay should replace the composer")
	}
}

// statsKeyPressMsg creates a tea.KeyPressMsg for the given key string
func statsKeyPressMsg(key string) tea.KeyPressMsg {
	switch key {
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "esc", "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		return tea.KeyPressMsg{Code: 0, Text: key}
	}
}
