package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jvalva/consulta/internal/keys"
)

func TestView_LoadingBeforeFirstSize(t *testing.T) {
	m := testModel(testConfig())

	if got := m.RenderToString(); got != "Cargando..." {
		t.Errorf("render before sizing = %q, want the loading placeholder", got)
	}
}

func TestView_PanelFloatsOverBackdrop(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	out := m.RenderToString()
	if !strings.Contains(out, "consulta") {
		t.Error("the panel header should show the assistant name")
	}
	if !strings.Contains(out, "░") {
		t.Error("the backdrop shading should surround the panel")
	}
}

func TestView_MinimizedShowsLauncher(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m.minimize()

	out := m.RenderToString()
	if !strings.Contains(out, "consulta") {
		t.Error("the launcher bubble should carry the panel name")
	}
	if strings.Contains(out, "[-]") {
		t.Error("the window controls belong to the full panel, not the launcher")
	}
}

func TestView_UnreadBadgeCaps(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m.unread = 12
	m.minimize()

	out := m.RenderToString()
	if !strings.Contains(out, "9+") {
		t.Error("the badge should cap at 9+")
	}
	if strings.Contains(out, " 12 ") {
		t.Error("the raw count should not leak past the cap")
	}
}

func TestView_ClosedShowsReopenHint(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m.closePanel()

	out := m.RenderToString()
	if !strings.Contains(out, "pulsa o para abrir") {
		t.Error("a closed panel should leave the reopen hint")
	}
	if strings.Contains(out, "[-]") {
		t.Error("the panel surface should be gone while closed")
	}
}

func TestView_ModalReplacesComposite(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.CtrlS)

	out := m.RenderToString()
	if !strings.Contains(out, "Configuración") {
		t.Error("the settings modal should render its title")
	}
	if strings.Contains(out, "░") {
		t.Error("the modal view replaces the backdrop")
	}
}

func TestView_TerminalModes(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	v := m.View()
	if !v.AltScreen {
		t.Error("the panel runs on the alternate screen")
	}
	if !v.ReportFocus {
		t.Error("focus reporting drives the notification gating")
	}
	if v.MouseMode != tea.MouseModeCellMotion {
		t.Errorf("MouseMode = %v, want CellMotion at rest", v.MouseMode)
	}

	m = leftClick(m, 40, 18) // start a header drag
	if got := m.View().MouseMode; got != tea.MouseModeAllMotion {
		t.Errorf("MouseMode = %v, want AllMotion during a gesture", got)
	}

	m = mouseRelease(m, 40, 18)
	if got := m.View().MouseMode; got != tea.MouseModeCellMotion {
		t.Errorf("MouseMode = %v, want CellMotion after the gesture", got)
	}
}

func TestView_FooterFollowsState(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	out := m.RenderToString()
	if !strings.Contains(out, "sugerencias") {
		t.Error("a fresh panel should hint at the starter suggestions")
	}

	m = startConsultation(m, "¿Cuándo inicia la matrícula?")
	out = m.RenderToString()
	if !strings.Contains(out, "detener") {
		t.Error("the footer should offer esc to stop while sending")
	}

	m = simulateChatReply(m, pendingID(m), "En marzo, según el cronograma.", 1)
	m = sendKey(m, keys.CtrlUp)
	out = m.RenderToString()
	if !strings.Contains(out, "valorar") {
		t.Error("the footer should list the rating keys in review mode")
	}
}
