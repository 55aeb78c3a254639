package app

import (
	"context"
	"strings"
	"testing"

	"github.com/jvalva/consulta/internal/api"
	"github.com/jvalva/consulta/internal/config"
	"github.com/jvalva/consulta/internal/errors"
	"github.com/jvalva/consulta/internal/keys"
	"github.com/jvalva/consulta/internal/ui"
	"github.com/jvalva/consulta/internal/ui/modals"
)

// ============================================================================
// Server URL validation
// ============================================================================

func TestValidateServerURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"valid http", "http://localhost:5000", ""},
		{"valid https", "https://tramites.iestpjva.edu.pe", ""},
		{"empty", "", "La dirección del servidor no puede estar vacía"},
		{"missing scheme", "localhost:5000", "La dirección del servidor no es válida"},
		{"bad port", "http://localhost:5000x", "La dirección del servidor no es válida"},
		{"no host", "http://", "La dirección del servidor no es válida"},
		{"wrong scheme", "ftp://example.com", "La dirección debe empezar con http:// o https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateServerURL(tt.url); got != tt.want {
				t.Errorf("validateServerURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

// ============================================================================
// Settings modal
// ============================================================================

func TestSettingsModal_OpensPrefilled(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	m = sendKey(m, keys.CtrlS)

	if !m.modal.IsVisible() {
		t.Fatal("ctrl+s should open the settings modal")
	}
	state, ok := m.modal.State.(*modals.SettingsState)
	if !ok {
		t.Fatalf("modal state = %T, want SettingsState", m.modal.State)
	}
	if got := state.GetServerURL(); got != config.DefaultServerURL {
		t.Errorf("prefilled URL = %q, want %q", got, config.DefaultServerURL)
	}
	if got := state.GetSelectedTheme(); got != config.DefaultTheme {
		t.Errorf("prefilled theme = %q, want %q", got, config.DefaultTheme)
	}
	if state.GetNotificationsEnabled() {
		t.Error("notifications should be off per the test config")
	}
}

func TestSettingsModal_EscAbandons(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.CtrlS)

	m = typeText(m, "xyz")
	m = sendKey(m, keys.Escape)

	if m.modal.IsVisible() {
		t.Error("esc should close the settings modal")
	}
	if got := m.config.GetServerURL(); got != config.DefaultServerURL {
		t.Errorf("config URL = %q, want unchanged %q", got, config.DefaultServerURL)
	}
}

func TestSettingsModal_InvalidURLKeepsModalOpen(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.CtrlS)

	// The URL field starts focused with the cursor at the end
	m = typeText(m, "x")
	m = sendKey(m, keys.Enter)

	if !m.modal.IsVisible() {
		t.Fatal("a rejected URL should keep the modal open")
	}
	if got := m.modal.GetError(); got != "La dirección del servidor no es válida" {
		t.Errorf("modal error = %q", got)
	}
	if got := m.config.GetServerURL(); got != config.DefaultServerURL {
		t.Errorf("config URL = %q, want unchanged", got)
	}
}

func TestSettingsModal_SaveAppliesServerURL(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.CtrlS)

	for i := 0; i < len(config.DefaultServerURL); i++ {
		m = sendKey(m, keys.Backspace)
	}
	m = typeText(m, "http://127.0.0.1:8080")
	result, cmd := m.Update(keyPress(keys.Enter))
	m = result.(*Model)

	if m.modal.IsVisible() {
		t.Error("a successful save should close the modal")
	}
	if got := m.config.GetServerURL(); got != "http://127.0.0.1:8080" {
		t.Errorf("config URL = %q, want the new origin", got)
	}
	if got := m.client.BaseURL(); got != "http://127.0.0.1:8080" {
		t.Errorf("client base URL = %q, want the new origin", got)
	}
	if m.header.Status() != ui.StatusUnknown {
		t.Errorf("status = %v, want Unknown until the probe answers", m.header.Status())
	}
	if !m.footer.HasFlash() {
		t.Error("saving should flash a confirmation")
	}
	if cmd == nil {
		t.Error("saving a new origin should fire a probe command")
	}
	// The command performs a network call, so it is not executed here
}

// ============================================================================
// Documents modal
// ============================================================================

func TestDocumentsModal_OpenAndList(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	result, cmd := m.Update(keyPress(keys.CtrlL))
	m = result.(*Model)

	if !m.modal.IsVisible() {
		t.Fatal("ctrl+l should open the documents modal")
	}
	if cmd == nil {
		t.Error("opening the modal should fire the listing fetch")
	}
	state, ok := m.modal.State.(*modals.DocumentsState)
	if !ok {
		t.Fatalf("modal state = %T, want DocumentsState", m.modal.State)
	}
	if state.GetSelectedDocument() != nil {
		t.Error("nothing should be selected while the listing loads")
	}

	result, _ = m.Update(DocumentsFetchedMsg{Documents: []api.Document{
		{Name: "Requisitos de matrícula 2026", ID: "doc-1"},
		{Name: "Tarifario de trámites", ID: "doc-2"},
	}})
	m = result.(*Model)

	doc := state.GetSelectedDocument()
	if doc == nil {
		t.Fatal("the first document should be selected once the listing lands")
	}
	if doc.Name != "Requisitos de matrícula 2026" {
		t.Errorf("selected document = %q", doc.Name)
	}
}

func TestDocumentsModal_EnterCopiesName(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.CtrlL)
	result, _ := m.Update(DocumentsFetchedMsg{Documents: []api.Document{
		{Name: "Cronograma académico", ID: "doc-9"},
	}})
	m = result.(*Model)

	result, cmd := m.Update(keyPress(keys.Enter))
	m = result.(*Model)

	if m.modal.IsVisible() {
		t.Error("enter should close the documents modal")
	}
	if cmd == nil {
		t.Error("enter should fire the clipboard command")
	}
	if !m.footer.HasFlash() {
		t.Error("copying should flash a confirmation")
	}
}

func TestDocumentsModal_FetchErrorShown(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.CtrlL)

	result, _ := m.Update(DocumentsFetchedMsg{Err: errors.RequestFailed("/api/documents", context.DeadlineExceeded)})
	m = result.(*Model)

	state := m.modal.State.(*modals.DocumentsState)
	if !strings.Contains(state.Render(), "No se pudo obtener la lista de documentos") {
		t.Error("the modal should show the load error")
	}
}

func TestDocumentsModal_ResultAfterDismissIgnored(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.CtrlL)
	m = sendKey(m, keys.Escape)

	result, _ := m.Update(DocumentsFetchedMsg{Documents: []api.Document{{Name: "doc", ID: "1"}}})
	m = result.(*Model)

	if m.modal.IsVisible() {
		t.Error("a late listing should not reopen the modal")
	}
}

// ============================================================================
// Help modal
// ============================================================================

func TestHelp_QuestionMarkTypesWhileComposing(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	m = sendKey(m, "?")

	if m.modal.IsVisible() {
		t.Error("? should not open help while the composer is focused")
	}
	if got := m.chat.GetInput(); got != "?" {
		t.Errorf("composer input = %q, want %q", got, "?")
	}
}

func TestHelp_OpensFromTranscript(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.Tab)

	m = sendKey(m, "?")

	if !m.modal.IsVisible() {
		t.Fatal("? should open help with the transcript focused")
	}
	if _, ok := m.modal.State.(*modals.HelpState); !ok {
		t.Fatalf("modal state = %T, want HelpState", m.modal.State)
	}
}

func TestHelp_CloseKeys(t *testing.T) {
	for _, key := range []string{keys.Escape, "q", "?"} {
		t.Run(key, func(t *testing.T) {
			m := testModelWithSize(testConfig(), 100, 40)
			m = sendKey(m, keys.Tab)
			m = sendKey(m, "?")

			m = sendKey(m, key)

			if m.modal.IsVisible() {
				t.Errorf("%q should close the help modal", key)
			}
		})
	}
}

func TestHelp_EnterRunsSelectedShortcut(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)
	m = sendKey(m, keys.Tab)
	m = sendKey(m, "?")

	// The first selectable entry is the focus toggle
	result, cmd := m.Update(keyPress(keys.Enter))
	m = result.(*Model)

	if m.modal.IsVisible() {
		t.Error("enter should close the help modal")
	}
	if cmd == nil {
		t.Fatal("enter should hand back the chosen shortcut")
	}
	msg := cmd()
	triggered, ok := msg.(modals.HelpShortcutTriggeredMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want HelpShortcutTriggeredMsg", msg)
	}
	if triggered.Key != keys.Tab {
		t.Errorf("triggered key = %q, want %q", triggered.Key, keys.Tab)
	}

	result, _ = m.Update(triggered)
	m = result.(*Model)

	if m.focus != FocusComposer {
		t.Errorf("focus = %s, want Composer after running the toggle", m.focus)
	}
}

func TestNormalizeHelpDisplayKey(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{"tab", keys.Tab},
		{"ctrl+↑", keys.CtrlUp},
		{"ctrl+s", keys.CtrlS},
		{"?", "?"},
		{"arrastrar la cabecera", ""},
		{"enter", ""},
	}

	for _, tt := range tests {
		if got := normalizeHelpDisplayKey(tt.display); got != tt.want {
			t.Errorf("normalizeHelpDisplayKey(%q) = %q, want %q", tt.display, got, tt.want)
		}
	}
}
