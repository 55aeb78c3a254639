package app

import (
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/jvalva/consulta/internal/api"
	"github.com/jvalva/consulta/internal/config"
	"github.com/jvalva/consulta/internal/keys"
)

// testConfig creates a minimal config for testing. Saves go to /dev/null so
// tests never touch the real config file.
func testConfig() *config.Config {
	cfg := &config.Config{
		ServerURL:            config.DefaultServerURL,
		Theme:                config.DefaultTheme,
		NotificationsEnabled: false, // keep desktop notifications quiet in tests
		ClientID:             "test-client",
	}
	cfg.SetFilePath(os.DevNull)
	return cfg
}

// testModel creates a test Model with the given config.
func testModel(cfg *config.Config) *Model {
	return New(cfg, "0.0.0-test")
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(cfg *config.Config, width, height int) *Model {
	m := testModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.AltEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.CtrlR:
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.CtrlUp:
		return tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModCtrl}
	case keys.CtrlDown:
		return tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if runes := []rune(key); len(runes) == 1 {
			return tea.KeyPressMsg{Code: runes[0], Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// =============================================================================
// Mouse Helpers
// =============================================================================

// leftClick sends a left button press at terminal coordinates.
func leftClick(m *Model, x, y int) *Model {
	result, _ := m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	return result.(*Model)
}

// mouseMotion sends a pointer motion event at terminal coordinates.
func mouseMotion(m *Model, x, y int) *Model {
	result, _ := m.Update(tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft})
	return result.(*Model)
}

// mouseRelease sends a left button release at terminal coordinates.
func mouseRelease(m *Model, x, y int) *Model {
	result, _ := m.Update(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft})
	return result.(*Model)
}

// wheelUp sends a scroll wheel up event at terminal coordinates.
func wheelUp(m *Model, x, y int) *Model {
	result, _ := m.Update(tea.MouseWheelMsg{X: x, Y: y, Button: tea.MouseWheelUp})
	return result.(*Model)
}

// =============================================================================
// Exchange Simulation Helpers
// =============================================================================

// startConsultation puts text in the composer and presses enter, leaving the
// model in the sending state. The network command is never executed.
func startConsultation(m *Model, text string) *Model {
	m.chat.SetInput(text)
	return sendKey(m, keys.Enter)
}

// pendingID returns the thread ID of the user entry awaiting a reply.
func pendingID(m *Model) string {
	if m.pending == nil {
		return ""
	}
	return m.pending.userID
}

// simulateChatReply injects a successful ChatResultMsg into the model.
// This bypasses the HTTP client and directly tests the message handler.
func simulateChatReply(m *Model, userID, response string, row int) *Model {
	msg := ChatResultMsg{
		UserID: userID,
		Resp: &api.ChatResponse{
			Success:   true,
			Response:  response,
			QueryType: "general",
			RowNumber: row,
		},
	}
	result, _ := m.Update(msg)
	return result.(*Model)
}

// simulateChatError injects a failed ChatResultMsg into the model.
func simulateChatError(m *Model, userID string, err error) *Model {
	result, _ := m.Update(ChatResultMsg{UserID: userID, Err: err})
	return result.(*Model)
}

// seedExchange runs a full question/answer round trip through the message
// handlers and returns the model with a two-entry thread.
func seedExchange(m *Model, question, answer string, row int) *Model {
	m = startConsultation(m, question)
	return simulateChatReply(m, pendingID(m), answer, row)
}
