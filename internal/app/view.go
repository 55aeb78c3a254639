package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/jvalva/consulta/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components.
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.panel.SetViewport(m.width, m.height)
	rect := m.panel.Rect()

	inner := ctx.InnerWidth(rect.Width)
	m.header.SetWidth(inner)
	m.footer.SetWidth(inner)
	m.chat.SetSize(inner, ctx.InnerHeight(rect.Height)-ui.HeaderHeight-ui.FooterHeight)
	m.modal.SetSize(m.width, m.height)
}

// View renders the whole terminal: the shaded backdrop with the floating
// panel or launcher bubble composited on top, or a centered modal.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.ReportFocus = true
	// Cell motion covers clicks and wheel; drags track better with every
	// motion event reported.
	if m.panel.InGesture() {
		v.MouseMode = tea.MouseModeAllMotion
	} else {
		v.MouseMode = tea.MouseModeCellMotion
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current layout as a plain string.
// This is useful for tests.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Cargando..."
	}
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}
	return m.composite()
}

// composite paints the backdrop and overlays the panel surface at its
// rectangle through a screen buffer.
func (m *Model) composite() string {
	m.footer.SetContext(
		m.state == StateSending,
		m.chat.IsEditing(),
		m.chat.IsSelecting(),
		m.chat.HasMessages(),
		m.kittyKeyboard,
	)

	area := uv.Rect(0, 0, m.width, m.height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(m.renderBackdrop()).Draw(scr, area)

	if m.closed {
		// Leave a corner hint so the panel isn't lost for good
		hint := ui.FooterDescStyle.Render("consulta: pulsa o para abrir")
		if hw := lipgloss.Width(hint); hw+2 <= m.width {
			uv.NewStyledString(hint).Draw(scr, uv.Rect(m.width-hw-2, m.height-1, hw, 1))
		}
		return scr.Render()
	}

	r := m.panel.EffectiveRect()
	var surface string
	if m.panel.Minimized() {
		surface = m.launcher.View()
	} else {
		surface = m.renderPanel()
	}
	uv.NewStyledString(surface).Draw(scr, uv.Rect(r.Left, r.Top, r.Width, r.Height))

	return scr.Render()
}

// renderBackdrop shades the terminal behind the floating panel.
func (m *Model) renderBackdrop() string {
	row := ui.BackdropStyle.Render(strings.Repeat("░", m.width))
	rows := make([]string, m.height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// renderPanel renders the full panel box: header, conversation, footer.
func (m *Model) renderPanel() string {
	style := ui.PanelStyle
	if m.panel.InGesture() {
		style = ui.PanelFocusedStyle
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.chat.View(),
		m.footer.View(),
	)
	return style.Render(content)
}
