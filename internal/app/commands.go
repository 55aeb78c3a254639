package app

import (
	"context"
	"encoding/json"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/jvalva/consulta/internal/clipboard"
	"github.com/jvalva/consulta/internal/logger"
	"github.com/jvalva/consulta/internal/ui"
)

// checkHealthCmd probes the backend and reports its authentication state.
func (m *Model) checkHealthCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.Health(context.Background())
		return HealthCheckedMsg{Resp: resp, Err: err}
	}
}

// fetchAuthURLCmd fetches the Google authorization URL for the hand-off
// notice. The probe client enforces the timeout.
func (m *Model) fetchAuthURLCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.AuthURL(context.Background())
		if err != nil {
			return AuthURLFetchedMsg{Err: err}
		}
		return AuthURLFetchedMsg{URL: resp.AuthURL}
	}
}

// fetchDocumentsCmd lists the knowledge base behind the assistant.
func (m *Model) fetchDocumentsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.Documents(context.Background())
		if err != nil {
			return DocumentsFetchedMsg{Err: err}
		}
		return DocumentsFetchedMsg{Documents: resp.Documents}
	}
}

// fetchStatsCmd gathers the server info sections for the overlay.
func (m *Model) fetchStatsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()

		stats, err := client.Statistics(ctx)
		if err != nil {
			return StatsFetchedMsg{Err: err}
		}
		sections := []ui.StatsSection{
			{Title: "Estadísticas de consultas", Content: prettyJSON(stats.Statistics)},
		}

		// The health payload is a nice-to-have second page
		if health, err := client.Health(ctx); err == nil {
			sections = append(sections, ui.StatsSection{Title: "Estado del servidor", Content: prettyJSON(health)})
		}
		return StatsFetchedMsg{Sections: sections}
	}
}

// refreshCacheCmd asks the backend to re-read its sheet and document caches.
func (m *Model) refreshCacheCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.RefreshCache(context.Background())
		if err != nil {
			return CacheRefreshedMsg{Err: err}
		}
		return CacheRefreshedMsg{Message: resp.Message}
	}
}

// copyToClipboardCmd writes text through OSC 52 and the native clipboard
// fallback. The fallback reports an error message if it fails.
func copyToClipboardCmd(text string) tea.Cmd {
	return tea.Batch(
		tea.SetClipboard(text),
		func() tea.Msg {
			if err := clipboard.WriteText(text); err != nil {
				logger.Warn("App: Clipboard write failed: %v", err)
				return ui.ClipboardErrorMsg{Error: err}
			}
			return nil
		},
	)
}

// prettyJSON renders a payload as indented JSON for the overlay.
func prettyJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
