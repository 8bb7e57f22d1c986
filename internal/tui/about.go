package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saarzint/candle-recall/internal/theme"
)

// aboutModel shows the client build and the colour palette.
type aboutModel struct {
	app *appModel
}

func newAboutModel(app *appModel) *aboutModel {
	return &aboutModel{app: app}
}

func (m *aboutModel) enter() tea.Cmd { return nil }

func (m *aboutModel) update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && (key.Matches(k, keys.esc) || key.Matches(k, keys.quit)) {
		return m.app.goTo(screenReports)
	}
	return nil
}

func (m *aboutModel) view() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Candle Recall"))
	b.WriteString("\n")
	b.WriteString(m.app.build.String())
	b.WriteString("\n\n")

	names := make([]string, 0, len(theme.Palette))
	for name := range theme.Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(theme.Palette[name])).Render("    ")
		b.WriteString(swatch + " " + padRight(name, 24) + mutedStyle.Render(theme.Palette[name]) + "\n")
	}

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "", "esc: back")
}
