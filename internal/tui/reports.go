package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saarzint/candle-recall/models"
)

const allStocksLabel = "All stocks"

// reportsModel is the home screen: the filtered list of the user's reports.
type reportsModel struct {
	app *appModel

	filter  models.ReportFilter
	reports []models.ReportSummary
	tags    []string
	cursor  int

	loading bool
	errMsg  string
	status  string
}

func newReportsModel(app *appModel) *reportsModel {
	return &reportsModel{
		app:    app,
		filter: models.ReportFilter{Period: models.PeriodAll, Sort: models.SortNewest},
	}
}

func (m *reportsModel) enter() tea.Cmd {
	m.status = ""
	return m.load()
}

func (m *reportsModel) load() tea.Cmd {
	m.loading = true
	m.errMsg = ""

	ctx, reports, filter := m.app.ctx, m.app.services.ReportService, m.filter
	return func() tea.Msg {
		list, err := reports.ListReports(ctx, filter)
		if err != nil {
			return reportsLoadedMsg{err: err}
		}
		tags, err := reports.ListTags(ctx)
		return reportsLoadedMsg{list: list, tags: tags, err: err}
	}
}

func (m *reportsModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case reportsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return nil
		}
		m.reports = msg.list.Reports
		m.tags = msg.tags
		if m.cursor >= len(m.reports) {
			m.cursor = max(len(m.reports)-1, 0)
		}
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.app.quitting = true
			return tea.Quit
		case key.Matches(msg, keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.down):
			if m.cursor < len(m.reports)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.enter):
			if len(m.reports) == 0 {
				return nil
			}
			return m.app.detail.show(m.reports[m.cursor].ID)
		case key.Matches(msg, keys.newItem):
			return m.app.editor.show(nil)
		case key.Matches(msg, keys.tagFilter):
			m.filter.Tag = nextTag(m.tags, m.filter.Tag)
			m.cursor = 0
			return m.load()
		case key.Matches(msg, keys.period):
			m.filter.Period = nextOf(models.Periods, m.filter.Period)
			m.cursor = 0
			return m.load()
		case key.Matches(msg, keys.sort):
			m.filter.Sort = nextOf(models.SortOrders, m.filter.Sort)
			m.cursor = 0
			return m.load()
		case key.Matches(msg, keys.refresh):
			return m.load()
		case key.Matches(msg, keys.account):
			return m.app.goTo(screenAccount)
		case key.Matches(msg, keys.about):
			return m.app.goTo(screenAbout)
		case key.Matches(msg, keys.logout):
			return m.app.cmdSignOut("You have been signed out.")
		}
	}
	return nil
}

// nextTag cycles through "all stocks" followed by every known tag.
func nextTag(tags []string, current string) string {
	if current == "" {
		if len(tags) == 0 {
			return ""
		}
		return tags[0]
	}
	for i, tag := range tags {
		if tag == current {
			if i+1 < len(tags) {
				return tags[i+1]
			}
			return ""
		}
	}
	return ""
}

func nextOf[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func (m *reportsModel) view() string {
	tag := allStocksLabel
	if m.filter.Tag != "" {
		tag = m.filter.Tag
	}

	var b strings.Builder
	if m.app.profile.Email != "" {
		b.WriteString(mutedStyle.Render("Signed in as " + m.app.profile.Email))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n\n",
		labelStyle.Render("Stock:"), tag,
		labelStyle.Render("Period:"), m.filter.Period.Label(),
		labelStyle.Render("Sort:"), m.filter.Sort.Label(),
	)

	switch {
	case m.loading:
		b.WriteString("Loading reports...")
	case len(m.reports) == 0:
		b.WriteString(mutedStyle.Render("No reports yet. Press n to write one."))
	default:
		for i, r := range m.reports {
			line := fmt.Sprintf("%-40s %-12s %s", fitText(r.Title, 40), formatDate(r.CreatedAt), fitText(strings.Join(r.Tags, ", "), 30))
			if i == m.cursor {
				b.WriteString(selectedRowStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
			if r.Description != "" {
				b.WriteString("    " + mutedStyle.Render(fitText(r.Description, 70)))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d report(s)", len(m.reports))))
	}

	return renderPage("REPORTS", b.String(), banner(m.errMsg, m.status),
		"↑/↓: move │ enter: open │ n: new │ t: stock │ p: period │ s: sort │ r: refresh │ a: account │ i: about │ L: sign out │ q: quit")
}
