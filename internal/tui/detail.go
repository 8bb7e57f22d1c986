package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

const markdownWidth = 80

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// detailModel shows one report rendered as markdown, and manages its tags.
type detailModel struct {
	app *appModel

	reportID int64
	report   models.Report
	rendered string
	loaded   bool

	tagCursor     int
	addingTag     bool
	tagInput      *formField
	confirmDelete bool

	loading bool
	errMsg  string
	status  string
}

func newDetailModel(app *appModel) *detailModel {
	m := &detailModel{app: app}
	m.tagInput = newFormField(validators.FieldTag, "New tag", "e.g. AAPL",
		validators.TagRule(func() []string { return m.report.Tags })).limit(validators.MaxTagLength)
	return m
}

func (m *detailModel) show(reportID int64) tea.Cmd {
	m.reportID = reportID
	return m.app.goTo(screenDetail)
}

func (m *detailModel) enter() tea.Cmd {
	m.loaded = false
	m.loading = true
	m.addingTag = false
	m.confirmDelete = false
	m.tagCursor = 0
	m.errMsg = ""
	m.status = ""
	m.tagInput.reset()

	ctx, reports, id := m.app.ctx, m.app.services.ReportService, m.reportID
	return func() tea.Msg {
		report, err := reports.GetReport(ctx, id)
		return reportLoadedMsg{report: report, err: err}
	}
}

func (m *detailModel) setReport(report models.Report) {
	m.report = report
	m.loaded = true
	m.rendered = renderMarkdown(report.Content)
	if m.tagCursor >= len(report.Tags) {
		m.tagCursor = max(len(report.Tags)-1, 0)
	}
}

func renderMarkdown(content string) string {
	if strings.TrimSpace(content) == "" {
		return mutedStyle.Render("This report is empty.")
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("light"),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

func (m *detailModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return nil
		}
		m.setReport(msg.report)
		return nil

	case tagChangedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = newForm(m.tagInput).failureText(msg.err)
			return nil
		}
		m.addingTag = false
		m.tagInput.reset()
		m.setReport(msg.report)
		return nil

	case reportDeletedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return nil
		}
		cmd := m.app.goTo(screenReports)
		return tea.Batch(cmd, m.app.flash("Report deleted."))

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Could not copy to the clipboard: " + msg.err.Error()
			return nil
		}
		return m.app.flash("Copied to clipboard.")

	case tea.KeyMsg:
		if m.addingTag {
			return m.updateTagInput(msg)
		}
		if m.confirmDelete {
			switch {
			case key.Matches(msg, keys.yes):
				m.confirmDelete = false
				m.loading = true
				return m.cmdDelete()
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.confirmDelete = false
			}
			return nil
		}
		return m.updateKeys(msg)
	}
	return nil
}

func (m *detailModel) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		return m.app.goTo(screenReports)
	}
	if !m.loaded {
		return nil
	}

	switch {
	case key.Matches(msg, keys.edit):
		report := m.report
		return m.app.editor.show(&report)
	case key.Matches(msg, keys.delete):
		m.confirmDelete = true
	case key.Matches(msg, keys.copy):
		content := m.report.Content
		return func() tea.Msg {
			return copiedMsg{err: copyToClipboard(content)}
		}
	case key.Matches(msg, keys.left):
		if m.tagCursor > 0 {
			m.tagCursor--
		}
	case key.Matches(msg, keys.right):
		if m.tagCursor < len(m.report.Tags)-1 {
			m.tagCursor++
		}
	case key.Matches(msg, keys.addTag):
		m.addingTag = true
		m.errMsg = ""
		m.tagInput.reset()
		return m.tagInput.focus()
	case key.Matches(msg, keys.removeTag):
		if len(m.report.Tags) == 0 {
			return nil
		}
		m.loading = true
		m.errMsg = ""
		return m.cmdRemoveTag(m.report.Tags[m.tagCursor])
	}
	return nil
}

func (m *detailModel) updateTagInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.addingTag = false
		m.tagInput.reset()
		return nil
	case key.Matches(msg, keys.enter):
		if m.loading {
			return nil
		}
		m.tagInput.field.SetExternalError("")
		if m.tagInput.field.Validate(m.tagInput.value()) != "" {
			return nil
		}
		m.loading = true
		m.errMsg = ""
		return m.cmdAddTag(strings.TrimSpace(m.tagInput.value()))
	}
	return m.tagInput.update(msg)
}

func (m *detailModel) cmdAddTag(tag string) tea.Cmd {
	ctx, reports, id := m.app.ctx, m.app.services.ReportService, m.report.ID
	return func() tea.Msg {
		report, err := reports.AddTag(ctx, id, tag)
		return tagChangedMsg{report: report, err: err}
	}
}

func (m *detailModel) cmdRemoveTag(tag string) tea.Cmd {
	ctx, reports, id := m.app.ctx, m.app.services.ReportService, m.report.ID
	return func() tea.Msg {
		report, err := reports.RemoveTag(ctx, id, tag)
		return tagChangedMsg{report: report, err: err}
	}
}

func (m *detailModel) cmdDelete() tea.Cmd {
	ctx, reports, id := m.app.ctx, m.app.services.ReportService, m.report.ID
	return func() tea.Msg {
		return reportDeletedMsg{err: reports.DeleteReport(ctx, id)}
	}
}

func (m *detailModel) view() string {
	if !m.loaded {
		body := "Loading report..."
		if !m.loading {
			body = ""
		}
		return renderPage("REPORT", body, banner(m.errMsg, m.status), "esc: back")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(m.report.Title))
	b.WriteString("\n")
	created := "Created " + formatDate(m.report.CreatedAt)
	if !m.report.UpdatedAt.IsZero() && formatDate(m.report.UpdatedAt) != formatDate(m.report.CreatedAt) {
		created += ", updated " + formatDate(m.report.UpdatedAt)
	}
	b.WriteString(mutedStyle.Render(created))
	b.WriteString("\n\n")
	b.WriteString(renderTags(m.report.Tags, m.tagCursor))
	b.WriteString("\n")

	if m.addingTag {
		b.WriteString("\n")
		b.WriteString(m.tagInput.view())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.rendered)

	if m.confirmDelete {
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render("Delete \"" + m.report.Title + "\"? This cannot be undone.\n\n" +
			dangerButtonStyle.Render("y: delete") + "  " + mutedStyle.Render("n: keep")))
	}

	help := "esc: back │ e: edit │ d: delete │ c: copy │ ←/→: select tag │ +: add tag │ x: remove tag"
	if m.addingTag {
		help = "enter: add tag │ esc: cancel"
	}
	return renderPage("REPORT", b.String(), banner(m.errMsg, m.status), help)
}
