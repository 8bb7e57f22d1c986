package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

// editorModel creates a report or edits an existing one. Focus moves over
// the title, the tag list and the markdown body; the body takes enter as a
// newline, so saving is bound to ctrl+s.
type editorModel struct {
	app *appModel

	original *models.Report
	form     *form
	content  textarea.Model
	onBody   bool

	contentErr string
	errMsg     string
	saving     bool
}

func newEditorModel(app *appModel) *editorModel {
	content := textarea.New()
	content.Placeholder = "Write your analysis in markdown..."
	content.SetWidth(markdownWidth)
	content.SetHeight(12)
	content.CharLimit = 0
	content.ShowLineNumbers = false

	return &editorModel{
		app: app,
		form: newForm(
			newFormField(validators.FieldTitle, "Title", "e.g. AAPL breakout above resistance", validators.TitleRule()).
				limit(validators.MaxTitleLength),
			newFormField(validators.FieldTags, "Stocks", "comma separated, e.g. AAPL, MSFT", validators.TagListRule()),
		),
		content: content,
	}
}

// show opens the editor for report, or for a new report when it is nil.
func (m *editorModel) show(report *models.Report) tea.Cmd {
	m.original = report
	return m.app.goTo(screenEditor)
}

func (m *editorModel) enter() tea.Cmd {
	m.form.reset()
	m.content.Reset()
	m.content.Blur()
	m.onBody = false
	m.contentErr = ""
	m.errMsg = ""
	m.saving = false

	if m.original != nil {
		m.form.field(validators.FieldTitle).setValue(m.original.Title)
		m.form.field(validators.FieldTags).setValue(strings.Join(m.original.Tags, ", "))
		m.content.SetValue(m.original.Content)
	}
	return m.form.focusFirst()
}

func (m *editorModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case reportSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.showError(msg.err)
			return nil
		}
		cmd := m.app.detail.show(msg.report.ID)
		return tea.Batch(cmd, m.app.flash("Report saved."))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			if m.original != nil {
				return m.app.detail.show(m.original.ID)
			}
			return m.app.goTo(screenReports)
		case key.Matches(msg, keys.save):
			return m.save()
		case key.Matches(msg, keys.tab):
			return m.moveFocus(1)
		case key.Matches(msg, keys.backtab):
			return m.moveFocus(-1)
		case key.Matches(msg, keys.enter) && !m.onBody:
			return m.moveFocus(1)
		}
	}

	if m.onBody {
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			m.contentErr = ""
		}
		return cmd
	}
	return m.form.update(msg)
}

// moveFocus walks title, tags and body in order.
func (m *editorModel) moveFocus(step int) tea.Cmd {
	last := len(m.form.fields) - 1
	switch {
	case m.onBody && step > 0:
		m.content.Blur()
		m.onBody = false
		return m.form.focusFirst()
	case m.onBody:
		m.content.Blur()
		m.onBody = false
		m.form.focused = last
		return m.form.current().focus()
	case step > 0 && m.form.focused == last, step < 0 && m.form.focused == 0:
		m.form.current().blur()
		m.onBody = true
		return m.content.Focus()
	case step > 0:
		return m.form.next()
	default:
		return m.form.prev()
	}
}

// showError puts the content message under the body and the rest under
// the form fields.
func (m *editorModel) showError(err error) {
	var fieldErrs models.FieldErrors
	if !errors.As(err, &fieldErrs) {
		m.errMsg = humanizeError(err)
		return
	}

	others := models.FieldErrors{}
	for name, msg := range fieldErrs {
		if name == validators.FieldContent {
			m.contentErr = msg
			continue
		}
		others[name] = msg
	}
	m.errMsg, _ = m.form.applyError(others)
}

func (m *editorModel) save() tea.Cmd {
	if m.saving {
		return nil
	}
	m.errMsg = ""
	m.contentErr = ""
	if !m.form.validate() {
		return nil
	}

	m.saving = true
	title := strings.TrimSpace(m.form.field(validators.FieldTitle).value())
	tags := models.NormalizeTags(strings.Split(m.form.field(validators.FieldTags).value(), ","))
	content := m.content.Value()

	ctx, reports := m.app.ctx, m.app.services.ReportService
	if m.original == nil {
		req := models.ReportCreateRequest{Title: title, Content: content, Tags: tags}
		return func() tea.Msg {
			report, err := reports.CreateReport(ctx, req)
			return reportSavedMsg{report: report, err: err}
		}
	}

	id := m.original.ID
	req := models.ReportUpdateRequest{Title: &title, Content: &content, Tags: &tags}
	return func() tea.Msg {
		report, err := reports.UpdateReport(ctx, id, req)
		return reportSavedMsg{report: report, err: err}
	}
}

func (m *editorModel) view() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Report"))
	b.WriteString("\n")
	style := inputStyle
	switch {
	case m.contentErr != "":
		style = invalidInputStyle
	case m.onBody:
		style = focusedInputStyle
	}
	b.WriteString(style.Render(m.content.View()))
	if m.contentErr != "" {
		b.WriteString("\n")
		b.WriteString(fieldErrorStyle.Render(m.contentErr))
	}
	b.WriteString("\n\n")
	if m.saving {
		b.WriteString(button("Saving...", false))
	} else {
		b.WriteString(button("Save", true))
	}

	title := "NEW REPORT"
	if m.original != nil {
		title = "EDIT REPORT"
	}
	return renderPage(title, b.String(), banner(m.errMsg, ""), "tab: next field │ ctrl+s: save │ esc: cancel")
}
