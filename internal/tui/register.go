package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

type registerModel struct {
	app  *appModel
	form *form

	errMsg     string
	submitting bool
}

func newRegisterModel(app *appModel) *registerModel {
	m := &registerModel{app: app}
	password := newFormField(validators.FieldPassword, "Password", "at least 8 characters", validators.NewPasswordRule()).masked()
	m.form = newForm(
		newFormField(validators.FieldEmail, "Email", "you@example.com", validators.LoginEmailRule()),
		newFormField(validators.FieldUsername, "Username", "@handle", validators.UsernameRule()).limit(32),
		password,
		newFormField(validators.FieldConfirmPassword, "Confirm password", "repeat the password",
			validators.ConfirmPasswordRule(password.value)).masked(),
	)
	return m
}

func (m *registerModel) enter() tea.Cmd {
	m.form.reset()
	m.errMsg = ""
	m.submitting = false
	return m.form.focusFirst()
}

func (m *registerModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case registerDoneMsg:
		m.submitting = false
		if msg.err == nil {
			return m.app.signIn(msg.profile)
		}
		m.errMsg = m.form.failureText(msg.err)
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m.app.goTo(screenLogin)
		case key.Matches(msg, keys.tab):
			return m.form.next()
		case key.Matches(msg, keys.backtab):
			return m.form.prev()
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
	}

	return m.form.update(msg)
}

func (m *registerModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.errMsg = ""
	if !m.form.validate() {
		return nil
	}

	m.submitting = true
	req := models.RegisterRequest{
		Email:    strings.TrimSpace(m.form.field(validators.FieldEmail).value()),
		Username: strings.TrimSpace(m.form.field(validators.FieldUsername).value()),
		Password: m.form.field(validators.FieldPassword).value(),
	}
	ctx, auth := m.app.ctx, m.app.services.AuthService
	return func() tea.Msg {
		profile, err := auth.Register(ctx, req)
		return registerDoneMsg{profile: profile, err: err}
	}
}

func (m *registerModel) view() string {
	body := m.form.view() + "\n\n"
	if m.submitting {
		body += button("Creating account...", false)
	} else {
		body += button("Create Account", true)
	}
	return renderPage("CREATE ACCOUNT", body, banner(m.errMsg, ""), "esc: back │ tab: next field │ enter: create")
}
