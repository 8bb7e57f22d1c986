// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

// loginModel is the sign-in screen. It is also where the client lands after
// a sign out, an expired session or a password reset, with notice
// explaining why.
type loginModel struct {
	app  *appModel
	form *form

	notice     string
	errMsg     string
	submitting bool
}

func newLoginModel(app *appModel) *loginModel {
	return &loginModel{
		app: app,
		form: newForm(
			newFormField(validators.FieldEmail, "Email", "you@example.com", validators.LoginEmailRule()),
			newFormField(validators.FieldPassword, "Password", "password", validators.LoginPasswordRule()).masked(),
		),
	}
}

func (m *loginModel) enter() tea.Cmd {
	email := m.form.field(validators.FieldEmail).value()
	m.form.reset()
	m.form.field(validators.FieldEmail).setValue(email)
	m.notice = ""
	m.errMsg = ""
	m.submitting = false
	return m.form.focusFirst()
}

func (m *loginModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if msg.err == nil {
			return m.app.signIn(msg.profile)
		}
		if errors.Is(msg.err, service.ErrInvalidCredentials) {
			m.errMsg = humanizeError(msg.err)
			return nil
		}
		m.errMsg = m.form.failureText(msg.err)
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab):
			return m.form.next()
		case key.Matches(msg, keys.backtab):
			return m.form.prev()
		case key.Matches(msg, keys.signup):
			return m.app.goTo(screenRegister)
		case key.Matches(msg, keys.forgot):
			m.app.forgot.prefill = m.form.field(validators.FieldEmail).value()
			return m.app.goTo(screenForgot)
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
	}

	return m.form.update(msg)
}

func (m *loginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.errMsg = ""
	if !m.form.validate() {
		return nil
	}

	m.submitting = true
	req := models.LoginRequest{
		Email:    strings.TrimSpace(m.form.field(validators.FieldEmail).value()),
		Password: m.form.field(validators.FieldPassword).value(),
	}
	ctx, auth := m.app.ctx, m.app.services.AuthService
	return func() tea.Msg {
		profile, err := auth.Login(ctx, req)
		return loginDoneMsg{profile: profile, err: err}
	}
}

func (m *loginModel) view() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.view())
	b.WriteString("\n\n")
	if m.submitting {
		b.WriteString(button("Signing in...", false))
	} else {
		b.WriteString(button("Sign In", true))
	}

	return renderPage("SIGN IN", b.String(), banner(m.errMsg, ""),
		"tab: next field │ enter: sign in │ ctrl+n: create account │ ctrl+f: forgot password")
}
