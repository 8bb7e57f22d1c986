// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

// accountModel shows the profile and leads to the account settings.
type accountModel struct {
	app *appModel

	loading bool
	errMsg  string
	status  string
}

func newAccountModel(app *appModel) *accountModel {
	return &accountModel{app: app}
}

func (m *accountModel) enter() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.status = ""

	ctx, account := m.app.ctx, m.app.services.AccountService
	return func() tea.Msg {
		profile, err := account.Profile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m *accountModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return nil
		}
		m.app.profile = msg.profile
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
			return m.app.goTo(screenReports)
		case key.Matches(msg, keys.username):
			return m.app.goTo(screenUsername)
		case key.Matches(msg, keys.password):
			return m.app.goTo(screenPassword)
		case key.Matches(msg, keys.email):
			return m.app.goTo(screenEmail)
		case key.Matches(msg, keys.deleteAccount):
			return m.app.goTo(screenDeleteAccount)
		}
	}
	return nil
}

func (m *accountModel) view() string {
	p := m.app.profile

	var b strings.Builder
	if m.loading && p.Email == "" {
		b.WriteString("Loading profile...")
	} else {
		rows := [][2]string{
			{"Email", p.Email},
			{"Username", p.Username},
			{"Member since", formatDate(p.CreatedAt)},
		}
		for _, row := range rows {
			value := row[1]
			if value == "" {
				value = "-"
			}
			b.WriteString(labelStyle.Render(padRight(row[0], 14)))
			b.WriteString(value)
			b.WriteString("\n")
		}
	}

	return renderPage("ACCOUNT", b.String(), banner(m.errMsg, m.status),
		"u: change username │ p: change password │ e: change email │ D: delete account │ esc: back")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// usernameModel renames the account handle.
type usernameModel struct {
	app  *appModel
	form *form

	errMsg     string
	submitting bool
}

func newUsernameModel(app *appModel) *usernameModel {
	return &usernameModel{
		app: app,
		form: newForm(
			newFormField(validators.FieldUsername, "Username", "@handle", validators.UsernameRule()).limit(32),
		),
	}
}

func (m *usernameModel) enter() tea.Cmd {
	m.form.reset()
	m.form.field(validators.FieldUsername).setValue(m.app.profile.Username)
	m.errMsg = ""
	m.submitting = false
	return m.form.focusFirst()
}

func (m *usernameModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case usernameChangedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = m.form.failureText(msg.err)
			return nil
		}
		m.app.profile = msg.profile
		return backToAccount(m.app, "Username updated.")

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m.app.goTo(screenAccount)
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return nil
			}
			m.errMsg = ""
			if !m.form.validate() {
				return nil
			}
			m.submitting = true
			req := models.UsernameChangeRequest{Username: strings.TrimSpace(m.form.field(validators.FieldUsername).value())}
			ctx, account := m.app.ctx, m.app.services.AccountService
			return func() tea.Msg {
				profile, err := account.ChangeUsername(ctx, req)
				return usernameChangedMsg{profile: profile, err: err}
			}
		}
	}
	return m.form.update(msg)
}

func (m *usernameModel) view() string {
	body := m.form.view() + "\n\n" + button("Save", !m.submitting)
	return renderPage("CHANGE USERNAME", body, banner(m.errMsg, ""), "enter: save │ esc: cancel")
}

// passwordModel changes the password of the signed-in user.
type passwordModel struct {
	app  *appModel
	form *form

	errMsg     string
	submitting bool
}

func newPasswordModel(app *appModel) *passwordModel {
	m := &passwordModel{app: app}
	newPassword := newFormField(validators.FieldNewPassword, "New password", "at least 8 characters", validators.NewPasswordRule()).masked()
	m.form = newForm(
		newFormField(validators.FieldCurrentPassword, "Current password", "current password", validators.Required()).masked(),
		newPassword,
		newFormField(validators.FieldConfirmPassword, "Confirm new password", "repeat the new password",
			validators.ConfirmPasswordRule(newPassword.value)).masked(),
	)
	return m
}

func (m *passwordModel) enter() tea.Cmd {
	m.form.reset()
	m.errMsg = ""
	m.submitting = false
	return m.form.focusFirst()
}

func (m *passwordModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case passwordChangedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = m.form.failureText(msg.err)
			return nil
		}
		return backToAccount(m.app, "Password changed.")

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m.app.goTo(screenAccount)
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

func (m *passwordModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.errMsg = ""
	if !m.form.validate() {
		return nil
	}

	m.submitting = true
	req := models.PasswordChangeRequest{
		CurrentPassword: m.form.field(validators.FieldCurrentPassword).value(),
		NewPassword:     m.form.field(validators.FieldNewPassword).value(),
		ConfirmPassword: m.form.field(validators.FieldConfirmPassword).value(),
	}
	ctx, account := m.app.ctx, m.app.services.AccountService
	return func() tea.Msg {
		return passwordChangedMsg{err: account.ChangePassword(ctx, req)}
	}
}

func (m *passwordModel) view() string {
	body := m.form.view() + "\n\n" + button("Change Password", !m.submitting)
	return renderPage("CHANGE PASSWORD", body, banner(m.errMsg, ""), "tab: next field │ enter: save │ esc: cancel")
}

func backToAccount(app *appModel, status string) tea.Cmd {
	cmd := app.goTo(screenAccount)
	return tea.Batch(cmd, app.flash(status))
}
