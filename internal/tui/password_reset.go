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

const msgPasswordReset = "Your password has been reset. Sign in with the new password."

func cmdForgotPassword(app *appModel, email string) tea.Cmd {
	ctx, auth := app.ctx, app.services.AuthService
	req := models.ForgotPasswordRequest{Email: email}
	return func() tea.Msg {
		resp, err := auth.ForgotPassword(ctx, req)
		return forgotDoneMsg{resp: resp, err: err}
	}
}

// forgotModel asks for the address that should receive a reset link.
type forgotModel struct {
	app  *appModel
	form *form

	prefill    string
	errMsg     string
	submitting bool
}

func newForgotModel(app *appModel) *forgotModel {
	return &forgotModel{
		app: app,
		form: newForm(
			newFormField(validators.FieldEmail, "Email", "you@example.com", validators.LoginEmailRule()),
		),
	}
}

func (m *forgotModel) enter() tea.Cmd {
	m.form.reset()
	m.form.field(validators.FieldEmail).setValue(m.prefill)
	m.errMsg = ""
	m.submitting = false
	return m.form.focusFirst()
}

func (m *forgotModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case forgotDoneMsg:
		m.submitting = false
		email := strings.TrimSpace(m.form.field(validators.FieldEmail).value())

		var cooldown *service.CooldownError
		switch {
		case msg.err == nil:
			if msg.resp.Email != "" {
				email = msg.resp.Email
			}
			return m.app.resetSent.show(email, m.app.resetSent.countdown.start(msg.resp.ResendAfter))
		case errors.As(msg.err, &cooldown):
			// A link already went out recently.
			return m.app.resetSent.show(email, m.app.resetSent.countdown.startIn(cooldown.RetryAfter))
		}
		m.errMsg = m.form.failureText(msg.err)
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m.app.goTo(screenLogin)
		case key.Matches(msg, keys.haveToken):
			return m.app.goTo(screenReset)
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return nil
			}
			m.errMsg = ""
			if !m.form.validate() {
				return nil
			}
			m.submitting = true
			return cmdForgotPassword(m.app, strings.TrimSpace(m.form.field(validators.FieldEmail).value()))
		}
	}

	return m.form.update(msg)
}

func (m *forgotModel) view() string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render("Enter the email of your account and we will send you a link to reset the password."))
	b.WriteString("\n\n")
	b.WriteString(m.form.view())
	b.WriteString("\n\n")
	if m.submitting {
		b.WriteString(button("Sending...", false))
	} else {
		b.WriteString(button("Send Reset Link", true))
	}
	return renderPage("FORGOT PASSWORD", b.String(), banner(m.errMsg, ""),
		"esc: back │ enter: send │ ctrl+t: I have a reset token")
}

// resetSentModel confirms that a link was sent and offers a resend once
// the cooldown is over.
type resetSentModel struct {
	app *appModel

	email     string
	countdown countdown
	errMsg    string
	status    string
	sending   bool
}

func newResetSentModel(app *appModel) *resetSentModel {
	return &resetSentModel{app: app, countdown: newCountdown(app.clock)}
}

// show switches to the screen for email. tick is the command of a
// countdown the caller has just started.
func (m *resetSentModel) show(email string, tick tea.Cmd) tea.Cmd {
	m.email = email
	return tea.Batch(m.app.goTo(screenResetSent), tick)
}

func (m *resetSentModel) enter() tea.Cmd {
	m.errMsg = ""
	m.status = ""
	m.sending = false
	return nil
}

func (m *resetSentModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case countdownTickMsg:
		return m.countdown.update(msg)

	case forgotDoneMsg:
		m.sending = false
		var cooldown *service.CooldownError
		switch {
		case msg.err == nil:
			m.status = "A new link is on its way."
			return m.countdown.start(msg.resp.ResendAfter)
		case errors.As(msg.err, &cooldown):
			return m.countdown.startIn(cooldown.RetryAfter)
		}
		m.errMsg = humanizeError(msg.err)
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m.app.goTo(screenLogin)
		case key.Matches(msg, keys.haveToken), key.Matches(msg, keys.enter):
			return m.app.goTo(screenReset)
		case key.Matches(msg, keys.resend):
			if m.sending || !m.countdown.done() {
				return nil
			}
			m.sending = true
			m.errMsg = ""
			m.status = ""
			return cmdForgotPassword(m.app, m.email)
		}
	}
	return nil
}

func (m *resetSentModel) view() string {
	var b strings.Builder
	b.WriteString("We sent a password reset link to ")
	b.WriteString(labelStyle.Render(m.email))
	b.WriteString(".\n")
	b.WriteString(mutedStyle.Render("Open the link, or paste the token from it on the next screen."))
	b.WriteString("\n\n")
	b.WriteString(button(m.countdown.label("Resend Link"), m.countdown.done() && !m.sending))

	return renderPage("CHECK YOUR EMAIL", b.String(), banner(m.errMsg, m.status),
		"enter: enter token │ ctrl+r: resend │ esc: back to sign in")
}

// resetModel sets a new password with the token from the reset link.
type resetModel struct {
	app  *appModel
	form *form

	errMsg     string
	submitting bool
}

func newResetModel(app *appModel) *resetModel {
	m := &resetModel{app: app}
	password := newFormField(validators.FieldPassword, "New password", "at least 8 characters", validators.NewPasswordRule()).masked()
	m.form = newForm(
		newFormField(validators.FieldToken, "Reset token", "token from the link", validators.Required()),
		password,
		newFormField(validators.FieldConfirmPassword, "Confirm password", "repeat the password",
			validators.ConfirmPasswordRule(password.value)).masked(),
	)
	return m
}

func (m *resetModel) enter() tea.Cmd {
	m.form.reset()
	m.errMsg = ""
	m.submitting = false
	return m.form.focusFirst()
}

func (m *resetModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case resetDoneMsg:
		m.submitting = false
		if msg.err == nil {
			cmd := m.app.goTo(screenLogin)
			m.app.login.notice = msgPasswordReset
			return cmd
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

func (m *resetModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.errMsg = ""
	if !m.form.validate() {
		return nil
	}

	m.submitting = true
	req := models.ResetPasswordRequest{
		Token:           strings.TrimSpace(m.form.field(validators.FieldToken).value()),
		Password:        m.form.field(validators.FieldPassword).value(),
		ConfirmPassword: m.form.field(validators.FieldConfirmPassword).value(),
	}
	ctx, auth := m.app.ctx, m.app.services.AuthService
	return func() tea.Msg {
		return resetDoneMsg{err: auth.ResetPassword(ctx, req)}
	}
}

func (m *resetModel) view() string {
	body := m.form.view() + "\n\n"
	if m.submitting {
		body += button("Saving...", false)
	} else {
		body += button("Reset Password", true)
	}
	return renderPage("RESET PASSWORD", body, banner(m.errMsg, ""), "esc: back │ tab: next field │ enter: reset")
}
