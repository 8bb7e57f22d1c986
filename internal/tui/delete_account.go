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

const msgAccountDeleted = "Your account has been deleted."

// deleteAccountModel first mails a confirmation code, then removes the
// account once the code and the password are entered.
type deleteAccountModel struct {
	app  *appModel
	form *form

	codeSent  bool
	sentTo    string
	countdown countdown

	errMsg  string
	status  string
	waiting bool
}

func newDeleteAccountModel(app *appModel) *deleteAccountModel {
	return &deleteAccountModel{
		app: app,
		form: newForm(
			newFormField(validators.FieldCode, "Code", "6 digits", validators.CodeRule()).limit(validators.VerificationCodeLength),
			newFormField(validators.FieldPassword, "Password", "your password", validators.LoginPasswordRule()).masked(),
		),
		countdown: newCountdown(app.clock),
	}
}

func (m *deleteAccountModel) enter() tea.Cmd {
	m.form.reset()
	m.codeSent = false
	m.sentTo = ""
	m.errMsg = ""
	m.status = ""
	m.waiting = false
	m.countdown.start(m.app.clock())
	return nil
}

func (m *deleteAccountModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case countdownTickMsg:
		return m.countdown.update(msg)

	case deletionCodeMsg:
		m.waiting = false
		var cooldown *service.CooldownError
		switch {
		case msg.err == nil:
			m.sentTo = msg.resp.Email
			if m.codeSent {
				m.status = "A new code is on its way."
			}
			return tea.Batch(m.showCodeForm(), m.countdown.start(msg.resp.ResendAfter))
		case errors.As(msg.err, &cooldown):
			// The previous code is still valid.
			return tea.Batch(m.showCodeForm(), m.countdown.startIn(cooldown.RetryAfter))
		}
		m.errMsg = humanizeError(msg.err)
		return nil

	case accountDeletedMsg:
		m.waiting = false
		if msg.err != nil {
			m.errMsg = m.form.failureText(msg.err)
			return nil
		}
		return m.app.endSession(msgAccountDeleted)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m.app.goTo(screenAccount)
		case key.Matches(msg, keys.resend):
			if !m.codeSent || !m.countdown.done() {
				return nil
			}
			return m.requestCode()
		case key.Matches(msg, keys.enter):
			if !m.codeSent {
				return m.requestCode()
			}
			return m.submit()
		case key.Matches(msg, keys.tab) && m.codeSent:
			return m.form.next()
		case key.Matches(msg, keys.backtab) && m.codeSent:
			return m.form.prev()
		}
	}

	if !m.codeSent {
		return nil
	}
	return m.form.update(msg)
}

func (m *deleteAccountModel) showCodeForm() tea.Cmd {
	if m.codeSent {
		return nil
	}
	m.codeSent = true
	return m.form.focusFirst()
}

func (m *deleteAccountModel) requestCode() tea.Cmd {
	if m.waiting {
		return nil
	}
	m.waiting = true
	m.errMsg = ""
	m.status = ""

	ctx, account := m.app.ctx, m.app.services.AccountService
	return func() tea.Msg {
		resp, err := account.RequestDeletionCode(ctx)
		return deletionCodeMsg{resp: resp, err: err}
	}
}

func (m *deleteAccountModel) submit() tea.Cmd {
	if m.waiting {
		return nil
	}
	m.errMsg = ""
	if !m.form.validate() {
		return nil
	}

	m.waiting = true
	req := models.DeleteAccountRequest{
		Code:     strings.TrimSpace(m.form.field(validators.FieldCode).value()),
		Password: m.form.field(validators.FieldPassword).value(),
	}
	ctx, account := m.app.ctx, m.app.services.AccountService
	return func() tea.Msg {
		return accountDeletedMsg{err: account.DeleteAccount(ctx, req)}
	}
}

func (m *deleteAccountModel) view() string {
	var b strings.Builder
	b.WriteString(fieldErrorStyle.Render("Deleting the account removes all of your reports. This cannot be undone."))
	b.WriteString("\n\n")

	if !m.codeSent {
		b.WriteString("We will send a confirmation code to your email.\n\n")
		b.WriteString(dangerButtonStyle.Render("Send Code"))
		return renderPage("DELETE ACCOUNT", b.String(), banner(m.errMsg, m.status), "enter: send code │ esc: cancel")
	}

	sentTo := m.sentTo
	if sentTo == "" {
		sentTo = m.app.profile.Email
	}
	b.WriteString("Enter the code we sent to " + labelStyle.Render(sentTo) + " and your password.\n\n")
	b.WriteString(m.form.view())
	b.WriteString("\n\n")
	if m.waiting {
		b.WriteString(button("Deleting...", false))
	} else {
		b.WriteString(dangerButtonStyle.Render("Delete Account"))
	}
	b.WriteString("  ")
	b.WriteString(button(m.countdown.label("Resend Code"), m.countdown.done() && !m.waiting))

	return renderPage("DELETE ACCOUNT", b.String(), banner(m.errMsg, m.status),
		"tab: next field │ enter: delete │ ctrl+r: resend code │ esc: cancel")
}
