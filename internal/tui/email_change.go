package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

// emailModel walks the user through the four steps of an email change:
// password, code sent to the current address, new address, code sent to
// the new address.
type emailModel struct {
	app *appModel

	step      models.EmailChangeStep
	forms     map[models.EmailChangeStep]*form
	target    string
	countdown countdown

	errMsg     string
	status     string
	submitting bool
}

func newEmailModel(app *appModel) *emailModel {
	return &emailModel{
		app: app,
		forms: map[models.EmailChangeStep]*form{
			models.EmailStepPassword: newForm(
				newFormField(validators.FieldPassword, "Password", "your password", validators.LoginPasswordRule()).masked(),
			),
			models.EmailStepCurrentCode: newForm(
				newFormField(validators.FieldCode, "Code", "6 digits", validators.CodeRule()).limit(validators.VerificationCodeLength),
			),
			models.EmailStepNewEmail: newForm(
				newFormField(validators.FieldEmail, "New email", "you@example.com", validators.LoginEmailRule()),
			),
			models.EmailStepNewCode: newForm(
				newFormField(validators.FieldCode, "Code", "6 digits", validators.CodeRule()).limit(validators.VerificationCodeLength),
			),
		},
		countdown: newCountdown(app.clock),
	}
}

func (m *emailModel) enter() tea.Cmd {
	for _, f := range m.forms {
		f.reset()
	}
	m.target = ""
	m.errMsg = ""
	m.status = ""
	m.submitting = false
	m.countdown.start(m.app.clock())
	return m.setStep(models.EmailStepPassword)
}

func (m *emailModel) form() *form {
	return m.forms[m.step]
}

func (m *emailModel) setStep(step models.EmailChangeStep) tea.Cmd {
	if f := m.forms[m.step]; f != nil {
		f.current().blur()
	}
	m.step = step
	m.form().reset()
	return m.form().focusFirst()
}

func (m *emailModel) codeStep() bool {
	return m.step == models.EmailStepCurrentCode || m.step == models.EmailStepNewCode
}

func (m *emailModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case countdownTickMsg:
		return m.countdown.update(msg)

	case emailStepMsg:
		m.submitting = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		if msg.state.TargetEmail != "" {
			m.target = msg.state.TargetEmail
		}
		cmds := []tea.Cmd{m.countdown.start(msg.state.ResendAfter)}
		if msg.state.Step != m.step {
			cmds = append(cmds, m.setStep(msg.state.Step))
		} else {
			m.status = "A new code is on its way."
		}
		return tea.Batch(cmds...)

	case emailChangedMsg:
		m.submitting = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.app.profile = msg.profile
		return backToAccount(m.app, "Email changed to "+msg.profile.Email+".")

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m.app.goTo(screenAccount)
		case key.Matches(msg, keys.resend):
			return m.resend()
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
	}
	return m.form().update(msg)
}

func (m *emailModel) fail(err error) tea.Cmd {
	var cooldown *service.CooldownError
	switch {
	case errors.As(err, &cooldown):
		return m.countdown.startIn(cooldown.RetryAfter)
	case errors.Is(err, service.ErrStepOutOfOrder):
		cmd := m.setStep(models.EmailStepPassword)
		m.errMsg = humanizeError(err)
		return cmd
	}
	m.errMsg = m.form().failureText(err)
	return nil
}

func (m *emailModel) resend() tea.Cmd {
	if !m.codeStep() || m.submitting || !m.countdown.done() {
		return nil
	}
	m.submitting = true
	m.errMsg = ""
	m.status = ""

	ctx, account := m.app.ctx, m.app.services.AccountService
	return func() tea.Msg {
		state, err := account.ResendEmailCode(ctx)
		return emailStepMsg{state: state, err: err}
	}
}

func (m *emailModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.errMsg = ""
	m.status = ""
	if !m.form().validate() {
		return nil
	}
	m.submitting = true

	value := strings.TrimSpace(m.form().current().value())
	ctx, account := m.app.ctx, m.app.services.AccountService

	switch m.step {
	case models.EmailStepPassword:
		req := models.PasswordConfirmRequest{Password: m.form().current().value()}
		return func() tea.Msg {
			state, err := account.StartEmailChange(ctx, req)
			return emailStepMsg{state: state, err: err}
		}
	case models.EmailStepCurrentCode:
		req := models.CodeRequest{Code: value}
		return func() tea.Msg {
			state, err := account.VerifyCurrentEmail(ctx, req)
			return emailStepMsg{state: state, err: err}
		}
	case models.EmailStepNewEmail:
		req := models.NewEmailRequest{Email: value}
		return func() tea.Msg {
			state, err := account.SubmitNewEmail(ctx, req)
			return emailStepMsg{state: state, err: err}
		}
	default:
		req := models.CodeRequest{Code: value}
		return func() tea.Msg {
			profile, err := account.ConfirmNewEmail(ctx, req)
			return emailChangedMsg{profile: profile, err: err}
		}
	}
}

func (m *emailModel) view() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", mutedStyle.Render(fmt.Sprintf("Step %d of 4", m.step)))

	switch m.step {
	case models.EmailStepPassword:
		b.WriteString("Confirm your password to start.")
	case models.EmailStepCurrentCode:
		b.WriteString("Enter the code we sent to " + labelStyle.Render(m.app.profile.Email) + ".")
	case models.EmailStepNewEmail:
		b.WriteString("Enter the address you want to use from now on.")
	case models.EmailStepNewCode:
		b.WriteString("Enter the code we sent to " + labelStyle.Render(m.target) + ".")
	}
	b.WriteString("\n\n")
	b.WriteString(m.form().view())
	b.WriteString("\n\n")
	b.WriteString(button("Continue", !m.submitting))
	if m.codeStep() {
		b.WriteString("  ")
		b.WriteString(button(m.countdown.label("Resend Code"), m.countdown.done() && !m.submitting))
	}

	help := "enter: continue │ esc: cancel"
	if m.codeStep() {
		help = "enter: continue │ ctrl+r: resend code │ esc: cancel"
	}
	return renderPage("CHANGE EMAIL", b.String(), banner(m.errMsg, m.status), help)
}
