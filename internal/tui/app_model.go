package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/models"
)

// sessionCheckInterval is how often the session job asks the server
// whether the token is still accepted.
const sessionCheckInterval = time.Minute

const statusTimeout = 3 * time.Second

type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenForgot
	screenResetSent
	screenReset
	screenReports
	screenDetail
	screenEditor
	screenAccount
	screenUsername
	screenPassword
	screenEmail
	screenDeleteAccount
	screenAbout
)

// page is one screen of the client.
type page interface {
	// enter prepares the screen each time it is shown.
	enter() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view() string
}

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	build     models.AppBuildInfo
	now       func() time.Time
	onExpired func()

	currentScreen screen
	signedIn      bool
	profile       models.Profile
	quitting      bool
	width         int
	statusID      int

	login         *loginModel
	register      *registerModel
	forgot        *forgotModel
	resetSent     *resetSentModel
	reset         *resetModel
	reports       *reportsModel
	detail        *detailModel
	editor        *editorModel
	account       *accountModel
	username      *usernameModel
	password      *passwordModel
	email         *emailModel
	deleteAccount *deleteAccountModel
	about         *aboutModel
}

func newAppModel(ctx context.Context, services *service.ClientServices, build models.AppBuildInfo, onExpired func()) *appModel {
	m := &appModel{
		ctx:       ctx,
		services:  services,
		build:     build,
		now:       time.Now,
		onExpired: onExpired,
	}

	m.login = newLoginModel(m)
	m.register = newRegisterModel(m)
	m.forgot = newForgotModel(m)
	m.resetSent = newResetSentModel(m)
	m.reset = newResetModel(m)
	m.reports = newReportsModel(m)
	m.detail = newDetailModel(m)
	m.editor = newEditorModel(m)
	m.account = newAccountModel(m)
	m.username = newUsernameModel(m)
	m.password = newPasswordModel(m)
	m.email = newEmailModel(m)
	m.deleteAccount = newDeleteAccountModel(m)
	m.about = newAboutModel(m)

	return m
}

// withSession starts the model on the reports screen for a restored session.
func (m *appModel) withSession(session models.Session) *appModel {
	m.signedIn = true
	m.profile = models.Profile{Email: session.Email}
	m.currentScreen = screenReports
	return m
}

func (m *appModel) Init() tea.Cmd {
	if m.signedIn {
		return tea.Batch(m.cmdStartSessionJob(), m.page().enter())
	}
	return m.page().enter()
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

	case sessionExpiredMsg:
		if !m.signedIn {
			return m, nil
		}
		return m, m.cmdSignOut(humanizeError(service.ErrSessionExpired))

	case signedOutMsg:
		notice := msg.notice
		if msg.err != nil && notice == "" {
			notice = "Signed out, but the saved session could not be removed."
		}
		return m, m.endSession(notice)

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.setStatus("")
		}
		return m, nil
	}

	if r, ok := msg.(resultMsg); ok && m.signedIn && errors.Is(r.failure(), service.ErrSessionExpired) {
		return m, m.cmdSignOut(humanizeError(service.ErrSessionExpired))
	}

	return m, m.page().update(msg)
}

func (m *appModel) View() string {
	if m.quitting {
		return ""
	}
	return m.page().view()
}

func (m *appModel) page() page {
	switch m.currentScreen {
	case screenRegister:
		return m.register
	case screenForgot:
		return m.forgot
	case screenResetSent:
		return m.resetSent
	case screenReset:
		return m.reset
	case screenReports:
		return m.reports
	case screenDetail:
		return m.detail
	case screenEditor:
		return m.editor
	case screenAccount:
		return m.account
	case screenUsername:
		return m.username
	case screenPassword:
		return m.password
	case screenEmail:
		return m.email
	case screenDeleteAccount:
		return m.deleteAccount
	case screenAbout:
		return m.about
	default:
		return m.login
	}
}

// clock reads m.now at call time so tests can swap it after construction.
func (m *appModel) clock() time.Time {
	return m.now()
}

func (m *appModel) goTo(s screen) tea.Cmd {
	m.currentScreen = s
	return m.page().enter()
}

// signIn switches to the reports screen and starts watching the session.
func (m *appModel) signIn(profile models.Profile) tea.Cmd {
	m.signedIn = true
	m.profile = profile
	return tea.Batch(m.cmdStartSessionJob(), m.goTo(screenReports))
}

// endSession drops the signed-in state and shows the sign-in screen with
// notice above the form.
func (m *appModel) endSession(notice string) tea.Cmd {
	m.signedIn = false
	m.profile = models.Profile{}

	job := m.services.SessionJob
	cmd := m.goTo(screenLogin)
	m.login.notice = notice

	return tea.Batch(func() tea.Msg {
		job.Stop()
		return nil
	}, cmd)
}

func (m *appModel) cmdStartSessionJob() tea.Cmd {
	ctx, job, onExpired := m.ctx, m.services.SessionJob, m.onExpired
	return func() tea.Msg {
		job.Start(ctx, sessionCheckInterval, onExpired)
		return nil
	}
}

func (m *appModel) cmdSignOut(notice string) tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		return signedOutMsg{notice: notice, err: auth.Logout(ctx)}
	}
}

// flash shows a status line for a few seconds.
func (m *appModel) flash(status string) tea.Cmd {
	m.setStatus(status)
	m.statusID++
	id := m.statusID
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m *appModel) setStatus(status string) {
	switch m.currentScreen {
	case screenReports:
		m.reports.status = status
	case screenDetail:
		m.detail.status = status
	case screenAccount:
		m.account.status = status
	case screenLogin:
		m.login.notice = status
	}
}
