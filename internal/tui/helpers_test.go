package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/saarzint/candle-recall/internal/mock"
	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/models"
)

var testNow = time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

type tuiMocks struct {
	auth    *mock.MockClientAuthService
	account *mock.MockClientAccountService
	reports *mock.MockClientReportService
	job     *mock.MockClientSessionJob
}

func newTestApp(t *testing.T) (*appModel, tuiMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := tuiMocks{
		auth:    mock.NewMockClientAuthService(ctrl),
		account: mock.NewMockClientAccountService(ctrl),
		reports: mock.NewMockClientReportService(ctrl),
		job:     mock.NewMockClientSessionJob(ctrl),
	}
	services := &service.ClientServices{
		AuthService:    mocks.auth,
		AccountService: mocks.account,
		ReportService:  mocks.reports,
		SessionJob:     mocks.job,
	}

	app := newAppModel(context.Background(), services, models.NewAppBuildInfo("1.2.0", "2026-03-01", "abc123"), func() {})
	app.now = func() time.Time { return testNow }
	return app, mocks
}

// signedInApp returns an app showing screen s for a signed-in user.
func signedInApp(t *testing.T, s screen) (*appModel, tuiMocks) {
	t.Helper()
	app, mocks := newTestApp(t)
	app.withSession(models.Session{Email: "trader@example.com", Token: "token"})
	app.profile = models.Profile{Email: "trader@example.com", Username: "@trader", CreatedAt: testNow}
	app.currentScreen = s
	return app, mocks
}

func update(app *appModel, msg tea.Msg) tea.Cmd {
	_, cmd := app.Update(msg)
	return cmd
}

func press(app *appModel, k tea.KeyType) tea.Cmd {
	return update(app, tea.KeyMsg{Type: k})
}

func pressRune(app *appModel, r rune) tea.Cmd {
	return update(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func typeText(app *appModel, s string) {
	for _, r := range s {
		pressRune(app, r)
	}
}

// run executes a command that calls a service and returns its message.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// submitAndDeliver runs the command of a submit and feeds its result back.
func submitAndDeliver(t *testing.T, app *appModel, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	return update(app, run(t, cmd))
}
