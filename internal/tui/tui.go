// Package tui is the terminal interface of the Candle Recall client, built
// on Bubble Tea. A single program hosts every screen: sign in, sign up, the
// password reset flow, the report list, detail and editor, and the account
// settings.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/models"
)

type TUI struct {
	services *service.ClientServices
	build    models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.ClientServices, build models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, build: build, logger: logger}
}

// Run shows the interface until the user quits. With a restored session
// the report list opens directly, otherwise the sign-in screen does.
func (t *TUI) Run(ctx context.Context, session *models.Session) error {
	var program *tea.Program
	onExpired := func() {
		t.logger.Info().Str("func", "*TUI.Run").Msg("session expired")
		program.Send(sessionExpiredMsg{})
	}

	model := newAppModel(ctx, t.services, t.build, onExpired)
	if session != nil {
		model.withSession(*session)
	}

	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running terminal ui: %w", err)
	}
	return nil
}
