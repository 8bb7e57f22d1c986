package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/models"
)

// UI is the interactive front end driven by App.
type UI interface {
	// Run blocks until the user quits. session is nil when nobody is
	// signed in.
	Run(ctx context.Context, session *models.Session) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, logger: logger}
}

// Run restores the saved session, if any, and hands control to the UI.
// The session job is stopped on the way out whatever screen the user quit
// from.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.services.SessionJob.Stop()

	var session *models.Session
	restored, err := a.services.AuthService.Restore(ctx)
	switch {
	case err == nil:
		session = &restored
		a.logger.Info().Str("func", "*App.run").Str("email", restored.Email).Msg("session restored")
	case errors.Is(err, service.ErrNotSignedIn):
	default:
		// A broken session store should not lock the user out.
		a.logger.Err(err).Str("func", "*App.run").Msg("error restoring session")
	}

	if err = a.ui.Run(ctx, session); err != nil {
		return fmt.Errorf("client ui error: %w", err)
	}
	return nil
}
