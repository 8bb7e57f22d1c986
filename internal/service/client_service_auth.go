package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saarzint/candle-recall/internal/adapter"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/internal/utils"
	"github.com/saarzint/candle-recall/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter

	now    func() time.Time
	logger *logger.Logger
}

// NewClientAuthService constructs a ClientAuthService that keeps the session
// in sessions and talks to the server through serverAdapter.
func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, now: time.Now, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Profile, error) {
	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	a.keep(ctx, resp)
	return resp.Profile, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Profile, error) {
	resp, err := a.adapter.Login(ctx, req)
	if errors.Is(err, adapter.ErrUnauthorized) {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	a.keep(ctx, resp)
	return resp.Profile, nil
}

// keep stores the session. Write failures are logged only.
func (a *clientAuthService) keep(ctx context.Context, resp models.AuthResponse) {
	session := models.Session{Email: resp.Profile.Email, Token: resp.Token, SavedAt: a.now().UTC()}
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.keep").Msg("error saving session")
	}
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.LoadSession(ctx)
	switch {
	case errors.Is(err, store.ErrLocalSessionNotFound):
		return models.Session{}, ErrNotSignedIn
	case err != nil:
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	expiresAt, err := utils.ParseExpiryFromJWT(session.Token)
	if err != nil || !a.now().Before(expiresAt) {
		a.logger.Info().Str("func", "*clientAuthService.Restore").Msg("stored session expired")
		if clearErr := a.sessions.ClearSession(ctx); clearErr != nil {
			a.logger.Err(clearErr).Str("func", "*clientAuthService.Restore").Msg("error clearing session")
		}
		return models.Session{}, ErrNotSignedIn
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.sessions.ClearSession(ctx)
}

func (a *clientAuthService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResponse, error) {
	resp, err := a.adapter.ForgotPassword(ctx, req)
	return resp, mapAdapterError(err)
}

func (a *clientAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return mapAdapterError(a.adapter.ResetPassword(ctx, req))
}

func (a *clientAuthService) CheckSession(ctx context.Context) error {
	if a.adapter.Token() == "" {
		return ErrNotSignedIn
	}
	_, err := a.adapter.Profile(ctx)
	return mapAdapterError(err)
}
