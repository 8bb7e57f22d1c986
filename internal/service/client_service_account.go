package service

import (
	"context"

	"github.com/saarzint/candle-recall/internal/adapter"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/models"
)

type clientAccountService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

// NewClientAccountService constructs a ClientAccountService.
func NewClientAccountService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAccountService {
	return &clientAccountService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

func (s *clientAccountService) Profile(ctx context.Context) (models.Profile, error) {
	profile, err := s.adapter.Profile(ctx)
	return profile, mapAdapterError(err)
}

func (s *clientAccountService) ChangeUsername(ctx context.Context, req models.UsernameChangeRequest) (models.Profile, error) {
	profile, err := s.adapter.ChangeUsername(ctx, req)
	return profile, mapAdapterError(err)
}

func (s *clientAccountService) ChangePassword(ctx context.Context, req models.PasswordChangeRequest) error {
	return mapAdapterError(s.adapter.ChangePassword(ctx, req))
}

func (s *clientAccountService) StartEmailChange(ctx context.Context, req models.PasswordConfirmRequest) (models.EmailChangeState, error) {
	state, err := s.adapter.StartEmailChange(ctx, req)
	return state, mapAdapterError(err)
}

func (s *clientAccountService) VerifyCurrentEmail(ctx context.Context, req models.CodeRequest) (models.EmailChangeState, error) {
	state, err := s.adapter.VerifyCurrentEmail(ctx, req)
	return state, mapAdapterError(err)
}

func (s *clientAccountService) SubmitNewEmail(ctx context.Context, req models.NewEmailRequest) (models.EmailChangeState, error) {
	state, err := s.adapter.SubmitNewEmail(ctx, req)
	return state, mapAdapterError(err)
}

func (s *clientAccountService) ConfirmNewEmail(ctx context.Context, req models.CodeRequest) (models.Profile, error) {
	profile, err := s.adapter.ConfirmNewEmail(ctx, req)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	session, err := s.sessions.LoadSession(ctx)
	if err == nil {
		session.Email = profile.Email
		err = s.sessions.SaveSession(ctx, session)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAccountService.ConfirmNewEmail").Msg("error updating session email")
	}

	return profile, nil
}

func (s *clientAccountService) ResendEmailCode(ctx context.Context) (models.EmailChangeState, error) {
	state, err := s.adapter.ResendEmailCode(ctx)
	return state, mapAdapterError(err)
}

func (s *clientAccountService) RequestDeletionCode(ctx context.Context) (models.CodeSentResponse, error) {
	resp, err := s.adapter.RequestDeletionCode(ctx)
	return resp, mapAdapterError(err)
}

func (s *clientAccountService) DeleteAccount(ctx context.Context, req models.DeleteAccountRequest) error {
	if err := s.adapter.DeleteAccount(ctx, req); err != nil {
		return mapAdapterError(err)
	}

	s.adapter.SetToken("")
	if err := s.sessions.ClearSession(ctx); err != nil {
		s.logger.Err(err).Str("func", "*clientAccountService.DeleteAccount").Msg("error clearing session")
	}
	return nil
}
