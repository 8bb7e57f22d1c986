package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/saarzint/candle-recall/internal/adapter"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/mock"
	"github.com/saarzint/candle-recall/models"
)

func TestClientAccountService_ConfirmNewEmail_UpdatesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)
	svc := NewClientAccountService(mockSessions, mockAdapter, logger.Nop())

	mockAdapter.EXPECT().ConfirmNewEmail(gomock.Any(), models.CodeRequest{Code: "123456"}).
		Return(models.Profile{Email: "new@b.co"}, nil)
	mockSessions.EXPECT().LoadSession(gomock.Any()).Return(models.Session{Email: "old@b.co", Token: "tok"}, nil)
	mockSessions.EXPECT().SaveSession(gomock.Any(), models.Session{Email: "new@b.co", Token: "tok"}).Return(nil)

	profile, err := svc.ConfirmNewEmail(context.Background(), models.CodeRequest{Code: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "new@b.co", profile.Email)
}

func TestClientAccountService_VerifyCurrentEmail_OutOfOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAccountService(mock.NewMockSessionRepository(ctrl), mockAdapter, logger.Nop())

	mockAdapter.EXPECT().VerifyCurrentEmail(gomock.Any(), gomock.Any()).
		Return(models.EmailChangeState{}, fmt.Errorf("%w: step is out of order", adapter.ErrConflict))

	_, err := svc.VerifyCurrentEmail(context.Background(), models.CodeRequest{Code: "123456"})
	require.ErrorIs(t, err, ErrStepOutOfOrder)
}

func TestClientAccountService_DeleteAccount_SignsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)
	svc := NewClientAccountService(mockSessions, mockAdapter, logger.Nop())

	req := models.DeleteAccountRequest{Code: "123456", Password: "secret"}
	gomock.InOrder(
		mockAdapter.EXPECT().DeleteAccount(gomock.Any(), req).Return(nil),
		mockAdapter.EXPECT().SetToken(""),
		mockSessions.EXPECT().ClearSession(gomock.Any()).Return(nil),
	)

	require.NoError(t, svc.DeleteAccount(context.Background(), req))
}

func TestClientAccountService_DeleteAccount_WrongPasswordKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAccountService(mock.NewMockSessionRepository(ctrl), mockAdapter, logger.Nop())

	mockAdapter.EXPECT().DeleteAccount(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: %w", adapter.ErrForbidden, models.FieldErrors{"password": "Your password is invalid."}))

	err := svc.DeleteAccount(context.Background(), models.DeleteAccountRequest{})
	require.ErrorIs(t, err, ErrWrongPassword)
	var fe models.FieldErrors
	require.ErrorAs(t, err, &fe)
}
