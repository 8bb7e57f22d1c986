package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/models"
)

func TestProfile(t *testing.T) {
	router, m := newTestRouter(t)
	expectSignedIn(m)
	m.account.EXPECT().Profile(gomock.Any(), testUserID).Return(models.Profile{Email: "ann@candle.test", Username: "@ann"}, nil)

	rec := do(t, router, http.MethodGet, "/api/account", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "@ann", decodeBody[models.Profile](t, rec).Username)
}

func TestProfile_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/account", "", false)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), decodeBody[models.ErrorResponse](t, rec).Error)
}

func TestChangeUsername(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectSignedIn(m)
		m.account.EXPECT().ChangeUsername(gomock.Any(), testUserID, models.UsernameChangeRequest{Username: "@bob"}).
			Return(models.Profile{Username: "@bob"}, nil)

		rec := do(t, router, http.MethodPut, "/api/account/username", `{"username":"@bob"}`, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "@bob", decodeBody[models.Profile](t, rec).Username)
	})

	t.Run("taken", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectSignedIn(m)
		m.account.EXPECT().ChangeUsername(gomock.Any(), testUserID, gomock.Any()).
			Return(models.Profile{}, fieldErr(service.ErrUsernameTaken, "username", service.MsgUsernameTaken))

		rec := do(t, router, http.MethodPut, "/api/account/username", `{"username":"@bob"}`, true)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, service.MsgUsernameTaken, decodeBody[models.ValidationErrorResponse](t, rec).Errors.Get("username"))
	})
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	router, m := newTestRouter(t)
	expectSignedIn(m)
	m.account.EXPECT().ChangePassword(gomock.Any(), testUserID, gomock.Any()).
		Return(fieldErr(service.ErrWrongPassword, "current_password", "Your password is invalid."))

	rec := do(t, router, http.MethodPut, "/api/account/password", `{"current_password":"x"}`, true)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotEmpty(t, decodeBody[models.ValidationErrorResponse](t, rec).Errors.Get("current_password"))
}

func TestEmailChangeWizard(t *testing.T) {
	resendAfter := time.Date(2026, 3, 1, 12, 1, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target string
		body   string
		expect func(m serviceMocks)
		status int
	}{
		{
			name:   "password step",
			target: "/api/account/email/password",
			body:   `{"password":"secret"}`,
			expect: func(m serviceMocks) {
				m.account.EXPECT().StartEmailChange(gomock.Any(), testUserID, models.PasswordConfirmRequest{Password: "secret"}).
					Return(models.EmailChangeState{Step: models.EmailStepCurrentCode, ResendAfter: resendAfter}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "current code step",
			target: "/api/account/email/code",
			body:   `{"code":"123456"}`,
			expect: func(m serviceMocks) {
				m.account.EXPECT().VerifyCurrentEmail(gomock.Any(), testUserID, models.CodeRequest{Code: "123456"}).
					Return(models.EmailChangeState{Step: models.EmailStepNewEmail}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "new email step",
			target: "/api/account/email/new",
			body:   `{"email":"new@candle.test"}`,
			expect: func(m serviceMocks) {
				m.account.EXPECT().SubmitNewEmail(gomock.Any(), testUserID, models.NewEmailRequest{Email: "new@candle.test"}).
					Return(models.EmailChangeState{Step: models.EmailStepNewCode, TargetEmail: "new@candle.test"}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "confirm step",
			target: "/api/account/email/confirm",
			body:   `{"code":"654321"}`,
			expect: func(m serviceMocks) {
				m.account.EXPECT().ConfirmNewEmail(gomock.Any(), testUserID, models.CodeRequest{Code: "654321"}).
					Return(models.Profile{Email: "new@candle.test"}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "out of order",
			target: "/api/account/email/code",
			body:   `{"code":"123456"}`,
			expect: func(m serviceMocks) {
				m.account.EXPECT().VerifyCurrentEmail(gomock.Any(), testUserID, gomock.Any()).
					Return(models.EmailChangeState{}, service.ErrStepOutOfOrder)
			},
			status: http.StatusConflict,
		},
		{
			name:   "expired code",
			target: "/api/account/email/confirm",
			body:   `{"code":"654321"}`,
			expect: func(m serviceMocks) {
				m.account.EXPECT().ConfirmNewEmail(gomock.Any(), testUserID, gomock.Any()).
					Return(models.Profile{}, fieldErr(service.ErrCodeExpired, "code", service.MsgCodeExpired))
			},
			status: http.StatusBadRequest,
		},
		{
			name:   "resend too soon",
			target: "/api/account/email/resend",
			expect: func(m serviceMocks) {
				m.account.EXPECT().ResendEmailCode(gomock.Any(), testUserID).
					Return(models.EmailChangeState{}, &service.CooldownError{RetryAfter: 20 * time.Second})
			},
			status: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			expectSignedIn(m)
			tt.expect(m)

			rec := do(t, router, http.MethodPost, tt.target, tt.body, true)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestDeleteAccount(t *testing.T) {
	t.Run("code requested", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectSignedIn(m)
		m.account.EXPECT().RequestDeletionCode(gomock.Any(), testUserID).Return(models.CodeSentResponse{}, nil)

		rec := do(t, router, http.MethodPost, "/api/account/delete/code", "", true)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectSignedIn(m)
		m.account.EXPECT().DeleteAccount(gomock.Any(), testUserID, models.DeleteAccountRequest{Code: "123456", Password: "secret"}).Return(nil)

		rec := do(t, router, http.MethodDelete, "/api/account", `{"code":"123456","password":"secret"}`, true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("wrong code", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectSignedIn(m)
		m.account.EXPECT().DeleteAccount(gomock.Any(), testUserID, gomock.Any()).
			Return(fieldErr(service.ErrCodeInvalid, "code", service.MsgCodeIncorrect))

		rec := do(t, router, http.MethodDelete, "/api/account", `{"code":"000000","password":"secret"}`, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, service.MsgCodeIncorrect, decodeBody[models.ValidationErrorResponse](t, rec).Errors.Get("code"))
	})
}
