package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/mock"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/internal/utils"
	"github.com/saarzint/candle-recall/internal/validators"
	"github.com/saarzint/candle-recall/models"
)

type accountMocks struct {
	users  *mock.MockUserRepository
	codes  *mock.MockVerificationCodeRepository
	mailer *mock.MockMailer
}

func newTestAccountService(t *testing.T) (*accountService, accountMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := accountMocks{
		users:  mock.NewMockUserRepository(ctrl),
		codes:  mock.NewMockVerificationCodeRepository(ctrl),
		mailer: mock.NewMockMailer(ctrl),
	}

	svc := NewAccountService(m.users, m.codes, m.mailer, testAppConfig, logger.Nop()).(*accountService)
	svc.passwords.cost = bcrypt.MinCost
	svc.codes.now = func() time.Time { return testNow }
	return svc, m
}

var mailedCode = regexp.MustCompile(`code is (\d{6})`)

// pendingCode returns a stored code for purpose whose plain value is code.
func pendingCode(purpose models.CodePurpose, code, target string, verified bool) models.VerificationCode {
	return models.VerificationCode{
		ID:          11,
		UserID:      1,
		Purpose:     purpose,
		CodeHash:    utils.HashString(code, testAppConfig.HashKey),
		TargetEmail: target,
		Verified:    verified,
		ExpiresAt:   testNow.Add(5 * time.Minute),
		SentAt:      testNow.Add(-2 * time.Minute),
	}
}

func TestAccountService_ChangeUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns fresh profile", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.users.EXPECT().UpdateUsername(gomock.Any(), int64(1), "@new").Return(nil)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Email: "a@b.co", Username: "@new"}, nil)

		profile, err := svc.ChangeUsername(ctx, 1, models.UsernameChangeRequest{Username: " @new "})
		require.NoError(t, err)
		assert.Equal(t, "@new", profile.Username)
	})

	t.Run("taken", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.users.EXPECT().UpdateUsername(gomock.Any(), int64(1), "@taken").Return(store.ErrUsernameAlreadyExists)

		_, err := svc.ChangeUsername(ctx, 1, models.UsernameChangeRequest{Username: "@taken"})
		require.ErrorIs(t, err, ErrUsernameTaken)
		requireFieldError(t, err, validators.FieldUsername, MsgUsernameTaken)
	})

	t.Run("missing prefix", func(t *testing.T) {
		svc, _ := newTestAccountService(t)
		_, err := svc.ChangeUsername(ctx, 1, models.UsernameChangeRequest{Username: "plain"})
		requireFieldError(t, err, validators.FieldUsername, validators.MsgUsernamePrefix)
	})
}

func TestAccountService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	req := models.PasswordChangeRequest{CurrentPassword: "old-password", NewPassword: "new-password", ConfirmPassword: "new-password"}

	t.Run("success", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, PasswordHash: testPasswordHash(t, "old-password")}, nil)
		m.users.EXPECT().UpdatePasswordHash(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, hash string) error {
				assert.True(t, svc.passwords.Verify(hash, "new-password"))
				return nil
			})

		require.NoError(t, svc.ChangePassword(ctx, 1, req))
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, PasswordHash: testPasswordHash(t, "something-else")}, nil)

		err := svc.ChangePassword(ctx, 1, req)
		require.ErrorIs(t, err, ErrWrongPassword)
		requireFieldError(t, err, validators.FieldCurrentPassword, validators.MsgLoginPasswordInvalid)
	})
}

func TestAccountService_EmailChangeWizard(t *testing.T) {
	ctx := context.Background()
	user := models.User{UserID: 1, Email: "old@b.co", PasswordHash: ""}

	t.Run("step one mails a code to the current address", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		u := user
		u.PasswordHash = testPasswordHash(t, "secret-pass")

		var stored models.VerificationCode
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(u, nil)
		m.codes.EXPECT().DeleteCodes(gomock.Any(), int64(1), models.PurposeEmailNew).Return(nil)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).Return(models.VerificationCode{}, store.ErrCodeNotFound)
		m.codes.EXPECT().UpsertCode(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c models.VerificationCode) error {
				stored = c
				return nil
			})
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mail models.Mail) error {
				assert.Equal(t, "old@b.co", mail.To)
				match := mailedCode.FindStringSubmatch(mail.Body)
				require.Len(t, match, 2)
				assert.Equal(t, stored.CodeHash, utils.HashString(match[1], testAppConfig.HashKey))
				return nil
			})

		state, err := svc.StartEmailChange(ctx, 1, models.PasswordConfirmRequest{Password: "secret-pass"})
		require.NoError(t, err)
		assert.Equal(t, models.EmailStepCurrentCode, state.Step)
		assert.Equal(t, "old@b.co", state.TargetEmail)
		assert.Equal(t, testNow.Add(time.Minute), state.ResendAfter)
		assert.Equal(t, testNow.Add(10*time.Minute), stored.ExpiresAt)
	})

	t.Run("step one rejects a wrong password", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		u := user
		u.PasswordHash = testPasswordHash(t, "secret-pass")
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(u, nil)

		_, err := svc.StartEmailChange(ctx, 1, models.PasswordConfirmRequest{Password: "nope"})
		require.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("step two marks the code verified", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).
			Return(pendingCode(models.PurposeEmailCurrent, "123456", "old@b.co", false), nil)
		m.codes.EXPECT().MarkCodeVerified(gomock.Any(), int64(11)).Return(nil)

		state, err := svc.VerifyCurrentEmail(ctx, 1, models.CodeRequest{Code: "123456"})
		require.NoError(t, err)
		assert.Equal(t, models.EmailStepNewEmail, state.Step)
	})

	t.Run("step two wrong code", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).
			Return(pendingCode(models.PurposeEmailCurrent, "123456", "old@b.co", false), nil)

		_, err := svc.VerifyCurrentEmail(ctx, 1, models.CodeRequest{Code: "654321"})
		require.ErrorIs(t, err, ErrCodeInvalid)
		requireFieldError(t, err, validators.FieldCode, MsgCodeIncorrect)
	})

	t.Run("step two expired code", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		code := pendingCode(models.PurposeEmailCurrent, "123456", "old@b.co", false)
		code.ExpiresAt = testNow
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).Return(code, nil)

		_, err := svc.VerifyCurrentEmail(ctx, 1, models.CodeRequest{Code: "123456"})
		require.ErrorIs(t, err, ErrCodeExpired)
	})

	t.Run("step two without step one", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).Return(models.VerificationCode{}, store.ErrCodeNotFound)

		_, err := svc.VerifyCurrentEmail(ctx, 1, models.CodeRequest{Code: "123456"})
		require.ErrorIs(t, err, ErrStepOutOfOrder)
	})

	t.Run("step three requires a verified current address", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).
			Return(pendingCode(models.PurposeEmailCurrent, "123456", "old@b.co", false), nil)

		_, err := svc.SubmitNewEmail(ctx, 1, models.NewEmailRequest{Email: "new@b.co"})
		require.ErrorIs(t, err, ErrStepOutOfOrder)
	})

	t.Run("step three rejects the same address", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).
			Return(pendingCode(models.PurposeEmailCurrent, "123456", "old@b.co", true), nil)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(user, nil)

		_, err := svc.SubmitNewEmail(ctx, 1, models.NewEmailRequest{Email: "OLD@b.co"})
		require.ErrorIs(t, err, ErrSameEmail)
		requireFieldError(t, err, validators.FieldEmail, MsgSameEmail)
	})

	t.Run("step three rejects a taken address", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).
			Return(pendingCode(models.PurposeEmailCurrent, "123456", "old@b.co", true), nil)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(user, nil)
		m.users.EXPECT().FindUserByEmail(gomock.Any(), "new@b.co").Return(models.User{UserID: 2}, nil)

		_, err := svc.SubmitNewEmail(ctx, 1, models.NewEmailRequest{Email: "new@b.co"})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("step three mails the new address", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).
			Return(pendingCode(models.PurposeEmailCurrent, "123456", "old@b.co", true), nil)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(user, nil)
		m.users.EXPECT().FindUserByEmail(gomock.Any(), "new@b.co").Return(models.User{}, store.ErrNoUserWasFound)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailNew).Return(models.VerificationCode{}, store.ErrCodeNotFound)
		m.codes.EXPECT().UpsertCode(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c models.VerificationCode) error {
				assert.Equal(t, "new@b.co", c.TargetEmail)
				assert.Equal(t, models.PurposeEmailNew, c.Purpose)
				return nil
			})
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mail models.Mail) error {
				assert.Equal(t, "new@b.co", mail.To)
				return nil
			})

		state, err := svc.SubmitNewEmail(ctx, 1, models.NewEmailRequest{Email: "new@b.co"})
		require.NoError(t, err)
		assert.Equal(t, models.EmailStepNewCode, state.Step)
		assert.Equal(t, "new@b.co", state.TargetEmail)
	})

	t.Run("step four switches the address and clears codes", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).
			Return(pendingCode(models.PurposeEmailCurrent, "123456", "old@b.co", true), nil)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailNew).
			Return(pendingCode(models.PurposeEmailNew, "777777", "new@b.co", false), nil)
		m.users.EXPECT().UpdateEmail(gomock.Any(), int64(1), "new@b.co").Return(nil)
		m.codes.EXPECT().DeleteCodes(gomock.Any(), int64(1), models.PurposeEmailCurrent, models.PurposeEmailNew).Return(nil)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Email: "new@b.co"}, nil)

		profile, err := svc.ConfirmNewEmail(ctx, 1, models.CodeRequest{Code: "777777"})
		require.NoError(t, err)
		assert.Equal(t, "new@b.co", profile.Email)
	})

	t.Run("step four loses a race for the address", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).
			Return(pendingCode(models.PurposeEmailCurrent, "123456", "old@b.co", true), nil)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailNew).
			Return(pendingCode(models.PurposeEmailNew, "777777", "new@b.co", false), nil)
		m.users.EXPECT().UpdateEmail(gomock.Any(), int64(1), "new@b.co").Return(store.ErrEmailAlreadyExists)

		_, err := svc.ConfirmNewEmail(ctx, 1, models.CodeRequest{Code: "777777"})
		require.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAccountService_ResendEmailCode(t *testing.T) {
	ctx := context.Background()

	t.Run("resends the new address code when one is pending", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		pending := pendingCode(models.PurposeEmailNew, "777777", "new@b.co", false)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailNew).Return(pending, nil).Times(2)
		m.codes.EXPECT().UpsertCode(gomock.Any(), gomock.Any()).Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		state, err := svc.ResendEmailCode(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.EmailStepNewCode, state.Step)
	})

	t.Run("cooldown applies", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		pending := pendingCode(models.PurposeEmailNew, "777777", "new@b.co", false)
		pending.SentAt = testNow.Add(-15 * time.Second)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailNew).Return(pending, nil).Times(2)

		_, err := svc.ResendEmailCode(ctx, 1)
		var cooldown *CooldownError
		require.ErrorAs(t, err, &cooldown)
		assert.Equal(t, 45*time.Second, cooldown.RetryAfter)
	})

	t.Run("nothing to resend once the current address is verified", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailNew).Return(models.VerificationCode{}, store.ErrCodeNotFound)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeEmailCurrent).
			Return(pendingCode(models.PurposeEmailCurrent, "123456", "old@b.co", true), nil)

		_, err := svc.ResendEmailCode(ctx, 1)
		require.ErrorIs(t, err, ErrStepOutOfOrder)
	})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("code request", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Email: "a@b.co"}, nil)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeAccountDelete).Return(models.VerificationCode{}, store.ErrCodeNotFound)
		m.codes.EXPECT().UpsertCode(gomock.Any(), gomock.Any()).Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := svc.RequestDeletionCode(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "a@b.co", resp.Email)
		assert.Equal(t, testNow.Add(time.Minute), resp.ResendAfter)
	})

	t.Run("deletes with code and password", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeAccountDelete).
			Return(pendingCode(models.PurposeAccountDelete, "424242", "a@b.co", false), nil)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, PasswordHash: testPasswordHash(t, "secret-pass")}, nil)
		m.users.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil)

		require.NoError(t, svc.DeleteAccount(ctx, 1, models.DeleteAccountRequest{Code: "424242", Password: "secret-pass"}))
	})

	t.Run("wrong password keeps the account", func(t *testing.T) {
		svc, m := newTestAccountService(t)
		m.codes.EXPECT().FindCode(gomock.Any(), int64(1), models.PurposeAccountDelete).
			Return(pendingCode(models.PurposeAccountDelete, "424242", "a@b.co", false), nil)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, PasswordHash: testPasswordHash(t, "secret-pass")}, nil)

		err := svc.DeleteAccount(ctx, 1, models.DeleteAccountRequest{Code: "424242", Password: "wrong"})
		require.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("malformed code", func(t *testing.T) {
		svc, _ := newTestAccountService(t)
		err := svc.DeleteAccount(ctx, 1, models.DeleteAccountRequest{Code: "12ab", Password: "secret-pass"})
		requireFieldError(t, err, validators.FieldCode, validators.MsgCodeInvalid)
	})
}
