package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saarzint/candle-recall/internal/config"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/models"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "nested", "session.db")

	storages, err := NewClientStorages(context.Background(), config.ClientStorage{SessionDSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo := newTestClientStorages(t).SessionRepository
	ctx := context.Background()

	_, err := repo.LoadSession(ctx)
	require.ErrorIs(t, err, ErrLocalSessionNotFound)

	saved := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveSession(ctx, models.Session{Email: "a@b.co", Token: "t1", SavedAt: saved}))
	require.NoError(t, repo.SaveSession(ctx, models.Session{Email: "c@d.co", Token: "t2", SavedAt: saved}))

	session, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c@d.co", session.Email)
	assert.Equal(t, "t2", session.Token)
	assert.True(t, saved.Equal(session.SavedAt))

	require.NoError(t, repo.ClearSession(ctx))
	_, err = repo.LoadSession(ctx)
	require.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSessionRepository_SurvivesReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	first, err := NewClientStorages(ctx, config.ClientStorage{SessionDSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.SessionRepository.SaveSession(ctx, models.Session{Email: "a@b.co", Token: "t", SavedAt: time.Now()}))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, config.ClientStorage{SessionDSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	session, err := second.SessionRepository.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t", session.Token)
}
