package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig(t *testing.T) {
	cfg := defaults()
	cfg.Adapter.HTTPAddress = "127.0.0.1:8080"

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080", clientCfg.Adapter.BaseURL)
	assert.Equal(t, 10*time.Second, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, "candle-recall.db", clientCfg.Storage.SessionDSN)
	assert.Equal(t, "dev", clientCfg.Version)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "in-memory session store",
			mutate:  func(cfg *StructuredConfig) { cfg.Client.SessionDSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing api address",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)

			clientCfg, err := newClientConfig(cfg)
			assert.Nil(t, clientCfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "", baseURL(""))
	assert.Equal(t, "http://localhost:8080", baseURL("localhost:8080"))
	assert.Equal(t, "https://api.candle.example", baseURL("https://api.candle.example"))
}
