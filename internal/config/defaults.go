package config

import "time"

// defaults returns the values used when no source sets a field.
// Secrets have no defaults.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    "candle-recall",
			TokenDuration:  24 * time.Hour,
			ResetTokenTTL:  time.Hour,
			CodeTTL:        15 * time.Minute,
			ResendCooldown: 60 * time.Second,
			ResetLinkBase:  "candle-recall://auth/reset-password?token=",
			Version:        "dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			CleanupInterval: 10 * time.Minute,
		},
		Client: Client{
			SessionDSN: "candle-recall.db",
		},
	}
}
