// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks invariants that hold for every role: no negative
// durations.
func (cfg *StructuredConfig) validate() error {
	durations := map[string]int64{
		"token duration":   int64(cfg.App.TokenDuration),
		"reset token ttl":  int64(cfg.App.ResetTokenTTL),
		"code ttl":         int64(cfg.App.CodeTTL),
		"resend cooldown":  int64(cfg.App.ResendCooldown),
		"request timeout":  int64(cfg.Server.RequestTimeout),
		"adapter timeout":  int64(cfg.Adapter.RequestTimeout),
		"cleanup interval": int64(cfg.Workers.CleanupInterval),
	}
	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("%w: negative %s", ErrInvalidAppConfigs, name)
		}
	}

	return nil
}

// ValidateServer checks that everything the API server needs is set.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.PasswordHashKey == "" || cfg.App.HashKey == "" {
		return fmt.Errorf("%w: token sign key, password hash key and hash key are required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration == 0 || cfg.App.ResetTokenTTL == 0 || cfg.App.CodeTTL == 0 {
		return fmt.Errorf("%w: token and code lifetimes must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.CleanupInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.SessionDSN == "" || strings.Contains(cfg.Storage.SessionDSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, err := url.ParseRequestURI(cfg.Adapter.BaseURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	return nil
}
