package service

import (
	"context"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/models"
)

// logMailer writes outgoing mail to the log. It stands in for a delivery
// provider in development and self-hosted setups.
type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a Mailer that logs every message.
func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, msg models.Mail) error {
	m.logger.Info().
		Str("func", "*logMailer.Send").
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("mail sent")
	return nil
}
