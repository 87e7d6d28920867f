// Package notifier delivers plain-text email through the configured outbound
// relay. Delivery is single-attempt and best-effort; callers decide whether a
// failure matters, and in this service none do.
package notifier

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/campuskit/helpdesk-service/internal/config"
)

// Mailer sends one plain-text message.
type Mailer interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// SMTPMailer talks SMTP over implicit TLS with authenticated sender
// credentials. The client timeout bounds the whole connect/login/send
// attempt so a dead relay cannot stall a request beyond that window.
type SMTPMailer struct {
	client *mail.Client
	sender string
}

// NewSMTPMailer builds a relay client from configuration. Returns nil (no
// mailer) when no sender is configured, which the notification layer treats
// as "log instead of send".
func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) (*SMTPMailer, error) {
	if cfg.Sender == "" {
		logger.Warn("SMTP_SENDER not provided; email notifications disabled")
		return nil, nil
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Sender),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(cfg.Timeout()),
	)
	if err != nil {
		return nil, fmt.Errorf("build smtp client: %w", err)
	}

	return &SMTPMailer{client: client, sender: cfg.Sender}, nil
}

// Send composes and delivers a single message. One attempt, no retry.
func (m *SMTPMailer) Send(ctx context.Context, recipient, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.sender); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send to %s: %w", recipient, err)
	}
	return nil
}
