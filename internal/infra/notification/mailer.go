// Package notification provides outbound mail implementations of the Mailer domain service.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"

	"addressbook/config"
	"addressbook/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer dispatches password-reset tokens over plain SMTP.
type smtpMailer struct {
	addr   string
	from   string
	logger *slog.Logger
}

// logMailer is the fallback used when SMTP is not configured. It logs the
// recipient so operators can follow the flow in development environments;
// the token itself stays out of the logs.
type logMailer struct {
	logger *slog.Logger
}

// NewMailer selects the concrete Mailer based on configuration.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return &logMailer{logger: logger}
	}

	return &smtpMailer{
		addr:   net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(cfg.SMTP.Port)),
		from:   cfg.SMTP.From,
		logger: logger,
	}
}

// SendPasswordReset dispatches the raw reset token to the given address.
func (m *smtpMailer) SendPasswordReset(_ context.Context, email, token string) error {
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Password reset\r\n\r\n"+
			"Use the following token to reset your password. It expires shortly and works only once.\r\n\r\n%s\r\n",
		m.from, email, token,
	)

	if err := smtp.SendMail(m.addr, nil, m.from, []string{email}, []byte(body)); err != nil {
		return errors.Wrap(err, "failed to send password reset mail")
	}
	m.logger.Info("Password reset mail sent", "email", email)

	return nil
}

func (m *logMailer) SendPasswordReset(ctx context.Context, email, _ string) error {
	m.logger.LogAttrs(ctx, slog.LevelInfo, "SMTP not configured, skipping password reset mail",
		slog.String("email", email),
	)

	return nil
}
