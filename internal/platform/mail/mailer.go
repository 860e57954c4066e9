// Package mail implements outbound SMTP delivery for the application.
// Delivery is best-effort by design: callers treat errors as operational
// noise, never as request failures.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/Marcosdev03/projeto-checklistv02/internal/config"
)

// SMTPMailer sends plain-text mail through a configured SMTP relay.
type SMTPMailer struct {
	cfg    config.MailConfig
	logger *slog.Logger
}

// NewSMTPMailer creates a mailer from the given configuration. If logger
// is nil, the default logger is used.
func NewSMTPMailer(cfg config.MailConfig, logger *slog.Logger) *SMTPMailer {
	if logger == nil {
		logger = slog.Default()
	}

	return &SMTPMailer{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "mailer")),
	}
}

// Send delivers a plain-text message to a single recipient. The context is
// accepted for interface symmetry; net/smtp does not support cancellation
// mid-dialogue.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.cfg.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}

	from := m.cfg.FromAddress
	if from == "" {
		from = m.cfg.Username
	}
	if from == "" {
		return fmt.Errorf("smtp from address is not configured")
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	msg := buildTextMessage(from, to, subject, body)

	// Unauthenticated relay, e.g. a local maildev container.
	if m.cfg.Username == "" && m.cfg.Password == "" {
		return smtp.SendMail(addr, nil, from, []string{to}, msg)
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	// Port 465 expects an implicit-TLS connection rather than STARTTLS.
	if m.cfg.Port == 465 {
		return m.sendImplicitTLS(addr, auth, from, to, msg)
	}

	return smtp.SendMail(addr, auth, from, []string{to}, msg)
}

// sendImplicitTLS runs the SMTP dialogue over an already-established TLS
// connection.
func (m *SMTPMailer) sendImplicitTLS(addr string, auth smtp.Auth, from, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			m.logger.Debug("failed to close SMTP connection", slog.String("error", err.Error()))
		}
	}()

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			m.logger.Debug("failed to close SMTP client", slog.String("error", err.Error()))
		}
	}()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	wc, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := wc.Write(msg); err != nil {
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// buildTextMessage assembles an RFC 5322 plain-text message.
func buildTextMessage(from, to, subject, body string) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		from, to, subject, body,
	))
}
